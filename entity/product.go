package entity

// Product lives in the relational store, table `produto`. The column names
// match the legacy schema, so every column is mapped explicitly.
type Product struct {
	ID        uint64  `json:"id" gorm:"column:Id;primaryKey;autoIncrement"`
	Nome      string  `json:"nome" gorm:"column:Nome;not null"`
	Descricao string  `json:"descricao" gorm:"column:Descricao;not null"`
	Preco     float64 `json:"preco" gorm:"column:Preco;not null"`
}

func (Product) TableName() string {
	return "produto"
}
