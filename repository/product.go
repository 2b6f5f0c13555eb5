package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jrandrade/datastore-gateway/entity"
)

// ProductRepository runs parameterized statements against the `produto`
// table. Values always travel as placeholders, never concatenated into SQL.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product and backfills the auto-increment identifier.
func (r *ProductRepository) Create(ctx context.Context, nome, descricao string, preco float64) (*entity.Product, error) {
	product := entity.Product{Nome: nome, Descricao: descricao, Preco: preco}
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, entity.NewStoreError("insert product", err)
	}
	return &product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0)
	if err := r.db.WithContext(ctx).Raw("SELECT * FROM produto").Scan(&products).Error; err != nil {
		return nil, entity.NewStoreError("select products", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var product entity.Product
	tx := r.db.WithContext(ctx).Raw("SELECT * FROM produto WHERE Id = ?", id).Scan(&product)
	if tx.Error != nil {
		return nil, entity.NewStoreError("select product", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return &product, nil
}

// UpdateByID replaces every business column. This is deliberately not a
// merge: callers must resupply all fields.
func (r *ProductRepository) UpdateByID(ctx context.Context, id uint64, nome, descricao string, preco float64) (*entity.Product, error) {
	tx := r.db.WithContext(ctx).Exec(
		"UPDATE produto SET Nome = ?, Descricao = ?, Preco = ? WHERE Id = ?",
		nome, descricao, preco, id,
	)
	if tx.Error != nil {
		return nil, entity.NewStoreError("update product", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return &entity.Product{ID: id, Nome: nome, Descricao: descricao, Preco: preco}, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id uint64) error {
	tx := r.db.WithContext(ctx).Exec("DELETE FROM produto WHERE Id = ?", id)
	if tx.Error != nil {
		return entity.NewStoreError("delete product", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
