package dto

// CreateProductRequest requires all three business fields. Preco is a
// pointer so an explicit zero still counts as provided.
type CreateProductRequest struct {
	Nome      string   `json:"nome" binding:"required"`
	Descricao string   `json:"descricao" binding:"required"`
	Preco     *float64 `json:"preco" binding:"required"`
}

// UpdateProductRequest carries full-replace semantics: unlike the user
// resource, every field must be resupplied.
type UpdateProductRequest struct {
	Nome      string   `json:"nome" binding:"required"`
	Descricao string   `json:"descricao" binding:"required"`
	Preco     *float64 `json:"preco" binding:"required"`
}
