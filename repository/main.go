package repository

import (
	"context"

	"github.com/jrandrade/datastore-gateway/entity"
	"github.com/jrandrade/datastore-gateway/infra"
)

// UserStore is the document-store operation set consumed by the user
// handlers.
type UserStore interface {
	Create(ctx context.Context, nome, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	FindFirst(ctx context.Context) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	UpdateByID(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
	DeleteByID(ctx context.Context, id string) error
}

// ProductStore is the relational operation set consumed by the product
// handlers.
type ProductStore interface {
	Create(ctx context.Context, nome, descricao string, preco float64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id uint64) (*entity.Product, error)
	UpdateByID(ctx context.Context, id uint64, nome, descricao string, preco float64) (*entity.Product, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type Repository struct {
	UserRepo    UserStore
	ProductRepo ProductStore
}

func InitRepository(inf *infra.Infra) *Repository {
	return &Repository{
		UserRepo:    NewUserRepository(inf.Mongo.Collection("usuarios")),
		ProductRepo: NewProductRepository(inf.MySQL.DB),
	}
}
