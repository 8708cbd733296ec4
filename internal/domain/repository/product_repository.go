package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// ProductRepository defines the store contract for inventory products
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Product) error
}
