package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// CustomerRepository defines the store contract for customers
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Customer) error
}
