package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// SupplierRepository defines the store contract for suppliers
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Supplier) error
}
