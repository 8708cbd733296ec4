package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// PurchaseOrderRepository defines the store contract for purchase orders
type PurchaseOrderRepository interface {
	List(ctx context.Context) ([]entity.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.PurchaseOrder) error
}
