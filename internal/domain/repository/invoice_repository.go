package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// InvoiceRepository defines the store contract for invoices
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Invoice) error
}
