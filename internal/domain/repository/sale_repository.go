package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// SaleRepository defines the store contract for sales records. The backing
// store is in-memory; every call completes without I/O and callers must not
// assume a network round trip.
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) error
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Sale) error
}

// QuotationRepository defines the store contract for quotations
type QuotationRepository interface {
	List(ctx context.Context) ([]entity.Quotation, error)
	GetByID(ctx context.Context, id string) (*entity.Quotation, error)
	Create(ctx context.Context, quotation *entity.Quotation) error
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Quotation) error
}
