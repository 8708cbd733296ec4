package memstore

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
)

// base adapts a Collection to the repository contract shared by every
// entity: list, get (nil when missing), create with id synthesis,
// replace-by-id update, idempotent delete and seed reset.
type base[T any] struct {
	c *Collection[T]
}

func newBase[T any](id func(*T) *string) base[T] {
	return base[T]{c: NewCollection(id)}
}

func (b base[T]) List(ctx context.Context) ([]T, error) {
	return b.c.List(), nil
}

func (b base[T]) GetByID(ctx context.Context, id string) (*T, error) {
	rec, ok := b.c.Get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (b base[T]) Create(ctx context.Context, rec *T) error {
	*rec = b.c.Add(*rec)
	return nil
}

func (b base[T]) Update(ctx context.Context, rec *T) error {
	updated, ok := b.c.Replace(*b.c.id(rec), *rec)
	if !ok {
		return apperror.ErrNotFound
	}
	*rec = updated
	return nil
}

func (b base[T]) Delete(ctx context.Context, id string) error {
	b.c.Remove(id)
	return nil
}

func (b base[T]) Reset(ctx context.Context, seed []T) error {
	b.c.Reset(seed)
	return nil
}

type saleRepository struct {
	base[entity.Sale]
}

// NewSaleRepository creates an in-memory sale store
func NewSaleRepository() repository.SaleRepository {
	return &saleRepository{newBase(func(s *entity.Sale) *string { return &s.ID })}
}

type quotationRepository struct {
	base[entity.Quotation]
}

// NewQuotationRepository creates an in-memory quotation store
func NewQuotationRepository() repository.QuotationRepository {
	return &quotationRepository{newBase(func(q *entity.Quotation) *string { return &q.ID })}
}

type invoiceRepository struct {
	base[entity.Invoice]
}

// NewInvoiceRepository creates an in-memory invoice store
func NewInvoiceRepository() repository.InvoiceRepository {
	return &invoiceRepository{newBase(func(i *entity.Invoice) *string { return &i.ID })}
}

type purchaseOrderRepository struct {
	base[entity.PurchaseOrder]
}

// NewPurchaseOrderRepository creates an in-memory purchase order store
func NewPurchaseOrderRepository() repository.PurchaseOrderRepository {
	return &purchaseOrderRepository{newBase(func(p *entity.PurchaseOrder) *string { return &p.ID })}
}

type customerRepository struct {
	base[entity.Customer]
}

// NewCustomerRepository creates an in-memory customer store
func NewCustomerRepository() repository.CustomerRepository {
	return &customerRepository{newBase(func(c *entity.Customer) *string { return &c.ID })}
}

type supplierRepository struct {
	base[entity.Supplier]
}

// NewSupplierRepository creates an in-memory supplier store
func NewSupplierRepository() repository.SupplierRepository {
	return &supplierRepository{newBase(func(s *entity.Supplier) *string { return &s.ID })}
}

type productRepository struct {
	base[entity.Product]
}

// NewProductRepository creates an in-memory product store
func NewProductRepository() repository.ProductRepository {
	return &productRepository{newBase(func(p *entity.Product) *string { return &p.ID })}
}

type financeRepository struct {
	base[entity.Finance]
}

// NewFinanceRepository creates an in-memory finance store
func NewFinanceRepository() repository.FinanceRepository {
	return &financeRepository{newBase(func(f *entity.Finance) *string { return &f.ID })}
}
