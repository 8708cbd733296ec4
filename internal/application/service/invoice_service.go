package service

import (
	"context"
	"strings"
	"time"

	"github.com/lahiruj/autolanka-erp/internal/application/aggregator"
	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
	"github.com/lahiruj/autolanka-erp/pkg/pagination"
	"github.com/lahiruj/autolanka-erp/pkg/utils"
)

// InvoiceInput carries an invoice submission. The date arrives as text and
// defaults to today when left blank.
type InvoiceInput struct {
	CustomerName  string                 `json:"customerName"`
	Address       string                 `json:"address"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	Date          string                 `json:"date"`
	TaxPercent    string                 `json:"taxPercent"`
	Terms         string                 `json:"terms"`
	VATNumber     string                 `json:"vatNumber"`
	CustomerNo    string                 `json:"customerNo"`
	CustomerPONo  string                 `json:"customerPONo"`
	Type          string                 `json:"type"`
	SalesPerson   string                 `json:"salesPerson"`
	Items         []aggregator.ItemEntry `json:"items"`
}

// InvoiceService assembles invoices from submitted entry forms. Each item
// snapshots the header at commit time.
type InvoiceService struct {
	invoices repository.InvoiceRepository
	today    func() datefmt.Date
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices, today: datefmt.Today}
}

// List returns invoices in creation order, paginated.
func (s *InvoiceService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	all, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one invoice.
func (s *InvoiceService) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// Create validates the entry forms and persists the assembled invoice.
func (s *InvoiceService) Create(ctx context.Context, in *InvoiceInput) (*entity.Invoice, error) {
	header, items, err := s.build(in)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{InvoiceHeader: header, Items: items}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update replaces the invoice's header and items in place. The new items
// snapshot the new header; the stored snapshots of removed items go with
// them.
func (s *InvoiceService) Update(ctx context.Context, id string, in *InvoiceInput) (*entity.Invoice, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	header, items, err := s.build(in)
	if err != nil {
		return nil, err
	}

	existing.InvoiceHeader = header
	existing.Items = items
	if err := s.invoices.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes an invoice. Deleting an unknown id is not an error.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	return s.invoices.Delete(ctx, id)
}

// SuggestNumber proposes an invoice number for a fresh entry form.
func (s *InvoiceService) SuggestNumber() string {
	return utils.GenerateInvoiceNo(time.Now())
}

func (s *InvoiceService) build(in *InvoiceInput) (entity.InvoiceHeader, []entity.InvoiceItem, error) {
	date, err := datefmt.Parse(in.Date)
	if err != nil {
		return entity.InvoiceHeader{}, nil, apperror.NewBadRequestError(err.Error())
	}
	if date.IsZero() {
		date = s.today()
	}

	header := entity.InvoiceHeader{
		CustomerName:  in.CustomerName,
		Address:       in.Address,
		InvoiceNumber: in.InvoiceNumber,
		Date:          date,
		TaxPercent:    in.TaxPercent,
		Terms:         in.Terms,
		VATNumber:     in.VATNumber,
		CustomerNo:    in.CustomerNo,
		CustomerPONo:  in.CustomerPONo,
		Type:          in.Type,
		SalesPerson:   in.SalesPerson,
	}

	agg := aggregator.NewInvoiceAggregator(header)
	if len(in.Items) > 0 {
		if _, err := agg.AddItems(in.Items); err != nil {
			return entity.InvoiceHeader{}, nil, err
		}
	}
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.InvoiceNumber) == "" || len(agg.Items()) == 0 {
		return entity.InvoiceHeader{}, nil, apperror.NewBadRequestError("Please fill Customer Name, Address, Invoice Number, and add at least one item.")
	}
	return header, agg.Items(), nil
}
