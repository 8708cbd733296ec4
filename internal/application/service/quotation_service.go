package service

import (
	"context"
	"strings"
	"time"

	"github.com/lahiruj/autolanka-erp/internal/application/aggregator"
	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
	"github.com/lahiruj/autolanka-erp/pkg/pagination"
	"github.com/lahiruj/autolanka-erp/pkg/utils"
)

// QuotationInput carries a quotation submission: header fields plus the raw
// entry forms of its items.
type QuotationInput struct {
	QuoteNumber     string                 `json:"quoteNumber"`
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	CustomerAddress string                 `json:"customerAddress"`
	VATNumber       string                 `json:"vatNumber"`
	Notes           string                 `json:"notes"`
	Items           []aggregator.ItemEntry `json:"items"`
}

// QuotationService assembles quotations from submitted entry forms and keeps
// the sales pipeline in sync: every created quotation derives exactly one
// pending sale.
type QuotationService struct {
	quotations repository.QuotationRepository
	sales      repository.SaleRepository
	today      func() datefmt.Date
}

// NewQuotationService creates a new quotation service
func NewQuotationService(quotations repository.QuotationRepository, sales repository.SaleRepository) *QuotationService {
	return &QuotationService{
		quotations: quotations,
		sales:      sales,
		today:      datefmt.Today,
	}
}

// List returns quotations in creation order, paginated.
func (s *QuotationService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Quotation], error) {
	all, err := s.quotations.List(ctx)
	if err != nil {
		return nil, err
	}
	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one quotation.
func (s *QuotationService) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	quotation, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// Create validates the entry forms, assembles the quotation and persists it,
// then derives the sale. The quotation is dated today with a 30-day
// validity window and starts as a draft.
func (s *QuotationService) Create(ctx context.Context, in *QuotationInput) (*entity.Quotation, error) {
	items, total, err := s.buildItems(in)
	if err != nil {
		return nil, err
	}

	today := s.today()
	quotation := &entity.Quotation{
		QuoteNumber:     in.QuoteNumber,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		VATNumber:       in.VATNumber,
		Status:          enum.QuotationStatusDraft,
		Date:            today,
		ValidUntil:      today.AddDays(30),
		TotalAmount:     total,
		Notes:           in.Notes,
		Items:           items,
	}
	if err := s.quotations.Create(ctx, quotation); err != nil {
		return nil, err
	}

	// Derive the pipeline record only after the quotation persisted, so a
	// rejected quotation never leaves a stray sale behind.
	sale := deriveSale(quotation, today)
	if err := s.sales.Create(ctx, &sale); err != nil {
		return nil, err
	}
	return quotation, nil
}

// Update replaces the quotation's header and items in place. The document
// keeps its dates and status, and no new sale is derived.
func (s *QuotationService) Update(ctx context.Context, id string, in *QuotationInput) (*entity.Quotation, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, total, err := s.buildItems(in)
	if err != nil {
		return nil, err
	}

	existing.QuoteNumber = in.QuoteNumber
	existing.CustomerName = in.CustomerName
	existing.CustomerEmail = in.CustomerEmail
	existing.CustomerPhone = in.CustomerPhone
	existing.CustomerAddress = in.CustomerAddress
	existing.VATNumber = in.VATNumber
	existing.Notes = in.Notes
	existing.Items = items
	existing.TotalAmount = total

	if err := s.quotations.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a quotation. Deleting an unknown id is not an error.
func (s *QuotationService) Delete(ctx context.Context, id string) error {
	return s.quotations.Delete(ctx, id)
}

// SuggestNumber proposes a quotation number for a fresh entry form.
func (s *QuotationService) SuggestNumber() string {
	return utils.GenerateQuotationNo(time.Now())
}

func (s *QuotationService) buildItems(in *QuotationInput) ([]entity.QuotationItem, float64, error) {
	agg := aggregator.NewQuotationAggregator()
	if len(in.Items) > 0 {
		if _, err := agg.AddItems(in.Items); err != nil {
			return nil, 0, err
		}
	}
	if strings.TrimSpace(in.QuoteNumber) == "" || strings.TrimSpace(in.CustomerName) == "" || len(agg.Items()) == 0 {
		return nil, 0, apperror.NewBadRequestError("Please fill Quotation Number, Customer Name, and add at least one item.")
	}
	return agg.Items(), agg.Total(), nil
}

// deriveSale maps a persisted quotation onto a pending sales-pipeline
// record. The copies are denormalized; later edits to the quotation do not
// flow into the sale.
func deriveSale(q *entity.Quotation, today datefmt.Date) entity.Sale {
	description := "Quotation Items"
	if len(q.Items) > 0 && q.Items[0].Description != "" {
		description = q.Items[0].Description
	}

	items := make([]entity.LineItem, len(q.Items))
	for i, item := range q.Items {
		items[i] = item.LineItem
	}

	return entity.Sale{
		Customer:    q.CustomerName,
		Amount:      q.TotalAmount,
		Date:        q.Date,
		Status:      enum.SaleStatusPending,
		CreatedAt:   today,
		Email:       q.CustomerEmail,
		Phone:       q.CustomerPhone,
		Description: description,
		Location:    q.CustomerAddress,
		VATNo:       q.VATNumber,
		QuotationNo: q.QuoteNumber,
		Items:       items,
	}
}
