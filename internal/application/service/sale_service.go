package service

import (
	"context"
	"strings"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
	"github.com/lahiruj/autolanka-erp/pkg/pagination"
)

// SaleUpdateInput is a shallow patch of a sale. Nil fields keep their stored
// value; present fields replace it wholesale, including the item list.
type SaleUpdateInput struct {
	Customer    *string            `json:"customer"`
	Amount      *float64           `json:"amount"`
	Date        *datefmt.Date      `json:"date"`
	Status      *enum.SaleStatus   `json:"status"`
	Email       *string            `json:"email"`
	Phone       *string            `json:"phone"`
	Description *string            `json:"description"`
	Location    *string            `json:"location"`
	VATNo       *string            `json:"vatNo"`
	QuotationNo *string            `json:"quotationNo"`
	Items       *[]entity.LineItem `json:"items"`
}

// SaleService manages the sales pipeline. Sales are created by quotation
// submission, not directly; this service covers the read, patch and delete
// paths of the pipeline page.
type SaleService struct {
	sales repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(sales repository.SaleRepository) *SaleService {
	return &SaleService{sales: sales}
}

// List returns sales in creation order, optionally filtered by a customer or
// quotation number substring, paginated.
func (s *SaleService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Sale], error) {
	all, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	if search = strings.TrimSpace(search); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.Sale, 0, len(all))
		for _, sale := range all {
			if strings.Contains(strings.ToLower(sale.Customer), needle) ||
				strings.Contains(strings.ToLower(sale.QuotationNo), needle) {
				filtered = append(filtered, sale)
			}
		}
		all = filtered
	}

	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one sale.
func (s *SaleService) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// Update applies a shallow patch to a sale and returns the merged record.
func (s *SaleService) Update(ctx context.Context, id string, in *SaleUpdateInput) (*entity.Sale, error) {
	sale, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && !in.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid sale status")
	}

	if in.Customer != nil {
		sale.Customer = *in.Customer
	}
	if in.Amount != nil {
		sale.Amount = *in.Amount
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}
	if in.Status != nil {
		sale.Status = *in.Status
	}
	if in.Email != nil {
		sale.Email = *in.Email
	}
	if in.Phone != nil {
		sale.Phone = *in.Phone
	}
	if in.Description != nil {
		sale.Description = *in.Description
	}
	if in.Location != nil {
		sale.Location = *in.Location
	}
	if in.VATNo != nil {
		sale.VATNo = *in.VATNo
	}
	if in.QuotationNo != nil {
		sale.QuotationNo = *in.QuotationNo
	}
	if in.Items != nil {
		sale.Items = *in.Items
	}

	if err := s.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale. Deleting an unknown id is not an error.
func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.sales.Delete(ctx, id)
}
