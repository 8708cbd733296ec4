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

// PurchaseOrderInput carries a purchase order submission.
type PurchaseOrderInput struct {
	PONumber    string                 `json:"poNumber"`
	CompanyName string                 `json:"companyName"`
	VATNumber   string                 `json:"vatNumber"`
	Email       string                 `json:"email"`
	PhoneNumber string                 `json:"phoneNumber"`
	Location    string                 `json:"location"`
	Note        string                 `json:"note"`
	Items       []aggregator.ItemEntry `json:"items"`
}

// PurchaseOrderService assembles purchase orders. Entries are committed one
// at a time, so the first invalid entry rejects the submission.
type PurchaseOrderService struct {
	orders repository.PurchaseOrderRepository
	today  func() datefmt.Date
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(orders repository.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{orders: orders, today: datefmt.Today}
}

// List returns purchase orders in creation order, paginated.
func (s *PurchaseOrderService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one purchase order.
func (s *PurchaseOrderService) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	po, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return po, nil
}

// Create validates the entries and persists the assembled order as a draft
// dated today. The order-level warranty falls back to the first item's
// warranty when the entries carry one.
func (s *PurchaseOrderService) Create(ctx context.Context, in *PurchaseOrderInput) (*entity.PurchaseOrder, error) {
	items, total, err := s.buildItems(in)
	if err != nil {
		return nil, err
	}

	po := &entity.PurchaseOrder{
		PONumber:    in.PONumber,
		CompanyName: in.CompanyName,
		VATNumber:   in.VATNumber,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Location:    in.Location,
		Status:      enum.PurchaseOrderStatusDraft,
		Date:        s.today(),
		TotalAmount: total,
		Warranty:    headerWarranty(items),
		Note:        in.Note,
		Items:       items,
	}
	if err := s.orders.Create(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// Update replaces the order's header and items in place, keeping its status
// and date.
func (s *PurchaseOrderService) Update(ctx context.Context, id string, in *PurchaseOrderInput) (*entity.PurchaseOrder, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, total, err := s.buildItems(in)
	if err != nil {
		return nil, err
	}

	existing.PONumber = in.PONumber
	existing.CompanyName = in.CompanyName
	existing.VATNumber = in.VATNumber
	existing.Email = in.Email
	existing.PhoneNumber = in.PhoneNumber
	existing.Location = in.Location
	existing.Note = in.Note
	existing.Items = items
	existing.TotalAmount = total
	existing.Warranty = headerWarranty(items)

	if err := s.orders.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateStatus moves an order through its lifecycle.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, id string, status enum.PurchaseOrderStatus) (*entity.PurchaseOrder, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid purchase order status")
	}

	po, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	po.Status = status
	if err := s.orders.Update(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// Delete removes a purchase order. Deleting an unknown id is not an error.
func (s *PurchaseOrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// SuggestNumber proposes a PO number for a fresh entry form.
func (s *PurchaseOrderService) SuggestNumber() string {
	return utils.GeneratePONo(time.Now())
}

func (s *PurchaseOrderService) buildItems(in *PurchaseOrderInput) ([]entity.PurchaseOrderItem, float64, error) {
	agg := aggregator.NewPurchaseOrderAggregator()
	for _, entry := range in.Items {
		if _, err := agg.AddItem(entry); err != nil {
			return nil, 0, err
		}
	}
	if strings.TrimSpace(in.PONumber) == "" || strings.TrimSpace(in.CompanyName) == "" || len(agg.Items()) == 0 {
		return nil, 0, apperror.NewBadRequestError("Please fill PO Number, Company Name, and add at least one item.")
	}
	return agg.Items(), agg.Total(), nil
}

func headerWarranty(items []entity.PurchaseOrderItem) string {
	if len(items) > 0 {
		return items[0].Warranty
	}
	return ""
}
