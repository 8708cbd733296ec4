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

// SupplierInput carries a new supplier record.
type SupplierInput struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`
	VATNumber   string `json:"vatNumber"`
}

// SupplierUpdateInput is a shallow patch of a supplier.
type SupplierUpdateInput struct {
	Name             *string              `json:"name"`
	Contact          *string              `json:"contact"`
	Email            *string              `json:"email"`
	PhoneNumber      *string              `json:"phoneNumber"`
	Location         *string              `json:"location"`
	VATNumber        *string              `json:"vatNumber"`
	ProductsSupplied *int                 `json:"productsSupplied"`
	Status           *enum.CustomerStatus `json:"status"`
}

// SupplierService manages the suppliers page records.
type SupplierService struct {
	suppliers repository.SupplierRepository
	today     func() datefmt.Date
}

// NewSupplierService creates a new supplier service
func NewSupplierService(suppliers repository.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers, today: datefmt.Today}
}

// List returns suppliers in creation order, optionally filtered by a name
// substring, paginated.
func (s *SupplierService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	all, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	if search = strings.TrimSpace(search); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.Supplier, 0, len(all))
		for _, supplier := range all {
			if strings.Contains(strings.ToLower(supplier.Name), needle) {
				filtered = append(filtered, supplier)
			}
		}
		all = filtered
	}

	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one supplier.
func (s *SupplierService) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// Create adds a supplier, starting active.
func (s *SupplierService) Create(ctx context.Context, in *SupplierInput) (*entity.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperror.NewBadRequestError("Please fill Supplier Name.")
	}

	supplier := &entity.Supplier{
		Name:        in.Name,
		Contact:     in.Contact,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Location:    in.Location,
		VATNumber:   in.VATNumber,
		Status:      enum.CustomerStatusActive,
		CreatedAt:   s.today(),
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Update applies a shallow patch to a supplier and returns the merged record.
func (s *SupplierService) Update(ctx context.Context, id string, in *SupplierUpdateInput) (*entity.Supplier, error) {
	supplier, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		supplier.PhoneNumber = *in.PhoneNumber
	}
	if in.Location != nil {
		supplier.Location = *in.Location
	}
	if in.VATNumber != nil {
		supplier.VATNumber = *in.VATNumber
	}
	if in.ProductsSupplied != nil {
		supplier.ProductsSupplied = *in.ProductsSupplied
	}
	if in.Status != nil {
		supplier.Status = *in.Status
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier. Deleting an unknown id is not an error.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.suppliers.Delete(ctx, id)
}
