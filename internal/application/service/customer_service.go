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

// CustomerInput carries a new customer record.
type CustomerInput struct {
	Name   string              `json:"name"`
	Email  string              `json:"email"`
	Status enum.CustomerStatus `json:"status"`
}

// CustomerUpdateInput is a shallow patch of a customer.
type CustomerUpdateInput struct {
	Name   *string              `json:"name"`
	Email  *string              `json:"email"`
	Orders *int                 `json:"orders"`
	Status *enum.CustomerStatus `json:"status"`
}

// CustomerService manages the customers page records.
type CustomerService struct {
	customers repository.CustomerRepository
	today     func() datefmt.Date
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers, today: datefmt.Today}
}

// List returns customers in creation order, optionally filtered by a name or
// email substring, paginated.
func (s *CustomerService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	if search = strings.TrimSpace(search); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.Customer, 0, len(all))
		for _, customer := range all {
			if strings.Contains(strings.ToLower(customer.Name), needle) ||
				strings.Contains(strings.ToLower(customer.Email), needle) {
				filtered = append(filtered, customer)
			}
		}
		all = filtered
	}

	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one customer.
func (s *CustomerService) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// Create adds a customer. New customers start active with no orders unless
// the input says otherwise.
func (s *CustomerService) Create(ctx context.Context, in *CustomerInput) (*entity.Customer, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, apperror.NewBadRequestError("Please fill Name and Email.")
	}

	status := in.Status
	if status == "" {
		status = enum.CustomerStatusActive
	}

	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Status:    status,
		CreatedAt: s.today(),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update applies a shallow patch to a customer and returns the merged record.
func (s *CustomerService) Update(ctx context.Context, id string, in *CustomerUpdateInput) (*entity.Customer, error) {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Orders != nil {
		customer.Orders = *in.Orders
	}
	if in.Status != nil {
		customer.Status = *in.Status
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer. Deleting an unknown id is not an error.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
