package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
	"github.com/lahiruj/autolanka-erp/pkg/pagination"
)

// FinanceInput carries a new finance transaction.
type FinanceInput struct {
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Date        string             `json:"date"`
	Status      enum.FinanceStatus `json:"status"`
}

// FinanceService manages the reports page transactions.
type FinanceService struct {
	finances repository.FinanceRepository
	today    func() datefmt.Date
}

// NewFinanceService creates a new finance service
func NewFinanceService(finances repository.FinanceRepository) *FinanceService {
	return &FinanceService{finances: finances, today: datefmt.Today}
}

// List returns transactions in creation order, paginated.
func (s *FinanceService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Finance], error) {
	all, err := s.finances.List(ctx)
	if err != nil {
		return nil, err
	}
	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one transaction.
func (s *FinanceService) GetByID(ctx context.Context, id string) (*entity.Finance, error) {
	finance, err := s.finances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if finance == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return finance, nil
}

// Create records a transaction. The transaction number continues the
// TXN-NNN sequence and the date defaults to today.
func (s *FinanceService) Create(ctx context.Context, in *FinanceInput) (*entity.Finance, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperror.NewBadRequestError("Please fill Description.")
	}
	if in.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than 0.")
	}

	date, err := datefmt.Parse(in.Date)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	if date.IsZero() {
		date = s.today()
	}

	status := in.Status
	if status == "" {
		status = enum.FinanceStatusPending
	}

	existing, err := s.finances.List(ctx)
	if err != nil {
		return nil, err
	}

	finance := &entity.Finance{
		TransactionID: fmt.Sprintf("TXN-%03d", len(existing)+1),
		Description:   in.Description,
		Amount:        in.Amount,
		Date:          date,
		Status:        status,
		CreatedAt:     s.today(),
	}
	if err := s.finances.Create(ctx, finance); err != nil {
		return nil, err
	}
	return finance, nil
}

// Delete removes a transaction. Deleting an unknown id is not an error.
func (s *FinanceService) Delete(ctx context.Context, id string) error {
	return s.finances.Delete(ctx, id)
}
