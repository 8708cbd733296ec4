package repository

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
)

// FinanceRepository defines the store contract for finance transactions
type FinanceRepository interface {
	List(ctx context.Context) ([]entity.Finance, error)
	GetByID(ctx context.Context, id string) (*entity.Finance, error)
	Create(ctx context.Context, finance *entity.Finance) error
	Update(ctx context.Context, finance *entity.Finance) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context, seed []entity.Finance) error
}
