package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/infrastructure/memstore"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/pagination"
)

func newSaleFixture(t *testing.T) *SaleService {
	t.Helper()
	repo := memstore.NewSaleRepository()
	require.NoError(t, repo.Reset(context.Background(), memstore.SeedSales()))
	return NewSaleService(repo)
}

func TestSaleUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	svc := newSaleFixture(t)

	status := enum.SaleStatusCompleted
	amount := 25000.0
	updated, err := svc.Update(ctx, "1", &SaleUpdateInput{Status: &status, Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, enum.SaleStatusCompleted, updated.Status)
	assert.Equal(t, 25000.0, updated.Amount)
	assert.Equal(t, "John Doe", updated.Customer, "absent fields keep their stored value")
	assert.Equal(t, "QTN-2024-001", updated.QuotationNo)
	assert.Len(t, updated.Items, 1)
}

func TestSaleUpdateRejectsInvalidStatus(t *testing.T) {
	ctx := context.Background()
	svc := newSaleFixture(t)

	bad := enum.SaleStatus("Shipped")
	_, err := svc.Update(ctx, "1", &SaleUpdateInput{Status: &bad})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSaleUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newSaleFixture(t)

	customer := "Nobody"
	_, err := svc.Update(ctx, "missing", &SaleUpdateInput{Customer: &customer})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSaleListSearchAndPaging(t *testing.T) {
	ctx := context.Background()
	svc := newSaleFixture(t)

	result, err := svc.List(ctx, nil, "abc corp")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "ABC Corporation", result.Items[0].Customer)

	paged, err := svc.List(ctx, &pagination.PaginationParams{Page: 2, PerPage: 1}, "")
	require.NoError(t, err)
	require.Len(t, paged.Items, 1)
	assert.Equal(t, "ABC Corporation", paged.Items[0].Customer)
	assert.True(t, paged.Pagination.HasPrev)
	assert.False(t, paged.Pagination.HasNext)
}

func TestSaleDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSaleFixture(t)

	require.NoError(t, svc.Delete(ctx, "1"))
	require.NoError(t, svc.Delete(ctx, "1"))

	result, err := svc.List(ctx, nil, "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}
