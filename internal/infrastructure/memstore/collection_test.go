package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
)

func newCustomerCollection() *Collection[entity.Customer] {
	return NewCollection(func(c *entity.Customer) *string { return &c.ID })
}

func TestCollectionCreateAssignsUniqueIDs(t *testing.T) {
	c := newCustomerCollection()
	// Freeze the clock so every create lands in the same millisecond.
	fixed := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return fixed })

	first := c.Add(entity.Customer{Name: "John Doe"})
	second := c.Add(entity.Customer{Name: "Jane Smith"})
	third := c.Add(entity.Customer{Name: "Alice Johnson"})

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)
	assert.Equal(t, 3, c.Len())
}

func TestCollectionCreateOverwritesCallerSuppliedID(t *testing.T) {
	c := newCustomerCollection()
	stored := c.Add(entity.Customer{ID: "user-supplied", Name: "John Doe"})
	assert.NotEqual(t, "user-supplied", stored.ID)
}

func TestCollectionReplaceKeepsIDAndOtherRecords(t *testing.T) {
	c := newCustomerCollection()
	a := c.Add(entity.Customer{Name: "John Doe", Orders: 5})
	b := c.Add(entity.Customer{Name: "Jane Smith", Orders: 3})

	updated, ok := c.Replace(a.ID, entity.Customer{Name: "John Doe", Orders: 6, Status: enum.CustomerStatusActive})
	require.True(t, ok)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, 6, updated.Orders)
	assert.Equal(t, 2, c.Len())

	got, ok := c.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", got.Name)
}

func TestCollectionReplaceUnknownID(t *testing.T) {
	c := newCustomerCollection()
	_, ok := c.Replace("missing", entity.Customer{Name: "Nobody"})
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCollectionRemoveIsIdempotent(t *testing.T) {
	c := newCustomerCollection()
	a := c.Add(entity.Customer{Name: "John Doe"})

	c.Remove(a.ID)
	assert.Equal(t, 0, c.Len())

	// Removing again must not be an error.
	c.Remove(a.ID)
	c.Remove("never-existed")
	assert.Equal(t, 0, c.Len())
}

func TestCollectionListPreservesInsertionOrder(t *testing.T) {
	c := newCustomerCollection()
	c.Add(entity.Customer{Name: "first"})
	c.Add(entity.Customer{Name: "second"})
	c.Add(entity.Customer{Name: "third"})

	names := []string{}
	for _, rec := range c.List() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestCollectionResetIsolatesState(t *testing.T) {
	c := newCustomerCollection()
	c.Add(entity.Customer{Name: "leftover"})

	c.Reset(SeedCustomers())
	assert.Equal(t, len(SeedCustomers()), c.Len())

	got, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "John Doe", got.Name)

	c.Reset(nil)
	assert.Equal(t, 0, c.Len())
}

func TestSaleRepositoryContract(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository()
	require.NoError(t, repo.Reset(ctx, SeedSales()))

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	sale, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "John Doe", sale.Customer)

	missing, err := repo.GetByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	sale.Status = enum.SaleStatusCompleted
	require.NoError(t, repo.Update(ctx, sale))

	reread, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusCompleted, reread.Status)
	assert.Equal(t, 20000.0, reread.Amount, "untouched fields survive an update")

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"))

	sales, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
