package memstore

import (
	"strconv"
	"sync"
	"time"

	"github.com/lahiruj/autolanka-erp/pkg/utils"
)

// Collection is an in-memory record store with owned state, constructed per
// run or per test. It synthesizes timestamp identifiers on create, replaces
// whole records on update and filters on delete. Last write wins; there is
// no transactionality, which is acceptable for a single-user process.
type Collection[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(*T) *string
	now   func() time.Time
}

// NewCollection creates an empty collection. The id accessor points at the
// record's identifier field so the collection can assign and compare ids.
func NewCollection[T any](id func(*T) *string) *Collection[T] {
	return &Collection[T]{
		id:  id,
		now: time.Now,
	}
}

// SetClock overrides the id-synthesis clock. Intended for tests.
func (c *Collection[T]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// List returns a copy of the collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Add assigns a fresh id, appends the record and returns the stored copy.
// Any caller-supplied id is overwritten; ids are never user-supplied.
func (c *Collection[T]) Add(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.id(&rec) = c.nextIDLocked()
	c.items = append(c.items, rec)
	return rec
}

// Replace swaps the stored record for the given id with rec, keeping the id.
// It reports false when the id is unknown.
func (c *Collection[T]) Replace(id string, rec T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			*c.id(&rec) = id
			c.items[i] = rec
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the record with the given id. Removing an unknown id is
// not an error.
func (c *Collection[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for i := range c.items {
		if *c.id(&c.items[i]) != id {
			kept = append(kept, c.items[i])
		}
	}
	c.items = kept
}

// Reset replaces the entire collection with the seed records, keeping their
// ids as given. Tests use this to isolate state between cases.
func (c *Collection[T]) Reset(seed []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(seed))
	copy(c.items, seed)
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// nextIDLocked synthesizes a millisecond-timestamp id, appending a sequence
// suffix when two creates land in the same millisecond.
func (c *Collection[T]) nextIDLocked() string {
	base := utils.TimestampID(c.now())
	candidate := base
	for seq := 1; c.containsLocked(candidate); seq++ {
		candidate = base + strconv.Itoa(seq)
	}
	return candidate
}

func (c *Collection[T]) containsLocked(id string) bool {
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			return true
		}
	}
	return false
}
