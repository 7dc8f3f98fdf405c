// Package store persists items.
package store

import (
	"context"
	"errors"

	"github.com/erazemk/itemservice/internal/model"
)

// ErrNotFound is returned when no item has the requested ID.
var ErrNotFound = errors.New("item not found")

// Store is the item repository. Implementations are safe for concurrent use
// and never hand out values that alias their own state.
type Store interface {
	// Save assigns a new ID to item, stores it and returns the stored copy.
	Save(ctx context.Context, item model.Item) (model.Item, error)

	// FindByID returns the item with the given ID or ErrNotFound.
	FindByID(ctx context.Context, id int64) (model.Item, error)

	// FindAll returns every item in insertion order.
	FindAll(ctx context.Context) ([]model.Item, error)

	// Update replaces the name, price and quantity of the item with the
	// given ID. The ID itself never changes.
	Update(ctx context.Context, id int64, item model.Item) error
}
