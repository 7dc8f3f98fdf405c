package store

import (
	"context"
	"sync"

	"github.com/erazemk/itemservice/internal/model"
)

// Memory keeps items in a map guarded by a mutex.
type Memory struct {
	mu     sync.RWMutex
	items  map[int64]model.Item
	order  []int64
	nextID int64
}

// NewMemory returns an empty in-memory store. IDs start at 1.
func NewMemory() *Memory {
	return &Memory{
		items:  make(map[int64]model.Item),
		nextID: 1,
	}
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, item model.Item) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	stored := item.Clone()
	stored.ID = &id
	m.items[id] = stored
	m.order = append(m.order, id)

	return stored.Clone(), nil
}

// FindByID implements Store.
func (m *Memory) FindByID(_ context.Context, id int64) (model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return model.Item{}, ErrNotFound
	}
	return item.Clone(), nil
}

// FindAll implements Store.
func (m *Memory) FindAll(_ context.Context) ([]model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]model.Item, 0, len(m.order))
	for _, id := range m.order {
		items = append(items, m.items[id].Clone())
	}
	return items, nil
}

// Update implements Store.
func (m *Memory) Update(_ context.Context, id int64, item model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}

	src := item.Clone()
	stored.ItemName = src.ItemName
	stored.Price = src.Price
	stored.Quantity = src.Quantity
	m.items[id] = stored
	return nil
}
