// Package items holds the create and update flows shared by the web pages
// and the JSON API.
package items

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/erazemk/itemservice/internal/model"
	"github.com/erazemk/itemservice/internal/store"
	"github.com/erazemk/itemservice/internal/validation"
)

// Service binds, validates and persists items.
type Service struct {
	Store     store.Store
	Validator validation.Validator
}

// NewService returns a service over the given store and validator.
func NewService(s store.Store, v validation.Validator) *Service {
	return &Service{Store: s, Validator: v}
}

// List returns all items.
func (s *Service) List(ctx context.Context) ([]model.Item, error) {
	return s.Store.FindAll(ctx)
}

// Get returns one item or store.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (model.Item, error) {
	return s.Store.FindByID(ctx, id)
}

// Create validates the submission and saves it. A non-empty Errors means
// the submission was rejected and nothing was stored.
func (s *Service) Create(ctx context.Context, form Form) (model.Item, validation.Errors, error) {
	item, bindErrs := form.Bind()
	errs := bindErrs.Merge(s.Validator.Validate(item, validation.Create))
	if len(errs) > 0 {
		slog.Info("item rejected", "mode", validation.Create.String(), "errors", errs.Error())
		return item, errs, nil
	}

	// The ID is assigned by the store.
	item.ID = nil
	saved, err := s.Store.Save(ctx, item)
	if err != nil {
		return model.Item{}, nil, fmt.Errorf("saving item: %w", err)
	}
	return saved, nil, nil
}

// Update looks up the item, validates the submission with the update rules
// and applies it. The submitted id must name the item being edited. It
// returns store.ErrNotFound when id does not exist.
func (s *Service) Update(ctx context.Context, id int64, form Form) (model.Item, validation.Errors, error) {
	if _, err := s.Store.FindByID(ctx, id); err != nil {
		return model.Item{}, nil, err
	}

	item, bindErrs := form.Bind()
	if item.ID != nil && *item.ID != id {
		bindErrs.Add(validation.FieldID, validation.CodeIDMismatch)
	}
	errs := bindErrs.Merge(s.Validator.Validate(item, validation.Update))
	if len(errs) > 0 {
		slog.Info("item rejected", "mode", validation.Update.String(), "id", id, "errors", errs.Error())
		return item, errs, nil
	}

	if err := s.Store.Update(ctx, id, item); err != nil {
		return model.Item{}, nil, fmt.Errorf("updating item %d: %w", id, err)
	}
	saved, err := s.Store.FindByID(ctx, id)
	return saved, nil, err
}
