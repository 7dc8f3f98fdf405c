package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/itemservice/internal/items"
	"github.com/erazemk/itemservice/internal/model"
	"github.com/erazemk/itemservice/internal/store"
	"github.com/erazemk/itemservice/internal/validation"
)

// itemFormPage is the data for both the add and the edit form. On a
// rejected submission Form holds what the user sent and Errors says why.
type itemFormPage struct {
	PageData
	Action  string
	Cancel  string
	Editing bool
	Form    items.Form
	Errors  validation.Errors
}

// ItemsPage handles GET /items.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	list, err := s.Items.List(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items []model.Item
	}{
		PageData: s.page(r, "Items"),
		Items:    list,
	})
}

// ItemDetailPage handles GET /items/{id}. The status=true query parameter
// is set by the redirect after a successful create.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupItem(w, r)
	if !ok {
		return
	}

	s.Templates.Render(w, "item.html", &struct {
		PageData
		Item  model.Item
		Saved bool
	}{
		PageData: s.page(r, item.ItemName),
		Item:     item,
		Saved:    r.URL.Query().Get("status") == "true",
	})
}

// ItemAddPage handles GET /items/add.
func (s *Server) ItemAddPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "item_form.html", &itemFormPage{
		PageData: s.page(r, "Add item"),
		Action:   "/items/add",
		Cancel:   "/items",
	})
}

// ItemAddSubmit handles POST /items/add.
func (s *Server) ItemAddSubmit(w http.ResponseWriter, r *http.Request) {
	form, ok := parseItemForm(w, r)
	if !ok {
		return
	}

	saved, errs, err := s.Items.Create(r.Context(), form)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(errs) > 0 {
		s.Templates.Render(w, "item_form.html", &itemFormPage{
			PageData: s.page(r, "Add item"),
			Action:   "/items/add",
			Cancel:   "/items",
			Form:     form,
			Errors:   errs,
		})
		return
	}

	slog.Info("item created", "id", saved.IDValue(), "item", saved.ItemName)
	http.Redirect(w, r, fmt.Sprintf("/items/%d?status=true", saved.IDValue()), http.StatusSeeOther)
}

// ItemEditPage handles GET /items/{id}/edit.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupItem(w, r)
	if !ok {
		return
	}

	id := item.IDValue()
	s.Templates.Render(w, "item_form.html", &itemFormPage{
		PageData: s.page(r, "Edit item"),
		Action:   fmt.Sprintf("/items/%d/edit", id),
		Cancel:   fmt.Sprintf("/items/%d", id),
		Editing:  true,
		Form:     items.FormFromItem(item),
	})
}

// ItemEditSubmit handles POST /items/{id}/edit.
func (s *Server) ItemEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	form, ok := parseItemForm(w, r)
	if !ok {
		return
	}

	updated, errs, err := s.Items.Update(r.Context(), id, form)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update item", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(errs) > 0 {
		s.Templates.Render(w, "item_form.html", &itemFormPage{
			PageData: s.page(r, "Edit item"),
			Action:   fmt.Sprintf("/items/%d/edit", id),
			Cancel:   fmt.Sprintf("/items/%d", id),
			Editing:  true,
			Form:     form,
			Errors:   errs,
		})
		return
	}

	slog.Info("item updated", "id", id, "item", updated.ItemName)
	http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
}

// lookupItem loads the item named by the {id} path value, writing a 400 or
// 404 response when it cannot.
func (s *Server) lookupItem(w http.ResponseWriter, r *http.Request) (model.Item, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return model.Item{}, false
	}

	item, err := s.Items.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return model.Item{}, false
	}
	if err != nil {
		slog.Error("failed to get item", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return model.Item{}, false
	}
	return item, true
}

// parseItemForm reads the submitted item fields.
func parseItemForm(w http.ResponseWriter, r *http.Request) (items.Form, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return items.Form{}, false
	}
	return items.Form{
		ID:       r.PostFormValue("id"),
		ItemName: r.PostFormValue("itemName"),
		Price:    r.PostFormValue("price"),
		Quantity: r.PostFormValue("quantity"),
	}, true
}
