package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/itemservice/internal/items"
	"github.com/erazemk/itemservice/internal/model"
	"github.com/erazemk/itemservice/internal/store"
	"github.com/erazemk/itemservice/internal/validation"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	Items *items.Service
}

// itemRequest keeps the numeric members raw so that strings, numbers and
// garbage all reach the binder and get the same treatment as form input.
type itemRequest struct {
	ID       json.RawMessage `json:"id"`
	ItemName string          `json:"itemName"`
	Price    json.RawMessage `json:"price"`
	Quantity json.RawMessage `json:"quantity"`
}

type errorsResponse struct {
	Errors validation.Errors `json:"errors"`
}

func (req itemRequest) form() items.Form {
	return items.Form{
		ID:       rawValue(req.ID),
		ItemName: req.ItemName,
		Price:    rawValue(req.Price),
		Quantity: rawValue(req.Quantity),
	}
}

// rawValue turns a JSON member into form text. Strings are unquoted, null
// and absent members become "", anything else is passed through verbatim.
func rawValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Items.List(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if list == nil {
		list = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, list)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Items.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		slog.Error("failed to get item", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, errs, err := h.Items.Create(r.Context(), req.form())
	if err != nil {
		slog.Error("failed to create item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}
	if len(errs) > 0 {
		jsonResponse(w, http.StatusBadRequest, errorsResponse{Errors: errs})
		return
	}

	slog.Info("item created", "id", item.IDValue(), "item", item.ItemName)
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, errs, err := h.Items.Update(r.Context(), id, req.form())
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		slog.Error("failed to update item", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	if len(errs) > 0 {
		jsonResponse(w, http.StatusBadRequest, errorsResponse{Errors: errs})
		return
	}

	slog.Info("item updated", "id", id, "item", item.ItemName)
	jsonResponse(w, http.StatusOK, item)
}
