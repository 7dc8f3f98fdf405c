package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/erazemk/itemservice/internal/auth"
	"github.com/erazemk/itemservice/internal/items"
	"github.com/erazemk/itemservice/internal/store"
	"github.com/erazemk/itemservice/internal/validation"
)

const testJWTSecret = "test-secret"

func setupTestRouter(t *testing.T, op auth.Operator) (http.Handler, *items.Service) {
	t.Helper()
	svc := items.NewService(store.NewMemory(), validation.NewTagged())
	router, err := NewRouter(svc, op, testJWTSecret, nil)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router, svc
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(b)
}

func itemValues(name, price, quantity string) url.Values {
	return url.Values{"itemName": {name}, "price": {price}, "quantity": {quantity}}
}

func TestRootRedirectsToItems(t *testing.T) {
	router, _ := setupTestRouter(t, auth.Operator{})
	rec := get(t, router, "/")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/items" {
		t.Errorf("expected 303 to /items, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAddPageRendersEmptyForm(t *testing.T) {
	router, _ := setupTestRouter(t, auth.Operator{})
	rec := get(t, router, "/items/add")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	html := body(t, rec)
	for _, want := range []string{`name="itemName"`, `name="price"`, `name="quantity"`, `action="/items/add"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected form to contain %s", want)
		}
	}
	if strings.Contains(html, "field-error") {
		t.Error("empty form must not show errors")
	}
}

func TestAddValidRedirectsToDetail(t *testing.T) {
	router, svc := setupTestRouter(t, auth.Operator{})

	rec := postForm(t, router, "/items/add", itemValues("Book", "10000", "10"))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, body(t, rec))
	}
	if loc := rec.Header().Get("Location"); loc != "/items/1?status=true" {
		t.Errorf("expected redirect to /items/1?status=true, got %q", loc)
	}

	list, _ := svc.List(t.Context())
	if len(list) != 1 || list[0].ItemName != "Book" {
		t.Fatalf("expected one stored item, got %+v", list)
	}

	detail := get(t, router, "/items/1?status=true")
	if detail.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", detail.Code)
	}
	html := body(t, detail)
	if !strings.Contains(html, `id="saved"`) {
		t.Error("expected saved banner")
	}
	if !strings.Contains(html, "10,000") {
		t.Error("expected formatted price")
	}

	plain := body(t, get(t, router, "/items/1"))
	if strings.Contains(plain, `id="saved"`) {
		t.Error("saved banner must only show with status=true")
	}
}

func TestAddInvalidRedisplaysForm(t *testing.T) {
	router, svc := setupTestRouter(t, auth.Operator{})

	rec := postForm(t, router, "/items/add", itemValues("", "100", "50"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	html := body(t, rec)
	for _, want := range []string{
		"Item name is required.",
		"Price must be between 1,000 and 1,000,000.",
		"Price * quantity must be at least 10,000. Current value = 5,000.",
		`value="100"`,
		`value="50"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}

	list, _ := svc.List(t.Context())
	if len(list) != 0 {
		t.Errorf("expected nothing stored, got %d items", len(list))
	}
}

func TestAddTypeMismatchKeepsInput(t *testing.T) {
	router, _ := setupTestRouter(t, auth.Operator{})

	rec := postForm(t, router, "/items/add", itemValues("Book", "abc", "10"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	html := body(t, rec)
	if !strings.Contains(html, `value="abc"`) {
		t.Error("expected the non-numeric price to be shown back")
	}
	if !strings.Contains(html, "Price must be a whole number.") {
		t.Error("expected type mismatch message")
	}
	if strings.Contains(html, "global-error") {
		t.Error("global rule must not run without a price")
	}
}

func TestDetailErrors(t *testing.T) {
	router, _ := setupTestRouter(t, auth.Operator{})

	if rec := get(t, router, "/items/42"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec := get(t, router, "/items/abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestEditFlow(t *testing.T) {
	router, svc := setupTestRouter(t, auth.Operator{})
	if _, errs, err := svc.Create(t.Context(), items.Form{ItemName: "Book", Price: "10000", Quantity: "10"}); err != nil || len(errs) != 0 {
		t.Fatalf("Create: err=%v errs=%v", err, errs)
	}

	page := get(t, router, "/items/1/edit")
	if page.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", page.Code)
	}
	html := body(t, page)
	if !strings.Contains(html, `value="Book"`) || !strings.Contains(html, `value="10000"`) {
		t.Error("expected edit form to be filled with the stored item")
	}

	// Missing id.
	rec := postForm(t, router, "/items/1/edit", itemValues("Novel", "20000", "5"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body(t, rec), "Item id is required.") {
		t.Error("expected id required message")
	}

	values := itemValues("Novel", "20000", "5")
	values.Set("id", "1")
	rec = postForm(t, router, "/items/1/edit", values)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/items/1" {
		t.Fatalf("expected 303 to /items/1, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	got, err := svc.Get(t.Context(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ItemName != "Novel" || *got.Price != 20000 || *got.Quantity != 5 {
		t.Errorf("unexpected item after edit: %+v", got)
	}
}

func TestEditInvalidKeepsStoredItem(t *testing.T) {
	router, svc := setupTestRouter(t, auth.Operator{})
	svc.Create(t.Context(), items.Form{ItemName: "Book", Price: "10000", Quantity: "10"})

	values := itemValues("Book", "10000", "9999")
	values.Set("id", "1")
	rec := postForm(t, router, "/items/1/edit", values)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body(t, rec), "Quantity must be less than 9,999.") {
		t.Error("expected quantity message")
	}

	got, _ := svc.Get(t.Context(), 1)
	if *got.Quantity != 10 {
		t.Errorf("rejected edit changed the item: %+v", got)
	}
}

func TestEditUnknownItem(t *testing.T) {
	router, _ := setupTestRouter(t, auth.Operator{})

	if rec := get(t, router, "/items/7/edit"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	values := itemValues("Book", "10000", "10")
	values.Set("id", "7")
	if rec := postForm(t, router, "/items/7/edit", values); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestItemsPageListsItems(t *testing.T) {
	router, svc := setupTestRouter(t, auth.Operator{})
	svc.Create(t.Context(), items.Form{ItemName: "Book", Price: "10000", Quantity: "10"})
	svc.Create(t.Context(), items.Form{ItemName: "Lamp", Price: "25000", Quantity: "2"})

	rec := get(t, router, "/items")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	html := body(t, rec)
	if strings.Index(html, "Book") > strings.Index(html, "Lamp") || !strings.Contains(html, "Lamp") {
		t.Error("expected items in insertion order")
	}
}

func TestEditMismatchedIDIsRejected(t *testing.T) {
	router, svc := setupTestRouter(t, auth.Operator{})
	svc.Create(t.Context(), items.Form{ItemName: "Book", Price: "10000", Quantity: "10"})
	svc.Create(t.Context(), items.Form{ItemName: "Lamp", Price: "25000", Quantity: "2"})

	values := itemValues("Novel", "20000", "5")
	values.Set("id", "2")
	rec := postForm(t, router, "/items/1/edit", values)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body(t, rec), "Item id does not match the item being edited.") {
		t.Error("expected id mismatch message")
	}

	got, _ := svc.Get(t.Context(), 1)
	if got.ItemName != "Book" {
		t.Errorf("rejected edit changed the item: %+v", got)
	}
}
