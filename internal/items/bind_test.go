package items

import (
	"testing"

	"github.com/erazemk/itemservice/internal/model"
	"github.com/erazemk/itemservice/internal/validation"
)

func TestBindValid(t *testing.T) {
	item, errs := Form{ItemName: "Book", Price: "10000", Quantity: " 10 "}.Bind()
	if len(errs) != 0 {
		t.Fatalf("expected no binding errors, got %v", errs)
	}
	if item.ItemName != "Book" || *item.Price != 10000 || *item.Quantity != 10 {
		t.Errorf("unexpected item %+v", item)
	}
	if item.ID != nil {
		t.Errorf("expected nil id, got %d", *item.ID)
	}
}

func TestBindBlankNumbersAreAbsent(t *testing.T) {
	item, errs := Form{Price: "", Quantity: "   "}.Bind()
	if len(errs) != 0 {
		t.Errorf("expected no binding errors, got %v", errs)
	}
	if item.Price != nil || item.Quantity != nil {
		t.Errorf("expected nil price and quantity, got %+v", item)
	}
}

func TestBindTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		form Form
		key  string
	}{
		{"letters in price", Form{Price: "abc", Quantity: "1"}, validation.FieldPrice},
		{"decimal quantity", Form{Price: "1000", Quantity: "1.5"}, validation.FieldQuantity},
		{"price beyond 32 bits", Form{Price: "2147483648", Quantity: "1"}, validation.FieldPrice},
		{"id not a number", Form{ID: "x", Price: "1000", Quantity: "1"}, validation.FieldID},
	}

	for _, tt := range tests {
		item, errs := tt.form.Bind()
		if errs[tt.key].Code != validation.CodeTypeMismatch {
			t.Errorf("%s: expected typeMismatch on %s, got %v", tt.name, tt.key, errs)
		}
		if len(errs) != 1 {
			t.Errorf("%s: expected exactly one error, got %v", tt.name, errs)
		}
		if tt.key == validation.FieldPrice && item.Price != nil {
			t.Errorf("%s: expected nil price after failed conversion", tt.name)
		}
	}
}

func TestFormFromItemRoundTrip(t *testing.T) {
	id := int64(3)
	item := model.NewItem("Book", 10000, 10)
	item.ID = &id

	f := FormFromItem(item)
	if f != (Form{ID: "3", ItemName: "Book", Price: "10000", Quantity: "10"}) {
		t.Errorf("unexpected form %+v", f)
	}

	back, errs := f.Bind()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if *back.ID != 3 || *back.Price != 10000 || *back.Quantity != 10 {
		t.Errorf("unexpected item %+v", back)
	}
}
