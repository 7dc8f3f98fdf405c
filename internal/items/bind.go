package items

import (
	"strconv"
	"strings"

	"github.com/erazemk/itemservice/internal/model"
	"github.com/erazemk/itemservice/internal/validation"
)

// Form holds the raw submitted values. Rejected submissions are rendered
// back from a Form, so the user sees exactly what they typed.
type Form struct {
	ID       string
	ItemName string
	Price    string
	Quantity string
}

// FormFromItem fills a form with a stored item's values.
func FormFromItem(item model.Item) Form {
	f := Form{ItemName: item.ItemName}
	if item.ID != nil {
		f.ID = strconv.FormatInt(*item.ID, 10)
	}
	if item.Price != nil {
		f.Price = strconv.Itoa(*item.Price)
	}
	if item.Quantity != nil {
		f.Quantity = strconv.Itoa(*item.Quantity)
	}
	return f
}

// Bind converts the form into an item. Blank numeric fields stay nil.
// Values that are not integers are left nil and reported as typeMismatch
// on their field.
func (f Form) Bind() (model.Item, validation.Errors) {
	errs := validation.Errors{}
	item := model.Item{ItemName: f.ItemName}

	if s := strings.TrimSpace(f.ID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			errs.Add(validation.FieldID, validation.CodeTypeMismatch)
		} else {
			item.ID = &id
		}
	}

	item.Price = bindInt(f.Price, validation.FieldPrice, errs)
	item.Quantity = bindInt(f.Quantity, validation.FieldQuantity, errs)

	return item, errs
}

// bindInt parses a 32-bit integer.
func bindInt(raw, field string, errs validation.Errors) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		errs.Add(field, validation.CodeTypeMismatch)
		return nil
	}
	n := int(v)
	return &n
}
