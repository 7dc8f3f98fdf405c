package validation

import (
	"strings"

	"github.com/erazemk/itemservice/internal/model"
)

// Manual checks each rule by hand.
type Manual struct{}

// Validate implements Validator.
func (Manual) Validate(item model.Item, mode Mode) Errors {
	errs := Errors{}

	if mode == Update && item.ID == nil {
		errs.Add(FieldID, CodeRequired)
	}

	if strings.TrimSpace(item.ItemName) == "" {
		errs.Add(FieldItemName, CodeRequired)
	}

	switch {
	case item.Price == nil:
		errs.Add(FieldPrice, CodeRequired)
	case *item.Price < MinPrice || *item.Price > MaxPrice:
		errs.Add(FieldPrice, CodeRange, MinPrice, MaxPrice)
	}

	switch {
	case item.Quantity == nil:
		errs.Add(FieldQuantity, CodeRequired)
	case *item.Quantity >= QuantityLimit:
		errs.Add(FieldQuantity, CodeMax, QuantityLimit)
	}

	checkTotalPrice(item, errs)
	return errs
}
