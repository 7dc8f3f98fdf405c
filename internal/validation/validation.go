// Package validation checks submitted items against the shop's rules and
// reports every violation keyed by field.
package validation

import (
	"fmt"

	"github.com/erazemk/itemservice/internal/model"
)

// Rule limits.
const (
	MinPrice = 1000
	MaxPrice = 1000000

	// QuantityLimit is exclusive: a quantity of 9999 is rejected.
	QuantityLimit = 9999

	MinTotalPrice = 10000
)

// Mode selects the rule set.
type Mode int

const (
	// Create validates a new item. The ID is not checked.
	Create Mode = iota
	// Update validates an edit of an existing item. The ID is required.
	Update
)

func (m Mode) String() string {
	switch m {
	case Create:
		return "create"
	case Update:
		return "update"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Validator checks an item. Implementations run every rule, never mutate
// the item, and return an empty mapping for a valid item.
type Validator interface {
	Validate(item model.Item, mode Mode) Errors
}

// Strategies accepted by New.
const (
	StrategyManual = "manual"
	StrategyTagged = "tagged"
)

// New returns the validator for the named strategy.
func New(strategy string) (Validator, error) {
	switch strategy {
	case StrategyManual:
		return Manual{}, nil
	case StrategyTagged:
		return NewTagged(), nil
	default:
		return nil, fmt.Errorf("unknown validation strategy %q", strategy)
	}
}

// checkTotalPrice applies the composite rule. It only runs when both price
// and quantity are present.
func checkTotalPrice(item model.Item, errs Errors) {
	total, ok := item.TotalPrice()
	if ok && total < MinTotalPrice {
		errs.Add(GlobalKey, CodeTotalPriceMin, MinTotalPrice, total)
	}
}
