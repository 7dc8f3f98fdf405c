package validation

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/erazemk/itemservice/internal/model"
)

// saveCheck holds the constraints applied when creating an item.
type saveCheck struct {
	ItemName string `json:"itemName" validate:"notblank"`
	Price    *int   `json:"price" validate:"required,min=1000,max=1000000"`
	Quantity *int   `json:"quantity" validate:"required,lt=9999"`
}

// updateCheck holds the constraints applied when editing an item.
type updateCheck struct {
	ID       *int64 `json:"id" validate:"required"`
	ItemName string `json:"itemName" validate:"notblank"`
	Price    *int   `json:"price" validate:"required,min=1000,max=1000000"`
	Quantity *int   `json:"quantity" validate:"required,lt=9999"`
}

// Tagged evaluates constraint tags with go-playground/validator. Each mode
// has its own constraint struct. The composite rule is plain code.
type Tagged struct {
	validate *validator.Validate
}

// NewTagged returns a Tagged validator. It is safe for concurrent use.
func NewTagged() *Tagged {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &Tagged{validate: v}
}

// Validate implements Validator.
func (t *Tagged) Validate(item model.Item, mode Mode) Errors {
	var target any
	switch mode {
	case Update:
		target = updateCheck{ID: item.ID, ItemName: item.ItemName, Price: item.Price, Quantity: item.Quantity}
	default:
		target = saveCheck{ItemName: item.ItemName, Price: item.Price, Quantity: item.Quantity}
	}

	errs := Errors{}
	if err := t.validate.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			slog.Error("constraint check failed", "mode", mode.String(), "error", err)
			return errs
		}
		for _, fe := range fieldErrs {
			code := codeForTag(fe.Tag())
			errs.Add(fe.Field(), code, argsFor(code)...)
		}
	}

	checkTotalPrice(item, errs)
	return errs
}

func codeForTag(tag string) string {
	switch tag {
	case "required", "notblank":
		return CodeRequired
	case "min", "max":
		return CodeRange
	case "lt":
		return CodeMax
	default:
		return tag
	}
}

func argsFor(code string) []any {
	switch code {
	case CodeRange:
		return []any{MinPrice, MaxPrice}
	case CodeMax:
		return []any{QuantityLimit}
	default:
		return nil
	}
}
