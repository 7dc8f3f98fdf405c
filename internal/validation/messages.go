package validation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// messages is looked up as "code.field" first, then "code".
var messages = map[string]string{
	"required.id":           "Item id is required.",
	"required.itemName":     "Item name is required.",
	"required.price":        "Price is required.",
	"required.quantity":     "Quantity is required.",
	"required":              "This field is required.",
	"range.price":           "Price must be between %d and %d.",
	"range":                 "Value must be between %d and %d.",
	"max.quantity":          "Quantity must be less than %d.",
	"max":                   "Value must be less than %d.",
	"typeMismatch.id":       "Item id must be a whole number.",
	"typeMismatch.price":    "Price must be a whole number.",
	"typeMismatch.quantity": "Quantity must be a whole number.",
	"typeMismatch":          "Enter a valid value.",
	"idMismatch.id":         "Item id does not match the item being edited.",
	"totalPriceMin":         "Price * quantity must be at least %d. Current value = %d.",
}

var printer = message.NewPrinter(language.English)

// Message renders the message for a violation of code on key.
func Message(key, code string, args ...any) string {
	format, ok := messages[code+"."+key]
	if !ok {
		format, ok = messages[code]
	}
	if !ok {
		return code
	}
	return printer.Sprintf(format, args...)
}
