package validation

import (
	"sort"
	"strings"
)

// GlobalKey is the error key for violations that involve more than one field.
const GlobalKey = "globalError"

// Field keys.
const (
	FieldID       = "id"
	FieldItemName = "itemName"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// Violation codes.
const (
	CodeRequired      = "required"
	CodeRange         = "range"
	CodeMax           = "max"
	CodeTypeMismatch  = "typeMismatch"
	CodeTotalPriceMin = "totalPriceMin"
	CodeIDMismatch    = "idMismatch"
)

// Violation is a single failed rule. Args holds the values interpolated
// into Message, e.g. the threshold and the computed total for totalPriceMin.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Args    []any  `json:"args,omitempty"`
}

// Errors maps a field key (or GlobalKey) to its violation. An empty
// mapping means the item is valid.
type Errors map[string]Violation

// Add records a violation for key unless one is already recorded.
func (e Errors) Add(key, code string, args ...any) {
	if _, ok := e[key]; ok {
		return
	}
	e[key] = Violation{Code: code, Message: Message(key, code, args...), Args: args}
}

// Has reports whether key has a violation.
func (e Errors) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Message returns the message recorded for key, or "".
func (e Errors) Message(key string) string {
	return e[key].Message
}

// Global returns the message of the global violation, or "".
func (e Errors) Global() string {
	return e.Message(GlobalKey)
}

// Merge returns a new mapping holding the entries of e and other.
// Entries of e win, so binding failures hide validator results for the
// same field.
func (e Errors) Merge(other Errors) Errors {
	out := make(Errors, len(e)+len(other))
	for k, v := range other {
		out[k] = v
	}
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Error lists the violations sorted by key.
func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k].Message)
	}
	return strings.Join(parts, "; ")
}
