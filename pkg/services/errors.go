package services

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrColorNotFound           = errors.New("color not found")
	ErrIncompleteConfiguration = errors.New("configuration is incomplete")
	ErrSessionNotFound         = errors.New("session not found")
	ErrItemNotFound            = errors.New("item not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrNothingToCheckout       = errors.New("checkout needs an item or fromCart")
)

// ValidationError carries per-field messages keyed by json path.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}
