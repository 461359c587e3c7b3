package common

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = newValidator()

const (
	REQUEST_TIMEOUT_SECS = 2 * 60 * time.Second
	DEFAULT_SESSION_TTL  = 24 * time.Hour

	PRODUCT_COLLECTION  = "Product"
	CATEGORY_COLLECTION = "Category"
	REVIEW_COLLECTION   = "ProductReview"
)

// newValidator reports fields by their json names, so validation errors
// line up with request bodies.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FieldErrors flattens validator errors into field -> tag, keyed by the
// json path below the top-level struct (e.g. "customer.email").
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if _, rest, found := strings.Cut(ns, "."); found {
			ns = rest
		}
		out[ns] = fe.Tag()
	}
	return out
}
