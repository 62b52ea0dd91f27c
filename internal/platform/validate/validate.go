// Package validate holds the field-presence checks shared by every
// service. Anything richer than presence and positivity belongs to the
// service itself.
package validate

import (
	"strings"

	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
)

// Required rejects empty or whitespace-only strings.
func Required(field, value string) *apierr.Error {
	if strings.TrimSpace(value) == "" {
		return apierr.Validation(field, "is required")
	}
	return nil
}

// PositiveID rejects zero IDs on id-based operations.
func PositiveID(field string, id uint) *apierr.Error {
	if id == 0 {
		return apierr.Validation(field, "must be a positive id")
	}
	return nil
}

// First returns the first non-nil validation error.
func First(errs ...*apierr.Error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
