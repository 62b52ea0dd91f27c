// Package apierr carries the error taxonomy shared by services and the
// HTTP boundary: validation failures, missing entities, and wrapped
// infrastructure faults.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeExternal   = "external_service_error"
)

type Error struct {
	Status int
	Code   string
	Field  string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation rejects caller-supplied input. Field names the offending
// DTO field so clients can surface it.
func Validation(field, msg string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   CodeValidation,
		Field:  field,
		Err:    fmt.Errorf("%s: %s", field, msg),
	}
}

// NotFound marks a referenced ID with no matching row.
func NotFound(entity string, id uint) *Error {
	return &Error{
		Status: http.StatusNotFound,
		Code:   CodeNotFound,
		Err:    fmt.Errorf("%s %d not found", entity, id),
	}
}

// External wraps an unexpected gateway fault. The cause is kept for
// logs; the boundary never echoes it to the caller.
func External(entity string, err error) *Error {
	return &Error{
		Status: http.StatusInternalServerError,
		Code:   CodeExternal,
		Err:    fmt.Errorf("%s store operation failed: %w", entity, err),
	}
}

// From extracts an *Error from err's chain, or nil.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

func IsValidation(err error) bool {
	ae := From(err)
	return ae != nil && ae.Code == CodeValidation
}

func IsNotFound(err error) bool {
	ae := From(err)
	return ae != nil && ae.Code == CodeNotFound
}

func IsExternal(err error) bool {
	ae := From(err)
	return ae != nil && ae.Code == CodeExternal
}
