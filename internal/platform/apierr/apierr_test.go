package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationShape(t *testing.T) {
	err := Validation("email", "is required")
	if err.Status != http.StatusBadRequest || err.Code != CodeValidation || err.Field != "email" {
		t.Fatalf("unexpected shape: %+v", err)
	}
	if !IsValidation(err) {
		t.Fatalf("IsValidation should hold")
	}
}

func TestNotFoundShape(t *testing.T) {
	err := NotFound("role", 42)
	if err.Status != http.StatusNotFound || err.Code != CodeNotFound {
		t.Fatalf("unexpected shape: %+v", err)
	}
	if err.Error() != "role 42 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound should hold")
	}
}

func TestExternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := External("user", cause)
	if err.Status != http.StatusInternalServerError || !IsExternal(err) {
		t.Fatalf("unexpected shape: %+v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause should survive wrapping")
	}
}

func TestFromTraversesChain(t *testing.T) {
	inner := NotFound("state", 3)
	wrapped := fmt.Errorf("while transitioning: %w", inner)
	got := From(wrapped)
	if got == nil || got.Code != CodeNotFound {
		t.Fatalf("expected inner error, got %+v", got)
	}
	if From(errors.New("plain")) != nil {
		t.Fatalf("plain errors must not match")
	}
}
