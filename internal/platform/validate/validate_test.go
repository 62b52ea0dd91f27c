package validate

import (
	"testing"

	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
)

func TestRequired(t *testing.T) {
	if Required("name", "ok") != nil {
		t.Fatalf("non-empty value should pass")
	}
	if Required("name", "") == nil {
		t.Fatalf("empty value should fail")
	}
	if Required("name", "   ") == nil {
		t.Fatalf("whitespace-only value should fail")
	}
}

func TestPositiveID(t *testing.T) {
	if PositiveID("id", 1) != nil {
		t.Fatalf("positive id should pass")
	}
	err := PositiveID("id", 0)
	if err == nil || err.Field != "id" {
		t.Fatalf("zero id should fail with field set, got %+v", err)
	}
}

func TestFirst(t *testing.T) {
	if First(nil, nil) != nil {
		t.Fatalf("all-nil should pass")
	}
	second := apierr.Validation("b", "is required")
	got := First(nil, second, apierr.Validation("c", "is required"))
	if got == nil || apierr.From(got).Field != "b" {
		t.Fatalf("expected first failure, got %v", got)
	}
}
