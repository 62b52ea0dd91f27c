package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
)

func record(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorValidation(t *testing.T) {
	w := record(apierr.Validation("email", "is required"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != apierr.CodeValidation || env.Error.Field != "email" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRespondErrorMasksInternalCause(t *testing.T) {
	w := record(apierr.External("user", errors.New("dial tcp 10.0.0.5: connection refused")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Message != "internal error" {
		t.Fatalf("cause leaked: %+v", env)
	}
}

func TestRespondErrorPlainError(t *testing.T) {
	w := record(errors.New("something broke"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Message != "internal error" {
		t.Fatalf("cause leaked: %+v", env)
	}
}

func TestRespondErrorNotFound(t *testing.T) {
	w := record(apierr.NotFound("role", 9))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Message != "role 9 not found" {
		t.Fatalf("unexpected message: %+v", env)
	}
}
