package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

// stubRoleService backs the generic handler with a map.
type stubRoleService struct {
	rows   map[uint]*dto.Role
	nextID uint
}

func newStubRoleService() *stubRoleService {
	return &stubRoleService{rows: map[uint]*dto.Role{}, nextID: 1}
}

func (s *stubRoleService) List(context.Context) ([]*dto.Role, error) {
	out := make([]*dto.Role, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRoleService) Get(_ context.Context, id uint) (*dto.Role, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, apierr.NotFound("role", id)
	}
	return r, nil
}

func (s *stubRoleService) Create(_ context.Context, in *dto.Role) (*dto.Role, error) {
	if in.Name == "" {
		return nil, apierr.Validation("name", "is required")
	}
	in.ID = s.nextID
	s.nextID++
	s.rows[in.ID] = in
	return in, nil
}

func (s *stubRoleService) Update(_ context.Context, id uint, in *dto.Role) (*dto.Role, error) {
	if _, ok := s.rows[id]; !ok {
		return nil, apierr.NotFound("role", id)
	}
	in.ID = id
	s.rows[id] = in
	return in, nil
}

func (s *stubRoleService) Patch(_ context.Context, id uint, fields map[string]any) (*dto.Role, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, apierr.NotFound("role", id)
	}
	if v, ok := fields["name"].(string); ok {
		r.Name = v
	}
	return r, nil
}

func (s *stubRoleService) Delete(_ context.Context, id uint) error {
	if _, ok := s.rows[id]; !ok {
		return apierr.NotFound("role", id)
	}
	delete(s.rows, id)
	return nil
}

func newResourceRouter(t *testing.T) (*gin.Engine, *stubRoleService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	svc := newStubRoleService()
	h := NewResource[dto.Role](log, "RoleHandler", svc)
	router := gin.New()
	g := router.Group("/")
	h.Register(g, "/roles")
	return router, svc
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResourceCRUDRoutes(t *testing.T) {
	router, _ := newResourceRouter(t)

	w := do(t, router, http.MethodPost, "/roles", dto.Role{Name: "Evaluador"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}
	var created dto.Role
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = do(t, router, http.MethodGet, "/roles/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = do(t, router, http.MethodPut, "/roles/1", dto.Role{Name: "Revisor"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}

	w = do(t, router, http.MethodPatch, "/roles/1", map[string]any{"name": "Lector"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d", w.Code)
	}

	w = do(t, router, http.MethodDelete, "/roles/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = do(t, router, http.MethodGet, "/roles/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted row should be gone, status = %d", w.Code)
	}
}

func TestResourceRejectsBadIDAndBody(t *testing.T) {
	router, _ := newResourceRouter(t)

	w := do(t, router, http.MethodGet, "/roles/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", w.Code)
	}

	w = do(t, router, http.MethodGet, "/roles/0", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero id status = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/roles", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad body status = %d", w.Code)
	}

	w = do(t, router, http.MethodPost, "/roles", dto.Role{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("validation status = %d", w.Code)
	}
}
