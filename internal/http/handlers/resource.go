package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/http/response"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

// ResourceService is the slice of a service a CRUD endpoint needs.
type ResourceService[D any] interface {
	List(ctx context.Context) ([]*D, error)
	Get(ctx context.Context, id uint) (*D, error)
	Create(ctx context.Context, in *D) (*D, error)
	Update(ctx context.Context, id uint, in *D) (*D, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*D, error)
	Delete(ctx context.Context, id uint) error
}

// Resource wires one DTO type onto the standard five-verb route set.
type Resource[D any] struct {
	log *logger.Logger
	svc ResourceService[D]
}

func NewResource[D any](baseLog *logger.Logger, name string, svc ResourceService[D]) *Resource[D] {
	return &Resource[D]{
		log: baseLog.With("handler", name),
		svc: svc,
	}
}

func (h *Resource[D]) Register(g *gin.RouterGroup, path string) {
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.PATCH(path+"/:id", h.Patch)
	g.DELETE(path+"/:id", h.Delete)
}

func (h *Resource[D]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *Resource[D]) Get(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, item)
}

func (h *Resource[D]) Create(c *gin.Context) {
	var in D
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (h *Resource[D]) Update(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var in D
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (h *Resource[D]) Patch(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	patched, err := h.svc.Patch(c.Request.Context(), id, fields)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, patched)
}

func (h *Resource[D]) Delete(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// PathID parses the :id route parameter.
func PathID(c *gin.Context) (uint, error) {
	return pathUint(c, "id")
}

func pathUint(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, apierr.Validation(name, "must be a positive integer")
	}
	return uint(v), nil
}
