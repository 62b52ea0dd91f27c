package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/http/response"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/services"
)

// HistoryHandler exposes the audit trail read side plus note amendment.
// Rows are created by evaluation state changes, never through this API.
type HistoryHandler struct {
	log            *logger.Logger
	historyService services.HistoryService
}

func NewHistoryHandler(baseLog *logger.Logger, historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		log:            baseLog.With("handler", "HistoryHandler"),
		historyService: historyService,
	}
}

func (h *HistoryHandler) List(c *gin.Context) {
	items, err := h.historyService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *HistoryHandler) Get(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	item, err := h.historyService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, item)
}

func (h *HistoryHandler) Patch(c *gin.Context) {
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
	patched, err := h.historyService.Patch(c.Request.Context(), id, fields)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, patched)
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.historyService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
