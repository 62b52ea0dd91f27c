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

type EvaluationHandler struct {
	log               *logger.Logger
	evaluationService services.EvaluationService
	historyService    services.HistoryService
}

func NewEvaluationHandler(baseLog *logger.Logger, evaluationService services.EvaluationService, historyService services.HistoryService) *EvaluationHandler {
	return &EvaluationHandler{
		log:               baseLog.With("handler", "EvaluationHandler"),
		evaluationService: evaluationService,
		historyService:    historyService,
	}
}

func (h *EvaluationHandler) ListByExperience(c *gin.Context) {
	experienceID, err := pathUint(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	items, err := h.evaluationService.ListByExperience(c.Request.Context(), experienceID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

type changeStateRequest struct {
	StateID uint   `json:"state_id"`
	Note    string `json:"note"`
}

func (h *EvaluationHandler) ChangeState(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var in changeStateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	updated, err := h.evaluationService.ChangeState(c.Request.Context(), id, in.StateID, in.Note)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (h *EvaluationHandler) History(c *gin.Context) {
	evaluationID, err := pathUint(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	items, err := h.historyService.ListByEvaluation(c.Request.Context(), evaluationID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}
