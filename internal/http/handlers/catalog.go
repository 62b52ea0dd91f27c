package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/http/response"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/services"
)

// CatalogHandler covers the lookups that hang off another resource:
// criteria of a form, experiences of an institution.
type CatalogHandler struct {
	log               *logger.Logger
	criterionService  services.CriterionService
	experienceService services.ExperienceService
}

func NewCatalogHandler(baseLog *logger.Logger, criterionService services.CriterionService, experienceService services.ExperienceService) *CatalogHandler {
	return &CatalogHandler{
		log:               baseLog.With("handler", "CatalogHandler"),
		criterionService:  criterionService,
		experienceService: experienceService,
	}
}

func (h *CatalogHandler) CriteriaByForm(c *gin.Context) {
	formID, err := pathUint(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	items, err := h.criterionService.ListByForm(c.Request.Context(), formID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *CatalogHandler) ExperiencesByInstitution(c *gin.Context) {
	institutionID, err := pathUint(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	items, err := h.experienceService.ListByInstitution(c.Request.Context(), institutionID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}
