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

// AccessHandler exposes the role/permission link tables.
type AccessHandler struct {
	log                   *logger.Logger
	userRoleService       services.UserRoleService
	rolePermissionService services.RolePermissionService
}

func NewAccessHandler(baseLog *logger.Logger, userRoleService services.UserRoleService, rolePermissionService services.RolePermissionService) *AccessHandler {
	return &AccessHandler{
		log:                   baseLog.With("handler", "AccessHandler"),
		userRoleService:       userRoleService,
		rolePermissionService: rolePermissionService,
	}
}

type assignRoleRequest struct {
	UserID uint `json:"user_id"`
	RoleID uint `json:"role_id"`
}

func (h *AccessHandler) ListUserRoles(c *gin.Context) {
	items, err := h.userRoleService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *AccessHandler) RolesByUser(c *gin.Context) {
	userID, err := pathUint(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	items, err := h.userRoleService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *AccessHandler) AssignRole(c *gin.Context) {
	var in assignRoleRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	if err := h.userRoleService.Assign(c.Request.Context(), in.UserID, in.RoleID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (h *AccessHandler) RevokeRole(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.userRoleService.Revoke(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

type linkPermissionRequest struct {
	RoleID       uint `json:"role_id"`
	PermissionID uint `json:"permission_id"`
}

func (h *AccessHandler) ListRolePermissions(c *gin.Context) {
	items, err := h.rolePermissionService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *AccessHandler) PermissionsByRole(c *gin.Context) {
	roleID, err := pathUint(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	items, err := h.rolePermissionService.ListByRole(c.Request.Context(), roleID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (h *AccessHandler) LinkPermission(c *gin.Context) {
	var in linkPermissionRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	if err := h.rolePermissionService.Link(c.Request.Context(), in.RoleID, in.PermissionID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (h *AccessHandler) UnlinkPermission(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.rolePermissionService.Unlink(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
