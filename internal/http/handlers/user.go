package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/http/response"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/ctxutil"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(baseLog *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         baseLog.With("handler", "UserHandler"),
		userService: userService,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == 0 {
		response.RespondError(c, apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("no authenticated user")))
		return
	}
	user, err := h.userService.Get(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, user)
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var in changePasswordRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	if err := h.userService.ChangePassword(c.Request.Context(), id, in.Password); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
