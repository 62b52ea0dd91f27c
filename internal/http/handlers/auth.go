package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/http/response"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(baseLog *logger.Logger, authService services.AuthService, userService services.UserService) *AuthHandler {
	return &AuthHandler{
		log:         baseLog.With("handler", "AuthHandler"),
		authService: authService,
		userService: userService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in dto.User
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	created, err := h.userService.Create(c.Request.Context(), &in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.New(http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	pair, err := h.authService.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, pair)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	pair, err := h.authService.Refresh(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
