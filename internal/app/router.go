package app

import (
	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,

		AuthMiddleware: middleware.Auth,

		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		UserHandler:       handlers.User,
		EvaluationHandler: handlers.Evaluation,
		CatalogHandler:    handlers.Catalog,
		AccessHandler:     handlers.Access,
		HistoryHandler:    handlers.History,

		Roles:        handlers.Roles,
		Permissions:  handlers.Permissions,
		Modules:      handlers.Modules,
		States:       handlers.States,
		Forms:        handlers.Forms,
		Criteria:     handlers.Criteria,
		Institutions: handlers.Institutions,
		Persons:      handlers.Persons,
		Users:        handlers.Users,
		Experiences:  handlers.Experiences,
		Evaluations:  handlers.Evaluations,
	})
}
