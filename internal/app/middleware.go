package app

import (
	"github.com/hvaldez/experiencias-backend/internal/http/middleware"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("wiring middleware")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, services.Auth),
	}
}
