package server

import (
	"github.com/gin-gonic/gin"

	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/http/handlers"
	"github.com/hvaldez/experiencias-backend/internal/http/middleware"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string

	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler     *handlers.HealthHandler
	AuthHandler       *handlers.AuthHandler
	UserHandler       *handlers.UserHandler
	EvaluationHandler *handlers.EvaluationHandler
	CatalogHandler    *handlers.CatalogHandler
	AccessHandler     *handlers.AccessHandler
	HistoryHandler    *handlers.HistoryHandler

	Roles        *handlers.Resource[dto.Role]
	Permissions  *handlers.Resource[dto.Permission]
	Modules      *handlers.Resource[dto.Module]
	States       *handlers.Resource[dto.State]
	Forms        *handlers.Resource[dto.Form]
	Criteria     *handlers.Resource[dto.Criterion]
	Institutions *handlers.Resource[dto.Institution]
	Persons      *handlers.Resource[dto.Person]
	Users        *handlers.Resource[dto.User]
	Experiences  *handlers.Resource[dto.Experience]
	Evaluations  *handlers.Resource[dto.Evaluation]
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestLogger(cfg.Log))

	// Public
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	// Current user
	protected.GET("/me", cfg.UserHandler.GetMe)
	protected.PUT("/users/:id/password", cfg.UserHandler.ChangePassword)

	// Catalogs
	cfg.Roles.Register(protected, "/roles")
	cfg.Permissions.Register(protected, "/permissions")
	cfg.Modules.Register(protected, "/modules")
	cfg.States.Register(protected, "/states")
	cfg.Forms.Register(protected, "/forms")
	cfg.Criteria.Register(protected, "/criteria")
	protected.GET("/forms/:id/criteria", cfg.CatalogHandler.CriteriaByForm)

	// People and access
	cfg.Persons.Register(protected, "/persons")
	cfg.Users.Register(protected, "/users")
	protected.GET("/user-roles", cfg.AccessHandler.ListUserRoles)
	protected.GET("/users/:id/roles", cfg.AccessHandler.RolesByUser)
	protected.POST("/user-roles", cfg.AccessHandler.AssignRole)
	protected.DELETE("/user-roles/:id", cfg.AccessHandler.RevokeRole)
	protected.GET("/role-permissions", cfg.AccessHandler.ListRolePermissions)
	protected.GET("/roles/:id/permissions", cfg.AccessHandler.PermissionsByRole)
	protected.POST("/role-permissions", cfg.AccessHandler.LinkPermission)
	protected.DELETE("/role-permissions/:id", cfg.AccessHandler.UnlinkPermission)

	// Experiences and evaluations
	cfg.Institutions.Register(protected, "/institutions")
	cfg.Experiences.Register(protected, "/experiences")
	protected.GET("/institutions/:id/experiences", cfg.CatalogHandler.ExperiencesByInstitution)
	cfg.Evaluations.Register(protected, "/evaluations")
	protected.GET("/experiences/:id/evaluations", cfg.EvaluationHandler.ListByExperience)
	protected.POST("/evaluations/:id/state", cfg.EvaluationHandler.ChangeState)
	protected.GET("/evaluations/:id/history", cfg.EvaluationHandler.History)

	// Audit trail
	protected.GET("/history", cfg.HistoryHandler.List)
	protected.GET("/history/:id", cfg.HistoryHandler.Get)
	protected.PATCH("/history/:id", cfg.HistoryHandler.Patch)
	protected.DELETE("/history/:id", cfg.HistoryHandler.Delete)

	return router
}
