package app

import (
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/http/handlers"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Evaluation *handlers.EvaluationHandler
	Catalog    *handlers.CatalogHandler
	Access     *handlers.AccessHandler
	History    *handlers.HistoryHandler

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

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("wiring handlers")
	return Handlers{
		Health:     handlers.NewHealthHandler(),
		Auth:       handlers.NewAuthHandler(log, services.Auth, services.User),
		User:       handlers.NewUserHandler(log, services.User),
		Evaluation: handlers.NewEvaluationHandler(log, services.Evaluation, services.History),
		Catalog:    handlers.NewCatalogHandler(log, services.Criterion, services.Experience),
		Access:     handlers.NewAccessHandler(log, services.UserRole, services.RolePermission),
		History:    handlers.NewHistoryHandler(log, services.History),

		Roles:        handlers.NewResource[dto.Role](log, "RoleHandler", services.Role),
		Permissions:  handlers.NewResource[dto.Permission](log, "PermissionHandler", services.Permission),
		Modules:      handlers.NewResource[dto.Module](log, "ModuleHandler", services.Module),
		States:       handlers.NewResource[dto.State](log, "StateHandler", services.State),
		Forms:        handlers.NewResource[dto.Form](log, "FormHandler", services.Form),
		Criteria:     handlers.NewResource[dto.Criterion](log, "CriterionHandler", services.Criterion),
		Institutions: handlers.NewResource[dto.Institution](log, "InstitutionHandler", services.Institution),
		Persons:      handlers.NewResource[dto.Person](log, "PersonHandler", services.Person),
		Users:        handlers.NewResource[dto.User](log, "UserHandler", services.User),
		Experiences:  handlers.NewResource[dto.Experience](log, "ExperienceHandler", services.Experience),
		Evaluations:  handlers.NewResource[dto.Evaluation](log, "EvaluationHandler", services.Evaluation),
	}
}
