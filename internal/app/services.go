package app

import (
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/services"
)

type Services struct {
	Auth services.AuthService

	Role       services.RoleService
	Permission services.PermissionService
	Module     services.ModuleService
	State      services.StateService
	Form       services.FormService
	Criterion  services.CriterionService

	Person         services.PersonService
	User           services.UserService
	UserRole       services.UserRoleService
	RolePermission services.RolePermissionService

	Institution services.InstitutionService
	Experience  services.ExperienceService
	Evaluation  services.EvaluationService
	History     services.HistoryService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, defaults services.AccessDefaults) Services {
	log.Info("wiring services")
	return Services{
		Auth: services.NewAuthService(db, log, repos.User, repos.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),

		Role:       services.NewRoleService(db, log, repos.Role),
		Permission: services.NewPermissionService(db, log, repos.Permission),
		Module:     services.NewModuleService(db, log, repos.Module),
		State:      services.NewStateService(db, log, repos.State),
		Form:       services.NewFormService(db, log, repos.Form),
		Criterion:  services.NewCriterionService(db, log, repos.Criterion),

		Person: services.NewPersonService(db, log, repos.Person, repos.User),
		User: services.NewUserService(db, log, repos.User, repos.UserRole,
			repos.RolePermission, repos.Role, repos.Permission, defaults),
		UserRole:       services.NewUserRoleService(db, log, repos.UserRole),
		RolePermission: services.NewRolePermissionService(db, log, repos.RolePermission),

		Institution: services.NewInstitutionService(db, log, repos.Institution),
		Experience:  services.NewExperienceService(db, log, repos.Experience),
		Evaluation:  services.NewEvaluationService(db, log, repos.Evaluation, repos.History),
		History:     services.NewHistoryService(db, log, repos.History),
	}
}
