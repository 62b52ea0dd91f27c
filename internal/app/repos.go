package app

import (
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/data/repos/catalog"
	"github.com/hvaldez/experiencias-backend/internal/data/repos/experience"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type Repos struct {
	Role       catalog.RoleRepo
	Permission catalog.PermissionRepo
	Module     catalog.ModuleRepo
	State      catalog.StateRepo
	Form       catalog.FormRepo
	Criterion  catalog.CriterionRepo

	Person         access.PersonRepo
	User           access.UserRepo
	UserRole       access.UserRoleRepo
	RolePermission access.RolePermissionRepo
	UserToken      access.UserTokenRepo

	Institution experience.InstitutionRepo
	Experience  experience.ExperienceRepo
	Evaluation  experience.EvaluationRepo
	History     experience.HistoryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("wiring repos")
	return Repos{
		Role:       catalog.NewRoleRepo(db, log),
		Permission: catalog.NewPermissionRepo(db, log),
		Module:     catalog.NewModuleRepo(db, log),
		State:      catalog.NewStateRepo(db, log),
		Form:       catalog.NewFormRepo(db, log),
		Criterion:  catalog.NewCriterionRepo(db, log),

		Person:         access.NewPersonRepo(db, log),
		User:           access.NewUserRepo(db, log),
		UserRole:       access.NewUserRoleRepo(db, log),
		RolePermission: access.NewRolePermissionRepo(db, log),
		UserToken:      access.NewUserTokenRepo(db, log),

		Institution: experience.NewInstitutionRepo(db, log),
		Experience:  experience.NewExperienceRepo(db, log),
		Evaluation:  experience.NewEvaluationRepo(db, log),
		History:     experience.NewHistoryRepo(db, log),
	}
}
