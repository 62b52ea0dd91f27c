package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/catalog"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type RoleService interface {
	List(ctx context.Context) ([]*dto.Role, error)
	Get(ctx context.Context, id uint) (*dto.Role, error)
	Create(ctx context.Context, in *dto.Role) (*dto.Role, error)
	Update(ctx context.Context, id uint, in *dto.Role) (*dto.Role, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Role, error)
	Delete(ctx context.Context, id uint) error
}

type roleService struct {
	*Lifecycle[domain.Role, dto.Role]
}

func NewRoleService(db *gorm.DB, baseLog *logger.Logger, roleRepo catalog.RoleRepo) RoleService {
	return &roleService{
		Lifecycle: NewLifecycle(baseLog.With("service", "RoleService"), roleRepo, Descriptor[domain.Role, dto.Role]{
			Name:    "role",
			ToDTO:   dto.RoleFromModel,
			ToModel: (*dto.Role).ToModel,
			Validate: func(d *dto.Role) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":        "name",
				"description": "description",
				"active":      "active",
			},
			Delete: roleRepo.SoftDelete,
		}),
	}
}
