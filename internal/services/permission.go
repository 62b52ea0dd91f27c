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

type PermissionService interface {
	List(ctx context.Context) ([]*dto.Permission, error)
	Get(ctx context.Context, id uint) (*dto.Permission, error)
	Create(ctx context.Context, in *dto.Permission) (*dto.Permission, error)
	Update(ctx context.Context, id uint, in *dto.Permission) (*dto.Permission, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Permission, error)
	Delete(ctx context.Context, id uint) error
}

type permissionService struct {
	*Lifecycle[domain.Permission, dto.Permission]
}

func NewPermissionService(db *gorm.DB, baseLog *logger.Logger, permissionRepo catalog.PermissionRepo) PermissionService {
	return &permissionService{
		Lifecycle: NewLifecycle(baseLog.With("service", "PermissionService"), permissionRepo, Descriptor[domain.Permission, dto.Permission]{
			Name:    "permission",
			ToDTO:   dto.PermissionFromModel,
			ToModel: (*dto.Permission).ToModel,
			Validate: func(d *dto.Permission) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":        "name",
				"description": "description",
				"active":      "active",
			},
			Delete: permissionRepo.SoftDelete,
		}),
	}
}
