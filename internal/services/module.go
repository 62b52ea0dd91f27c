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

type ModuleService interface {
	List(ctx context.Context) ([]*dto.Module, error)
	Get(ctx context.Context, id uint) (*dto.Module, error)
	Create(ctx context.Context, in *dto.Module) (*dto.Module, error)
	Update(ctx context.Context, id uint, in *dto.Module) (*dto.Module, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Module, error)
	Delete(ctx context.Context, id uint) error
}

type moduleService struct {
	*Lifecycle[domain.Module, dto.Module]
}

func NewModuleService(db *gorm.DB, baseLog *logger.Logger, moduleRepo catalog.ModuleRepo) ModuleService {
	return &moduleService{
		Lifecycle: NewLifecycle(baseLog.With("service", "ModuleService"), moduleRepo, Descriptor[domain.Module, dto.Module]{
			Name:    "module",
			ToDTO:   dto.ModuleFromModel,
			ToModel: (*dto.Module).ToModel,
			Validate: func(d *dto.Module) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":        "name",
				"description": "description",
				"route":       "route",
				"active":      "active",
			},
			Delete: moduleRepo.SoftDelete,
		}),
	}
}
