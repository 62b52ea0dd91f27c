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

type StateService interface {
	List(ctx context.Context) ([]*dto.State, error)
	Get(ctx context.Context, id uint) (*dto.State, error)
	Create(ctx context.Context, in *dto.State) (*dto.State, error)
	Update(ctx context.Context, id uint, in *dto.State) (*dto.State, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.State, error)
	Delete(ctx context.Context, id uint) error
}

type stateService struct {
	*Lifecycle[domain.State, dto.State]
}

func NewStateService(db *gorm.DB, baseLog *logger.Logger, stateRepo catalog.StateRepo) StateService {
	return &stateService{
		Lifecycle: NewLifecycle(baseLog.With("service", "StateService"), stateRepo, Descriptor[domain.State, dto.State]{
			Name:    "state",
			ToDTO:   dto.StateFromModel,
			ToModel: (*dto.State).ToModel,
			Validate: func(d *dto.State) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":        "name",
				"description": "description",
				"active":      "active",
			},
			Delete: stateRepo.SoftDelete,
		}),
	}
}
