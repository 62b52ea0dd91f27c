package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/experience"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type InstitutionService interface {
	List(ctx context.Context) ([]*dto.Institution, error)
	Get(ctx context.Context, id uint) (*dto.Institution, error)
	Create(ctx context.Context, in *dto.Institution) (*dto.Institution, error)
	Update(ctx context.Context, id uint, in *dto.Institution) (*dto.Institution, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Institution, error)
	Delete(ctx context.Context, id uint) error
}

type institutionService struct {
	*Lifecycle[domain.Institution, dto.Institution]
}

func NewInstitutionService(db *gorm.DB, baseLog *logger.Logger, institutionRepo experience.InstitutionRepo) InstitutionService {
	return &institutionService{
		Lifecycle: NewLifecycle(baseLog.With("service", "InstitutionService"), institutionRepo, Descriptor[domain.Institution, dto.Institution]{
			Name:    "institution",
			ToDTO:   dto.InstitutionFromModel,
			ToModel: (*dto.Institution).ToModel,
			Validate: func(d *dto.Institution) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":    "name",
				"address": "address",
				"city":    "city",
				"active":  "active",
			},
			Delete: institutionRepo.SoftDelete,
		}),
	}
}
