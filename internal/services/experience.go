package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/experience"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type ExperienceService interface {
	List(ctx context.Context) ([]*dto.Experience, error)
	Get(ctx context.Context, id uint) (*dto.Experience, error)
	Create(ctx context.Context, in *dto.Experience) (*dto.Experience, error)
	Update(ctx context.Context, id uint, in *dto.Experience) (*dto.Experience, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Experience, error)
	Delete(ctx context.Context, id uint) error
	ListByInstitution(ctx context.Context, institutionID uint) ([]*dto.Experience, error)
}

type experienceService struct {
	*Lifecycle[domain.Experience, dto.Experience]
	experienceRepo experience.ExperienceRepo
}

func NewExperienceService(db *gorm.DB, baseLog *logger.Logger, experienceRepo experience.ExperienceRepo) ExperienceService {
	log := baseLog.With("service", "ExperienceService")
	return &experienceService{
		Lifecycle: NewLifecycle(log, experienceRepo, Descriptor[domain.Experience, dto.Experience]{
			Name:    "experience",
			ToDTO:   dto.ExperienceFromModel,
			ToModel: (*dto.Experience).ToModel,
			Validate: func(d *dto.Experience) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":           "name",
				"description":    "description",
				"institution_id": "institution_id",
				"user_id":        "user_id",
				"start_date":     "start_date",
				"end_date":       "end_date",
				"active":         "active",
			},
			Delete: experienceRepo.SoftDelete,
		}),
		experienceRepo: experienceRepo,
	}
}

func (s *experienceService) ListByInstitution(ctx context.Context, institutionID uint) ([]*dto.Experience, error) {
	if v := validate.PositiveID("institution_id", institutionID); v != nil {
		return nil, v
	}
	ms, err := s.experienceRepo.GetByInstitutionID(ctx, nil, institutionID)
	if err != nil {
		return nil, apierr.External("experience", err)
	}
	return dto.ExperiencesFromModels(ms), nil
}
