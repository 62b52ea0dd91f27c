package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/catalog"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type CriterionService interface {
	List(ctx context.Context) ([]*dto.Criterion, error)
	Get(ctx context.Context, id uint) (*dto.Criterion, error)
	Create(ctx context.Context, in *dto.Criterion) (*dto.Criterion, error)
	Update(ctx context.Context, id uint, in *dto.Criterion) (*dto.Criterion, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Criterion, error)
	Delete(ctx context.Context, id uint) error
	ListByForm(ctx context.Context, formID uint) ([]*dto.Criterion, error)
}

type criterionService struct {
	*Lifecycle[domain.Criterion, dto.Criterion]
	criterionRepo catalog.CriterionRepo
}

func NewCriterionService(db *gorm.DB, baseLog *logger.Logger, criterionRepo catalog.CriterionRepo) CriterionService {
	log := baseLog.With("service", "CriterionService")
	return &criterionService{
		Lifecycle: NewLifecycle(log, criterionRepo, Descriptor[domain.Criterion, dto.Criterion]{
			Name:    "criterion",
			ToDTO:   dto.CriterionFromModel,
			ToModel: (*dto.Criterion).ToModel,
			Validate: func(d *dto.Criterion) error {
				return validate.First(
					validate.Required("name", d.Name),
					validate.PositiveID("form_id", d.FormID),
				)
			},
			Patchable: map[string]string{
				"name":        "name",
				"description": "description",
				"weight":      "weight",
				"active":      "active",
			},
			Delete: criterionRepo.SoftDelete,
		}),
		criterionRepo: criterionRepo,
	}
}

func (s *criterionService) ListByForm(ctx context.Context, formID uint) ([]*dto.Criterion, error) {
	if v := validate.PositiveID("form_id", formID); v != nil {
		return nil, v
	}
	ms, err := s.criterionRepo.GetByFormID(ctx, nil, formID)
	if err != nil {
		return nil, apierr.External("criterion", err)
	}
	return dto.CriteriaFromModels(ms), nil
}
