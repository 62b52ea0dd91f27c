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

type FormService interface {
	List(ctx context.Context) ([]*dto.Form, error)
	Get(ctx context.Context, id uint) (*dto.Form, error)
	Create(ctx context.Context, in *dto.Form) (*dto.Form, error)
	Update(ctx context.Context, id uint, in *dto.Form) (*dto.Form, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Form, error)
	Delete(ctx context.Context, id uint) error
}

type formService struct {
	*Lifecycle[domain.Form, dto.Form]
}

func NewFormService(db *gorm.DB, baseLog *logger.Logger, formRepo catalog.FormRepo) FormService {
	return &formService{
		Lifecycle: NewLifecycle(baseLog.With("service", "FormService"), formRepo, Descriptor[domain.Form, dto.Form]{
			Name:    "form",
			ToDTO:   dto.FormFromModel,
			ToModel: (*dto.Form).ToModel,
			Validate: func(d *dto.Form) error {
				return validate.First(validate.Required("name", d.Name))
			},
			Patchable: map[string]string{
				"name":        "name",
				"description": "description",
				"schema":      "schema",
				"active":      "active",
			},
			Delete: formRepo.SoftDelete,
		}),
	}
}
