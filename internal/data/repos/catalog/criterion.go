package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type CriterionRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Criterion, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Criterion, error)
	Create(ctx context.Context, tx *gorm.DB, criterion *domain.Criterion) (*domain.Criterion, error)
	Update(ctx context.Context, tx *gorm.DB, criterion *domain.Criterion) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByFormID(ctx context.Context, tx *gorm.DB, formID uint) ([]*domain.Criterion, error)
}

type criterionRepo struct {
	crud.Repo[domain.Criterion]
}

func NewCriterionRepo(db *gorm.DB, baseLog *logger.Logger) CriterionRepo {
	return &criterionRepo{
		Repo: crud.NewRepo[domain.Criterion](db, baseLog.With("repo", "CriterionRepo"), crud.Options{
			ActiveOnly: true,
			Preloads:   []string{"Form"},
		}),
	}
}

func (r *criterionRepo) GetByFormID(ctx context.Context, tx *gorm.DB, formID uint) ([]*domain.Criterion, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "form_id = ?", formID)
}
