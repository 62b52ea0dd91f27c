package experience

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type ExperienceRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Experience, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Experience, error)
	Create(ctx context.Context, tx *gorm.DB, experience *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, tx *gorm.DB, experience *domain.Experience) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByInstitutionID(ctx context.Context, tx *gorm.DB, institutionID uint) ([]*domain.Experience, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*domain.Experience, error)
}

type experienceRepo struct {
	crud.Repo[domain.Experience]
}

func NewExperienceRepo(db *gorm.DB, baseLog *logger.Logger) ExperienceRepo {
	return &experienceRepo{
		Repo: crud.NewRepo[domain.Experience](db, baseLog.With("repo", "ExperienceRepo"), crud.Options{
			ActiveOnly: true,
			Preloads:   []string{"Institution", "User"},
		}),
	}
}

func (r *experienceRepo) GetByInstitutionID(ctx context.Context, tx *gorm.DB, institutionID uint) ([]*domain.Experience, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "institution_id = ?", institutionID)
}

func (r *experienceRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*domain.Experience, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "user_id = ?", userID)
}
