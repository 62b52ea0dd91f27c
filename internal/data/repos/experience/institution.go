// Package experience holds the repos for the experience aggregate:
// institutions, experiences, evaluations and their state history.
package experience

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type InstitutionRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Institution, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Institution, error)
	Create(ctx context.Context, tx *gorm.DB, institution *domain.Institution) (*domain.Institution, error)
	Update(ctx context.Context, tx *gorm.DB, institution *domain.Institution) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type institutionRepo struct {
	crud.Repo[domain.Institution]
}

func NewInstitutionRepo(db *gorm.DB, baseLog *logger.Logger) InstitutionRepo {
	return &institutionRepo{
		Repo: crud.NewRepo[domain.Institution](db, baseLog.With("repo", "InstitutionRepo"), crud.Options{ActiveOnly: true}),
	}
}
