package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type FormRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Form, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Form, error)
	Create(ctx context.Context, tx *gorm.DB, form *domain.Form) (*domain.Form, error)
	Update(ctx context.Context, tx *gorm.DB, form *domain.Form) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type formRepo struct {
	crud.Repo[domain.Form]
}

func NewFormRepo(db *gorm.DB, baseLog *logger.Logger) FormRepo {
	return &formRepo{
		Repo: crud.NewRepo[domain.Form](db, baseLog.With("repo", "FormRepo"), crud.Options{ActiveOnly: true}),
	}
}
