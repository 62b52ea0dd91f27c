package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type ModuleRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Module, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Module, error)
	Create(ctx context.Context, tx *gorm.DB, module *domain.Module) (*domain.Module, error)
	Update(ctx context.Context, tx *gorm.DB, module *domain.Module) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Module, error)
}

type moduleRepo struct {
	crud.Repo[domain.Module]
}

func NewModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	return &moduleRepo{
		Repo: crud.NewRepo[domain.Module](db, baseLog.With("repo", "ModuleRepo"), crud.Options{ActiveOnly: true}),
	}
}

func (r *moduleRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Module, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "name = ?", name)
}
