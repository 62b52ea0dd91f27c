package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type PermissionRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Permission, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Permission, error)
	Create(ctx context.Context, tx *gorm.DB, permission *domain.Permission) (*domain.Permission, error)
	Update(ctx context.Context, tx *gorm.DB, permission *domain.Permission) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Permission, error)
}

type permissionRepo struct {
	crud.Repo[domain.Permission]
}

func NewPermissionRepo(db *gorm.DB, baseLog *logger.Logger) PermissionRepo {
	return &permissionRepo{
		Repo: crud.NewRepo[domain.Permission](db, baseLog.With("repo", "PermissionRepo"), crud.Options{ActiveOnly: true}),
	}
}

func (r *permissionRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Permission, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "name = ?", name)
}
