// Package catalog holds the repos for the lookup entities: roles,
// permissions, modules, states, forms and their criteria.
package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type RoleRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Role, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Role, error)
	Create(ctx context.Context, tx *gorm.DB, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, tx *gorm.DB, role *domain.Role) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Role, error)
}

type roleRepo struct {
	crud.Repo[domain.Role]
}

func NewRoleRepo(db *gorm.DB, baseLog *logger.Logger) RoleRepo {
	return &roleRepo{
		Repo: crud.NewRepo[domain.Role](db, baseLog.With("repo", "RoleRepo"), crud.Options{ActiveOnly: true}),
	}
}

func (r *roleRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Role, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "name = ?", name)
}
