package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type StateRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.State, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.State, error)
	Create(ctx context.Context, tx *gorm.DB, state *domain.State) (*domain.State, error)
	Update(ctx context.Context, tx *gorm.DB, state *domain.State) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.State, error)
}

type stateRepo struct {
	crud.Repo[domain.State]
}

func NewStateRepo(db *gorm.DB, baseLog *logger.Logger) StateRepo {
	return &stateRepo{
		Repo: crud.NewRepo[domain.State](db, baseLog.With("repo", "StateRepo"), crud.Options{ActiveOnly: true}),
	}
}

func (r *stateRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.State, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "name = ?", name)
}
