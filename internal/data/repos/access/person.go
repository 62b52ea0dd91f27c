// Package access holds the repos for identity entities: persons, users,
// role assignments and session tokens.
package access

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

// PersonRepo has no soft delete: removing a person is a genuine row
// removal, and the owning service deletes the dependent user first.
type PersonRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Person, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Person, error)
	Create(ctx context.Context, tx *gorm.DB, person *domain.Person) (*domain.Person, error)
	Update(ctx context.Context, tx *gorm.DB, person *domain.Person) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	HardDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type personRepo struct {
	crud.Repo[domain.Person]
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return &personRepo{
		Repo: crud.NewRepo[domain.Person](db, baseLog.With("repo", "PersonRepo"), crud.Options{}),
	}
}
