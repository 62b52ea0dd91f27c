package access

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type UserRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.User, error)
	Create(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *domain.User) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	HardDeleteByPersonID(ctx context.Context, tx *gorm.DB, personID uint) (int64, error)
}

type userRepo struct {
	crud.Repo[domain.User]
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{
		Repo: crud.NewRepo[domain.User](db, baseLog.With("repo", "UserRepo"), crud.Options{
			ActiveOnly: true,
			Preloads:   []string{"Person"},
			// The user DTO never carries the hash; a full replace must
			// not blank it.
			OmitOnUpdate: []string{"password_hash", "created_at"},
		}),
	}
}

func (r *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.User, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "email = ?", email)
}

func (r *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	err := r.Handle(tx).WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HardDeleteByPersonID clears the user rows hanging off a person before
// the person row itself goes away.
func (r *userRepo) HardDeleteByPersonID(ctx context.Context, tx *gorm.DB, personID uint) (int64, error) {
	res := r.Handle(tx).WithContext(ctx).
		Where("person_id = ?", personID).
		Delete(&domain.User{})
	return res.RowsAffected, res.Error
}
