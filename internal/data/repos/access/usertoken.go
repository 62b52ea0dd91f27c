package access

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type UserTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, token *domain.UserToken) (*domain.UserToken, error)
	GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*domain.UserToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*domain.UserToken, error)
	HardDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
}

type userTokenRepo struct {
	crud.Repo[domain.UserToken]
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return &userTokenRepo{
		Repo: crud.NewRepo[domain.UserToken](db, baseLog.With("repo", "UserTokenRepo"), crud.Options{
			OmitOnUpdate: []string{"created_at"},
		}),
	}
}

func (r *userTokenRepo) GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*domain.UserToken, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "access_token = ?", accessToken)
}

func (r *userTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*domain.UserToken, error) {
	return crud.FirstWhere(&r.Repo, ctx, tx, "refresh_token = ?", refreshToken)
}

func (r *userTokenRepo) DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	res := r.Handle(tx).WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&domain.UserToken{})
	return res.RowsAffected, res.Error
}
