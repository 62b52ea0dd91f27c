package access

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type UserRoleRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.UserRole, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.UserRole, error)
	Create(ctx context.Context, tx *gorm.DB, userRole *domain.UserRole) (*domain.UserRole, error)
	HardDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*domain.UserRole, error)
	EnsureAssignment(ctx context.Context, tx *gorm.DB, userID, roleID uint) error
}

type userRoleRepo struct {
	crud.Repo[domain.UserRole]
}

func NewUserRoleRepo(db *gorm.DB, baseLog *logger.Logger) UserRoleRepo {
	return &userRoleRepo{
		Repo: crud.NewRepo[domain.UserRole](db, baseLog.With("repo", "UserRoleRepo"), crud.Options{
			Preloads: []string{"User", "Role"},
		}),
	}
}

func (r *userRoleRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*domain.UserRole, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "user_id = ?", userID)
}

// EnsureAssignment inserts the (user, role) pair unless it already
// exists. The unique pair index plus ON CONFLICT DO NOTHING makes the
// call idempotent without a separate existence check.
func (r *userRoleRepo) EnsureAssignment(ctx context.Context, tx *gorm.DB, userID, roleID uint) error {
	return r.Handle(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
			DoNothing: true,
		}).
		Create(&domain.UserRole{UserID: userID, RoleID: roleID}).Error
}
