package access

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type RolePermissionRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.RolePermission, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.RolePermission, error)
	Create(ctx context.Context, tx *gorm.DB, rolePermission *domain.RolePermission) (*domain.RolePermission, error)
	HardDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByRoleID(ctx context.Context, tx *gorm.DB, roleID uint) ([]*domain.RolePermission, error)
	EnsureLink(ctx context.Context, tx *gorm.DB, roleID, permissionID uint) error
}

type rolePermissionRepo struct {
	crud.Repo[domain.RolePermission]
}

func NewRolePermissionRepo(db *gorm.DB, baseLog *logger.Logger) RolePermissionRepo {
	return &rolePermissionRepo{
		Repo: crud.NewRepo[domain.RolePermission](db, baseLog.With("repo", "RolePermissionRepo"), crud.Options{
			Preloads: []string{"Role", "Permission"},
		}),
	}
}

func (r *rolePermissionRepo) GetByRoleID(ctx context.Context, tx *gorm.DB, roleID uint) ([]*domain.RolePermission, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "role_id = ?", roleID)
}

// EnsureLink inserts the (role, permission) pair unless it already
// exists, so repeated registrations never duplicate the default link.
func (r *rolePermissionRepo) EnsureLink(ctx context.Context, tx *gorm.DB, roleID, permissionID uint) error {
	return r.Handle(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}, {Name: "permission_id"}},
			DoNothing: true,
		}).
		Create(&domain.RolePermission{RoleID: roleID, PermissionID: permissionID}).Error
}
