package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type RolePermissionService interface {
	List(ctx context.Context) ([]*dto.RolePermission, error)
	ListByRole(ctx context.Context, roleID uint) ([]*dto.RolePermission, error)
	Link(ctx context.Context, roleID, permissionID uint) error
	Unlink(ctx context.Context, id uint) error
}

type rolePermissionService struct {
	db                 *gorm.DB
	log                *logger.Logger
	rolePermissionRepo access.RolePermissionRepo
}

func NewRolePermissionService(db *gorm.DB, baseLog *logger.Logger, rolePermissionRepo access.RolePermissionRepo) RolePermissionService {
	return &rolePermissionService{
		db:                 db,
		log:                baseLog.With("service", "RolePermissionService"),
		rolePermissionRepo: rolePermissionRepo,
	}
}

func (s *rolePermissionService) List(ctx context.Context) ([]*dto.RolePermission, error) {
	ms, err := s.rolePermissionRepo.GetAll(ctx, nil)
	if err != nil {
		s.log.Error("list failed", "entity", "role_permission", "error", err)
		return nil, apierr.External("role_permission", err)
	}
	return dto.RolePermissionsFromModels(ms), nil
}

func (s *rolePermissionService) ListByRole(ctx context.Context, roleID uint) ([]*dto.RolePermission, error) {
	if v := validate.PositiveID("role_id", roleID); v != nil {
		return nil, v
	}
	ms, err := s.rolePermissionRepo.GetByRoleID(ctx, nil, roleID)
	if err != nil {
		s.log.Error("list by role failed", "role_id", roleID, "error", err)
		return nil, apierr.External("role_permission", err)
	}
	return dto.RolePermissionsFromModels(ms), nil
}

// Link is idempotent on the unique (role, permission) pair.
func (s *rolePermissionService) Link(ctx context.Context, roleID, permissionID uint) error {
	if err := validate.First(
		validate.PositiveID("role_id", roleID),
		validate.PositiveID("permission_id", permissionID),
	); err != nil {
		return err
	}
	if err := s.rolePermissionRepo.EnsureLink(ctx, nil, roleID, permissionID); err != nil {
		s.log.Error("link failed", "role_id", roleID, "permission_id", permissionID, "error", err)
		return apierr.External("role_permission", err)
	}
	return nil
}

func (s *rolePermissionService) Unlink(ctx context.Context, id uint) error {
	if v := validate.PositiveID("id", id); v != nil {
		return v
	}
	ok, err := s.rolePermissionRepo.HardDelete(ctx, nil, id)
	if err != nil {
		s.log.Error("unlink failed", "id", id, "error", err)
		return apierr.External("role_permission", err)
	}
	if !ok {
		return apierr.NotFound("role_permission", id)
	}
	return nil
}
