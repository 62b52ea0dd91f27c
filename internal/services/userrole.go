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

type UserRoleService interface {
	List(ctx context.Context) ([]*dto.UserRole, error)
	ListByUser(ctx context.Context, userID uint) ([]*dto.UserRole, error)
	Assign(ctx context.Context, userID, roleID uint) error
	Revoke(ctx context.Context, id uint) error
}

type userRoleService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRoleRepo access.UserRoleRepo
}

func NewUserRoleService(db *gorm.DB, baseLog *logger.Logger, userRoleRepo access.UserRoleRepo) UserRoleService {
	return &userRoleService{
		db:           db,
		log:          baseLog.With("service", "UserRoleService"),
		userRoleRepo: userRoleRepo,
	}
}

func (s *userRoleService) List(ctx context.Context) ([]*dto.UserRole, error) {
	ms, err := s.userRoleRepo.GetAll(ctx, nil)
	if err != nil {
		s.log.Error("list failed", "entity", "user_role", "error", err)
		return nil, apierr.External("user_role", err)
	}
	return dto.UserRolesFromModels(ms), nil
}

func (s *userRoleService) ListByUser(ctx context.Context, userID uint) ([]*dto.UserRole, error) {
	if v := validate.PositiveID("user_id", userID); v != nil {
		return nil, v
	}
	ms, err := s.userRoleRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		s.log.Error("list by user failed", "user_id", userID, "error", err)
		return nil, apierr.External("user_role", err)
	}
	return dto.UserRolesFromModels(ms), nil
}

// Assign is idempotent: assigning an already-held role is a no-op.
func (s *userRoleService) Assign(ctx context.Context, userID, roleID uint) error {
	if err := validate.First(
		validate.PositiveID("user_id", userID),
		validate.PositiveID("role_id", roleID),
	); err != nil {
		return err
	}
	if err := s.userRoleRepo.EnsureAssignment(ctx, nil, userID, roleID); err != nil {
		s.log.Error("assign failed", "user_id", userID, "role_id", roleID, "error", err)
		return apierr.External("user_role", err)
	}
	return nil
}

func (s *userRoleService) Revoke(ctx context.Context, id uint) error {
	if v := validate.PositiveID("id", id); v != nil {
		return v
	}
	ok, err := s.userRoleRepo.HardDelete(ctx, nil, id)
	if err != nil {
		s.log.Error("revoke failed", "id", id, "error", err)
		return apierr.External("user_role", err)
	}
	if !ok {
		return apierr.NotFound("user_role", id)
	}
	return nil
}
