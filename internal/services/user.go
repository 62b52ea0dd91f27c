package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/data/repos/catalog"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

// AccessDefaults names the role and permission every new user starts
// with. Loaded from configs/defaults.yaml.
type AccessDefaults struct {
	RoleName       string
	PermissionName string
}

type UserService interface {
	List(ctx context.Context) ([]*dto.User, error)
	Get(ctx context.Context, id uint) (*dto.User, error)
	Create(ctx context.Context, in *dto.User) (*dto.User, error)
	Update(ctx context.Context, id uint, in *dto.User) (*dto.User, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.User, error)
	Delete(ctx context.Context, id uint) error
	ChangePassword(ctx context.Context, id uint, password string) error
}

type userService struct {
	*Lifecycle[domain.User, dto.User]
	db                 *gorm.DB
	log                *logger.Logger
	userRepo           access.UserRepo
	userRoleRepo       access.UserRoleRepo
	rolePermissionRepo access.RolePermissionRepo
	roleRepo           catalog.RoleRepo
	permissionRepo     catalog.PermissionRepo
	defaults           AccessDefaults
}

func NewUserService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo access.UserRepo,
	userRoleRepo access.UserRoleRepo,
	rolePermissionRepo access.RolePermissionRepo,
	roleRepo catalog.RoleRepo,
	permissionRepo catalog.PermissionRepo,
	defaults AccessDefaults,
) UserService {
	log := baseLog.With("service", "UserService")
	return &userService{
		Lifecycle: NewLifecycle(log, userRepo, Descriptor[domain.User, dto.User]{
			Name:    "user",
			ToDTO:   dto.UserFromModel,
			ToModel: (*dto.User).ToModel,
			Validate: func(d *dto.User) error {
				return validate.First(validate.Required("email", d.Email))
			},
			Patchable: map[string]string{
				"email":     "email",
				"person_id": "person_id",
				"active":    "active",
			},
			Delete: userRepo.SoftDelete,
		}),
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		userRoleRepo:       userRoleRepo,
		rolePermissionRepo: rolePermissionRepo,
		roleRepo:           roleRepo,
		permissionRepo:     permissionRepo,
		defaults:           defaults,
	}
}

// Create registers a user and, in the same transaction, assigns the
// default role and makes sure the default role–permission link exists.
// The link insert is idempotent, so re-registering never duplicates it.
func (s *userService) Create(ctx context.Context, in *dto.User) (*dto.User, error) {
	if in == nil {
		return nil, apierr.Validation("body", "is required")
	}
	if err := validate.First(
		validate.Required("email", in.Email),
		validate.Required("password", in.Password),
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("password hash failed", "error", err)
		return nil, apierr.External("user", err)
	}

	var created *domain.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.userRepo.EmailExists(ctx, tx, in.Email)
		if err != nil {
			return err
		}
		if exists {
			return apierr.Validation("email", "is already registered")
		}

		user := in.ToModel()
		user.ID = 0
		user.PasswordHash = string(hash)
		user.Active = true
		if created, err = s.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}

		role, err := s.roleRepo.GetByName(ctx, tx, s.defaults.RoleName)
		if err != nil {
			return err
		}
		if role == nil {
			return fmt.Errorf("default role %q is not seeded", s.defaults.RoleName)
		}
		if err := s.userRoleRepo.EnsureAssignment(ctx, tx, created.ID, role.ID); err != nil {
			return err
		}

		permission, err := s.permissionRepo.GetByName(ctx, tx, s.defaults.PermissionName)
		if err != nil {
			return err
		}
		if permission == nil {
			return fmt.Errorf("default permission %q is not seeded", s.defaults.PermissionName)
		}
		return s.rolePermissionRepo.EnsureLink(ctx, tx, role.ID, permission.ID)
	})
	if err != nil {
		if apierr.From(err) != nil {
			return nil, err
		}
		s.log.Error("register failed", "email", in.Email, "error", err)
		return nil, apierr.External("user", err)
	}
	return s.Get(ctx, created.ID)
}

func (s *userService) ChangePassword(ctx context.Context, id uint, password string) error {
	if err := validate.First(
		validate.PositiveID("id", id),
		validate.Required("password", password),
	); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("password hash failed", "error", err)
		return apierr.External("user", err)
	}
	ok, err := s.userRepo.UpdateFields(ctx, nil, id, map[string]any{"password_hash": string(hash)})
	if err != nil {
		s.log.Error("password update failed", "id", id, "error", err)
		return apierr.External("user", err)
	}
	if !ok {
		return apierr.NotFound("user", id)
	}
	return nil
}
