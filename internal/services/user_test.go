package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/data/repos/catalog"
	"github.com/hvaldez/experiencias-backend/internal/data/repos/testutil"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
)

// newUserService builds a service whose pooled handle is the test
// transaction, so everything it touches rolls back with the test.
func newUserService(t *testing.T, tx *gorm.DB) UserService {
	log := testutil.Logger(t)
	return NewUserService(tx, log,
		access.NewUserRepo(tx, log),
		access.NewUserRoleRepo(tx, log),
		access.NewRolePermissionRepo(tx, log),
		catalog.NewRoleRepo(tx, log),
		catalog.NewPermissionRepo(tx, log),
		AccessDefaults{RoleName: "Profesor", PermissionName: "experiencias:read"},
	)
}

func TestUserRegistration(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)

	role := testutil.SeedRole(t, ctx, tx, "Profesor")
	perm := testutil.SeedPermission(t, ctx, tx, "experiencias:read")
	person := testutil.SeedPerson(t, ctx, tx)

	svc := newUserService(t, tx)

	created, err := svc.Create(ctx, &dto.User{
		Email:    "nuevo@uv.mx",
		Password: "secreto123",
		PersonID: person.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if !created.Active {
		t.Fatalf("expected new user active")
	}

	// Hash stored, plaintext never echoed.
	userRepo := access.NewUserRepo(tx, log)
	stored, err := userRepo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secreto123" {
		t.Fatalf("password not hashed: %q", stored.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")) != nil {
		t.Fatalf("stored hash does not verify")
	}

	// Default role assigned, default link ensured.
	userRoles, err := access.NewUserRoleRepo(tx, log).GetByUserID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("user roles: %v", err)
	}
	if len(userRoles) != 1 || userRoles[0].RoleID != role.ID {
		t.Fatalf("expected default role assignment, got %+v", userRoles)
	}
	links, err := access.NewRolePermissionRepo(tx, log).GetByRoleID(ctx, tx, role.ID)
	if err != nil {
		t.Fatalf("role permissions: %v", err)
	}
	if len(links) != 1 || links[0].PermissionID != perm.ID {
		t.Fatalf("expected default permission link, got %+v", links)
	}
}

func TestUserRegistrationDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))

	testutil.SeedRole(t, ctx, tx, "Profesor")
	testutil.SeedPermission(t, ctx, tx, "experiencias:read")
	existing := testutil.SeedUser(t, ctx, tx, "dup@uv.mx")
	person := testutil.SeedPerson(t, ctx, tx)

	svc := newUserService(t, tx)

	_, err := svc.Create(ctx, &dto.User{
		Email:    existing.Email,
		Password: "whatever",
		PersonID: person.ID,
	})
	if !apierr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUserRegistrationLinkIdempotent(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)

	role := testutil.SeedRole(t, ctx, tx, "Profesor")
	testutil.SeedPermission(t, ctx, tx, "experiencias:read")

	svc := newUserService(t, tx)

	for _, email := range []string{"a@uv.mx", "b@uv.mx"} {
		person := testutil.SeedPerson(t, ctx, tx)
		if _, err := svc.Create(ctx, &dto.User{Email: email, Password: "pw123456", PersonID: person.ID}); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	links, err := access.NewRolePermissionRepo(tx, log).GetByRoleID(ctx, tx, role.ID)
	if err != nil {
		t.Fatalf("role permissions: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected one link after two registrations, got %d", len(links))
	}
}

func TestUserChangePassword(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)

	user := testutil.SeedUser(t, ctx, tx, "pw@uv.mx")
	svc := newUserService(t, tx)

	if err := svc.ChangePassword(ctx, user.ID, "renovada456"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	stored, err := access.NewUserRepo(tx, log).GetByID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("renovada456")) != nil {
		t.Fatalf("new password does not verify")
	}

	if err := svc.ChangePassword(ctx, 999999, "whatever1"); !apierr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserFullUpdateKeepsPassword(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)

	testutil.SeedRole(t, ctx, tx, "Profesor")
	testutil.SeedPermission(t, ctx, tx, "experiencias:read")
	person := testutil.SeedPerson(t, ctx, tx)

	svc := newUserService(t, tx)

	created, err := svc.Create(ctx, &dto.User{
		Email:    "rename@uv.mx",
		Password: "secreto123",
		PersonID: person.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The DTO never carries the hash, so a full replace must leave the
	// stored credential alone.
	updated, err := svc.Update(ctx, created.ID, &dto.User{
		Email:    "renamed@uv.mx",
		PersonID: person.ID,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "renamed@uv.mx" {
		t.Fatalf("email not replaced: %+v", updated)
	}

	stored, err := access.NewUserRepo(tx, log).GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PasswordHash == "" {
		t.Fatalf("full update wiped the stored hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")) != nil {
		t.Fatalf("stored hash no longer verifies after full update")
	}
}
