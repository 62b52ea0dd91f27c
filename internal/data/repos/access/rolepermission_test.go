package access

import (
	"context"
	"testing"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/testutil"
)

func TestRolePermissionEnsureLinkIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRolePermissionRepo(db, testutil.Logger(t))

	role := testutil.SeedRole(t, ctx, tx, "Lector")
	perm := testutil.SeedPermission(t, ctx, tx, "informes:read")

	if err := repo.EnsureLink(ctx, tx, role.ID, perm.ID); err != nil {
		t.Fatalf("first link: %v", err)
	}
	if err := repo.EnsureLink(ctx, tx, role.ID, perm.ID); err != nil {
		t.Fatalf("second link: %v", err)
	}

	links, err := repo.GetByRoleID(ctx, tx, role.ID)
	if err != nil {
		t.Fatalf("get by role: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected exactly one link, got %d", len(links))
	}
}

func TestUserRoleEnsureAssignmentIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRoleRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "raul@uv.mx")
	role := testutil.SeedRole(t, ctx, tx, "Becario")

	if err := repo.EnsureAssignment(ctx, tx, user.ID, role.ID); err != nil {
		t.Fatalf("first assignment: %v", err)
	}
	if err := repo.EnsureAssignment(ctx, tx, user.ID, role.ID); err != nil {
		t.Fatalf("second assignment: %v", err)
	}

	assignments, err := repo.GetByUserID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("get by user: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("expected exactly one assignment, got %d", len(assignments))
	}
}
