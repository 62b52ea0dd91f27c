package catalog

import (
	"context"
	"testing"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/testutil"
	"github.com/hvaldez/experiencias-backend/internal/domain"
)

func TestRoleRepoLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRoleRepo(db, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, &domain.Role{Name: "Coordinador", Description: "runs the program", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.Name != "Coordinador" {
		t.Fatalf("unexpected row: %+v", got)
	}

	byName, err := repo.GetByName(ctx, tx, "Coordinador")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Fatalf("unexpected row by name: %+v", byName)
	}
}

func TestRoleRepoAbsenceIsNil(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRoleRepo(db, testutil.Logger(t))

	got, err := repo.GetByID(ctx, tx, 999999)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}

	byName, err := repo.GetByName(ctx, tx, "no-such-role")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName != nil {
		t.Fatalf("expected nil for missing name, got %+v", byName)
	}

	ok, err := repo.UpdateFields(ctx, tx, 999999, map[string]any{"description": "x"})
	if err != nil {
		t.Fatalf("update fields: %v", err)
	}
	if ok {
		t.Fatalf("expected no rows affected for missing id")
	}
}

func TestRoleRepoSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRoleRepo(db, testutil.Logger(t))

	role := testutil.SeedRole(t, ctx, tx, "Temporal")

	ok, err := repo.SoftDelete(ctx, tx, role.ID)
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !ok {
		t.Fatalf("expected soft delete to hit a row")
	}

	all, err := repo.GetAll(ctx, tx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	for _, r := range all {
		if r.ID == role.ID {
			t.Fatalf("soft-deleted role still listed")
		}
	}

	// The row itself survives for direct lookups.
	got, err := repo.GetByID(ctx, tx, role.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.Active {
		t.Fatalf("expected inactive row, got %+v", got)
	}
}

func TestRoleRepoUpdateFields(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRoleRepo(db, testutil.Logger(t))

	role := testutil.SeedRole(t, ctx, tx, "Asesor")

	ok, err := repo.UpdateFields(ctx, tx, role.ID, map[string]any{"description": "advises students"})
	if err != nil {
		t.Fatalf("update fields: %v", err)
	}
	if !ok {
		t.Fatalf("expected update to hit a row")
	}

	got, err := repo.GetByID(ctx, tx, role.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Description != "advises students" {
		t.Fatalf("description not updated: %+v", got)
	}
	if got.Name != "Asesor" {
		t.Fatalf("untouched field changed: %+v", got)
	}
}
