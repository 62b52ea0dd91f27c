package access

import (
	"context"
	"testing"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/testutil"
)

func TestUserRepoGetByEmail(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))

	seeded := testutil.SeedUser(t, ctx, tx, "ana@uv.mx")

	got, err := repo.GetByEmail(ctx, tx, "ana@uv.mx")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil || got.ID != seeded.ID {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.Person == nil {
		t.Fatalf("expected person navigation preloaded")
	}

	missing, err := repo.GetByEmail(ctx, tx, "nobody@uv.mx")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown email, got %+v", missing)
	}
}

func TestUserRepoEmailExists(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))

	testutil.SeedUser(t, ctx, tx, "luis@uv.mx")

	exists, err := repo.EmailExists(ctx, tx, "luis@uv.mx")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, tx, "ghost@uv.mx")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Fatalf("expected email to be free")
	}
}

func TestUserRepoHardDeleteByPersonID(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))

	seeded := testutil.SeedUser(t, ctx, tx, "marta@uv.mx")

	n, err := repo.HardDeleteByPersonID(ctx, tx, seeded.PersonID)
	if err != nil {
		t.Fatalf("hard delete by person: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}

	got, err := repo.GetByID(ctx, tx, seeded.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Fatalf("expected user gone, got %+v", got)
	}
}
