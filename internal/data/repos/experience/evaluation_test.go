package experience

import (
	"context"
	"testing"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/testutil"
)

func TestEvaluationChangeState(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewEvaluationRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "eval@uv.mx")
	inst := testutil.SeedInstitution(t, ctx, tx, "Facultad de Pedagogía")
	exp := testutil.SeedExperience(t, ctx, tx, inst.ID, user.ID)
	submitted := testutil.SeedState(t, ctx, tx, "Enviada")
	approved := testutil.SeedState(t, ctx, tx, "Aceptada")
	ev := testutil.SeedEvaluation(t, ctx, tx, exp.ID, user.ID, submitted.ID)

	moved, err := repo.ChangeState(ctx, tx, ev.ID, submitted.ID, approved.ID)
	if err != nil {
		t.Fatalf("change state: %v", err)
	}
	if !moved {
		t.Fatalf("expected transition to apply")
	}

	got, err := repo.GetByID(ctx, tx, ev.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.StateID != approved.ID {
		t.Fatalf("state not updated: %+v", got)
	}
}

func TestEvaluationChangeStateStaleCompare(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewEvaluationRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "stale@uv.mx")
	inst := testutil.SeedInstitution(t, ctx, tx, "Facultad de Derecho")
	exp := testutil.SeedExperience(t, ctx, tx, inst.ID, user.ID)
	submitted := testutil.SeedState(t, ctx, tx, "Pendiente")
	reviewing := testutil.SeedState(t, ctx, tx, "Revisando")
	rejected := testutil.SeedState(t, ctx, tx, "Descartada")
	ev := testutil.SeedEvaluation(t, ctx, tx, exp.ID, user.ID, submitted.ID)

	if _, err := repo.ChangeState(ctx, tx, ev.ID, submitted.ID, reviewing.ID); err != nil {
		t.Fatalf("first transition: %v", err)
	}

	// Second caller still believes the evaluation is in its original
	// state; the compare-and-swap must refuse.
	moved, err := repo.ChangeState(ctx, tx, ev.ID, submitted.ID, rejected.ID)
	if err != nil {
		t.Fatalf("stale transition: %v", err)
	}
	if moved {
		t.Fatalf("stale transition should not apply")
	}

	got, err := repo.GetByID(ctx, tx, ev.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.StateID != reviewing.ID {
		t.Fatalf("state clobbered by stale writer: %+v", got)
	}
}

func TestHistoryByEvaluation(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	histRepo := NewHistoryRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "hist@uv.mx")
	inst := testutil.SeedInstitution(t, ctx, tx, "Facultad de Biología")
	exp := testutil.SeedExperience(t, ctx, tx, inst.ID, user.ID)
	state := testutil.SeedState(t, ctx, tx, "Inicial")
	ev := testutil.SeedEvaluation(t, ctx, tx, exp.ID, user.ID, state.ID)

	testutil.SeedHistory(t, ctx, tx, ev.ID, state.ID, user.ID, "created")
	testutil.SeedHistory(t, ctx, tx, ev.ID, state.ID, user.ID, "reviewed")

	rows, err := histRepo.GetByEvaluationID(ctx, tx, ev.ID)
	if err != nil {
		t.Fatalf("get by evaluation: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(rows))
	}

	n, err := histRepo.HardDeleteByEvaluationID(ctx, tx, ev.ID)
	if err != nil {
		t.Fatalf("hard delete by evaluation: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows deleted, got %d", n)
	}
}
