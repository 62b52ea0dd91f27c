package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/data/repos/testutil"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/ctxutil"
)

func newAuthService(t *testing.T, tx *gorm.DB) AuthService {
	log := testutil.Logger(t)
	return NewAuthService(tx, log,
		access.NewUserRepo(tx, log),
		access.NewUserTokenRepo(tx, log),
		"test-secret", time.Hour, 24*time.Hour)
}

func seedCredentialUser(t *testing.T, ctx context.Context, tx *gorm.DB, email, password string, active bool) *domain.User {
	t.Helper()
	user := testutil.SeedUser(t, ctx, tx, email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := tx.WithContext(ctx).Model(user).Updates(map[string]any{
		"password_hash": string(hash),
		"active":        active,
	}).Error; err != nil {
		t.Fatalf("update credentials: %v", err)
	}
	return user
}

func TestValidateCredentials(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)

	seedCredentialUser(t, ctx, tx, "ok@uv.mx", "correcta1", true)
	seedCredentialUser(t, ctx, tx, "baja@uv.mx", "correcta1", false)

	got, err := svc.ValidateCredentials(ctx, "ok@uv.mx", "correcta1")
	if err != nil {
		t.Fatalf("valid credentials: %v", err)
	}
	if got == nil || got.Email != "ok@uv.mx" {
		t.Fatalf("expected user back, got %+v", got)
	}

	// Wrong password, unknown email, and inactive user are all the same
	// absent result.
	for name, c := range map[string][2]string{
		"wrong password": {"ok@uv.mx", "incorrecta"},
		"unknown email":  {"nadie@uv.mx", "correcta1"},
		"inactive user":  {"baja@uv.mx", "correcta1"},
	} {
		got, err := svc.ValidateCredentials(ctx, c[0], c[1])
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if got != nil {
			t.Fatalf("%s: expected nil result, got %+v", name, got)
		}
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	svc := newAuthService(t, tx)

	user := seedCredentialUser(t, ctx, tx, "login@uv.mx", "clave1234", true)

	pair, err := svc.Login(ctx, "login@uv.mx", "clave1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}
	if pair.User == nil || pair.User.ID != user.ID {
		t.Fatalf("wrong user on pair: %+v", pair.User)
	}

	stored, err := access.NewUserTokenRepo(tx, log).GetByAccessToken(ctx, tx, pair.AccessToken)
	if err != nil {
		t.Fatalf("load token row: %v", err)
	}
	if stored == nil || stored.UserID != user.ID {
		t.Fatalf("token row not persisted: %+v", stored)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)

	seedCredentialUser(t, ctx, tx, "reject@uv.mx", "clave1234", true)

	if _, err := svc.Login(ctx, "reject@uv.mx", "equivocada"); err == nil {
		t.Fatalf("expected login to fail")
	}
}

func TestSetContextFromToken(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)

	user := seedCredentialUser(t, ctx, tx, "ctx@uv.mx", "clave1234", true)
	pair, err := svc.Login(ctx, "ctx@uv.mx", "clave1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	withUser, err := svc.SetContextFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}
	rd := ctxutil.GetRequestData(withUser)
	if rd == nil || rd.UserID != user.ID {
		t.Fatalf("request data missing: %+v", rd)
	}
	if rd.RefreshToken != pair.RefreshToken {
		t.Fatalf("refresh token not hydrated")
	}

	if _, err := svc.SetContextFromToken(ctx, "not-a-token"); err == nil {
		t.Fatalf("expected garbage token to fail")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	svc := newAuthService(t, tx)

	seedCredentialUser(t, ctx, tx, "rotate@uv.mx", "clave1234", true)
	pair, err := svc.Login(ctx, "rotate@uv.mx", "clave1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	authed, err := svc.SetContextFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}
	fresh, err := svc.Refresh(authed)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh token not rotated")
	}

	old, err := access.NewUserTokenRepo(tx, log).GetByRefreshToken(ctx, tx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("load old token: %v", err)
	}
	if old != nil {
		t.Fatalf("old token pair should be gone")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)

	seedCredentialUser(t, ctx, tx, "out@uv.mx", "clave1234", true)
	pair, err := svc.Login(ctx, "out@uv.mx", "clave1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	authed, err := svc.SetContextFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}

	if err := svc.Logout(authed); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.SetContextFromToken(ctx, pair.AccessToken); err == nil {
		t.Fatalf("revoked token should be rejected")
	}
}
