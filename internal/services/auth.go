package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/ctxutil"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *dto.User `json:"user"`
}

type AuthService interface {
	// ValidateCredentials returns (nil, nil) for every failure mode
	// (unknown email, inactive user, wrong password) so callers cannot
	// tell them apart.
	ValidateCredentials(ctx context.Context, email, password string) (*dto.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context) (*TokenPair, error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      access.UserRepo
	userTokenRepo access.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo access.UserRepo,
	userTokenRepo access.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           baseLog.With("service", "AuthService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *authService) ValidateCredentials(ctx context.Context, email, password string) (*dto.User, error) {
	if err := validate.First(
		validate.Required("email", email),
		validate.Required("password", password),
	); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		s.log.Error("credential lookup failed", "error", err)
		return nil, apierr.External("user", err)
	}
	if user == nil || !user.Active {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return dto.UserFromModel(user), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", fmt.Errorf("authentication failed"))
	}

	var pair *TokenPair
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Opportunistic cleanup keeps the token table from growing
		// without a dedicated reaper.
		if n, err := s.userTokenRepo.DeleteExpired(ctx, tx, time.Now()); err != nil {
			return err
		} else if n > 0 {
			s.log.Debug("purged expired tokens", "count", n)
		}
		pair, err = s.issueTokens(ctx, tx, user)
		return err
	})
	if err != nil {
		if apierr.From(err) != nil {
			return nil, err
		}
		s.log.Error("login failed", "email", email, "error", err)
		return nil, apierr.External("user_token", err)
	}
	return pair, nil
}

func (s *authService) Refresh(ctx context.Context) (*TokenPair, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("no refresh token in request context"))
	}

	var pair *TokenPair
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.userTokenRepo.GetByRefreshToken(ctx, tx, rd.RefreshToken)
		if err != nil {
			return err
		}
		if existing == nil {
			return apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("unknown refresh token"))
		}
		if existing.ExpiresAt.Before(time.Now()) {
			_, _ = s.userTokenRepo.HardDelete(ctx, tx, existing.ID)
			return apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("refresh token expired"))
		}

		user, err := s.userRepo.GetByID(ctx, tx, existing.UserID)
		if err != nil {
			return err
		}
		if user == nil || !user.Active {
			return apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("user no longer active"))
		}

		if pair, err = s.issueTokens(ctx, tx, dto.UserFromModel(user)); err != nil {
			return err
		}
		// Rotation: the old pair dies with the transaction.
		_, err = s.userTokenRepo.HardDelete(ctx, tx, existing.ID)
		return err
	})
	if err != nil {
		if apierr.From(err) != nil {
			return nil, err
		}
		s.log.Error("refresh failed", "error", err)
		return nil, apierr.External("user_token", err)
	}
	return pair, nil
}

func (s *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("no access token in request context"))
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.userTokenRepo.GetByAccessToken(ctx, tx, rd.TokenString)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil // already logged out
		}
		_, err = s.userTokenRepo.HardDelete(ctx, tx, existing.ID)
		return err
	})
	if err != nil {
		s.log.Error("logout failed", "error", err)
		return apierr.External("user_token", err)
	}
	return nil
}

func (s *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return ctx, fmt.Errorf("invalid or expired token")
	}
	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return ctx, fmt.Errorf("invalid subject in token")
	}

	row, err := s.userTokenRepo.GetByAccessToken(ctx, nil, tokenString)
	if err != nil {
		return ctx, fmt.Errorf("load token row: %w", err)
	}
	if row == nil {
		return ctx, fmt.Errorf("token revoked")
	}

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:       userID,
		TokenString:  tokenString,
		RefreshToken: row.RefreshToken,
	}), nil
}

func (s *authService) AccessTTL() time.Duration { return s.accessTTL }

func (s *authService) issueTokens(ctx context.Context, tx *gorm.DB, user *dto.User) (*TokenPair, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecretKey))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken := uuid.New().String()
	expiresAt := now.Add(s.refreshTTL)
	if _, err := s.userTokenRepo.Create(ctx, tx, &domain.UserToken{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}); err != nil {
		return nil, fmt.Errorf("persist token pair: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}
