package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chirpy/internal/auth"
	"chirpy/internal/model"
)

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
}

type refreshTokenStore interface {
	Store(ctx context.Context, token string, userID string, expiresAt time.Time) error
	FindByToken(ctx context.Context, token string) (model.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService composes password checking, access-token issuance and the
// refresh-token lifecycle. It is the single place route handlers get a
// trusted identity from; the subject id always comes out of a validated
// token, never from the request body.
type AuthService struct {
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	users      userFinder
	tokens     refreshTokenStore
	now        func() time.Time
}

func NewAuthService(jwtSecret string, accessTTL time.Duration, refreshTTL time.Duration, users userFinder, tokens refreshTokenStore) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &AuthService{
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		users:      users,
		tokens:     tokens,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// Login verifies the credentials and, on success, issues an access token and
// a fresh refresh token. Unknown email and wrong password collapse into one
// ErrInvalidCredentials so callers cannot probe which accounts exist. A
// requested lifetime is clamped to the configured access TTL; zero means the
// default.
func (s *AuthService) Login(ctx context.Context, email string, password string, requestedExpiry time.Duration) (model.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	accessTTL := s.accessTTL
	if requestedExpiry > 0 && requestedExpiry < accessTTL {
		accessTTL = requestedExpiry
	}

	accessToken, err := auth.MakeJWT(user.ID, accessTTL, s.jwtSecret)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := auth.MakeRefreshToken()
	if err != nil {
		return model.TokenPair{}, err
	}

	if err := s.tokens.Store(ctx, refreshToken, user.ID, s.now().Add(s.refreshTTL)); err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTTL.Seconds()),
		User:         user,
	}, nil
}

// Refresh exchanges an active refresh token for a new access token with the
// default lifetime. The refresh token itself is never rotated or extended,
// so a session cannot outlive the original 60-day window.
func (s *AuthService) Refresh(ctx context.Context, authorization string) (string, error) {
	row, err := s.lookupUsable(ctx, authorization)
	if err != nil {
		return "", err
	}

	accessToken, err := auth.MakeJWT(row.UserID, s.accessTTL, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return accessToken, nil
}

// Revoke permanently retires a refresh token. Revoking an unknown, expired
// or already revoked token fails identically, so an unauthenticated caller
// learns nothing about token state.
func (s *AuthService) Revoke(ctx context.Context, authorization string) error {
	row, err := s.lookupUsable(ctx, authorization)
	if err != nil {
		return err
	}

	return s.tokens.Revoke(ctx, row.Token)
}

// Authenticate validates the access token on a request and returns the
// subject user id. Every protected route goes through here.
func (s *AuthService) Authenticate(authorization string) (string, error) {
	token := auth.BearerToken(authorization)
	if token == "" {
		return "", model.ErrUnauthorized
	}

	userID, err := auth.ValidateJWT(token, s.jwtSecret)
	if err != nil {
		return "", model.ErrUnauthorized
	}

	return userID, nil
}

func (s *AuthService) lookupUsable(ctx context.Context, authorization string) (model.RefreshToken, error) {
	token := auth.BearerToken(authorization)
	if token == "" {
		return model.RefreshToken{}, model.ErrUnauthorized
	}

	row, err := s.tokens.FindByToken(ctx, token)
	if errors.Is(err, model.ErrTokenNotFound) {
		return model.RefreshToken{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.RefreshToken{}, err
	}

	if !row.Active(s.now()) {
		return model.RefreshToken{}, model.ErrUnauthorized
	}

	return row, nil
}
