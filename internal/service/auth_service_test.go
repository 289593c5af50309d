package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chirpy/internal/auth"
	"chirpy/internal/model"
	"chirpy/internal/repository"
)

const (
	testJWTSecret  = "test-secret"
	testAccessTTL  = time.Hour
	testRefreshTTL = 60 * 24 * time.Hour
)

func newTestAuthService(t *testing.T, users *repository.MockUserRepository, tokens *repository.MockTokenRepository) *AuthService {
	t.Helper()

	svc, err := NewAuthService(testJWTSecret, testAccessTTL, testRefreshTTL, users, tokens)
	require.NoError(t, err)
	return svc
}

func seededUser(t *testing.T, password string) model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	return model.User{
		ID:           "5f2c1f45-48d3-4f88-a67f-04a1e1c9a0d3",
		Email:        "walt@chirpy.test",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues both tokens on valid credentials", func(t *testing.T) {
		user := seededUser(t, "correctPassword123!")
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		var storedExpiry time.Time
		mockTokens.On("Store", mock.Anything, mock.AnythingOfType("string"), user.ID, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				storedExpiry = args.Get(3).(time.Time)
			}).
			Return(nil)

		pair, err := svc.Login(context.Background(), user.Email, "correctPassword123!", 0)
		require.NoError(t, err)

		subject, err := auth.ValidateJWT(pair.AccessToken, testJWTSecret)
		require.NoError(t, err)
		require.Equal(t, user.ID, subject)

		require.Len(t, pair.RefreshToken, 64)
		require.Equal(t, "Bearer", pair.TokenType)
		require.EqualValues(t, 3600, pair.ExpiresIn)
		require.Equal(t, user.Email, pair.User.Email)
		require.WithinDuration(t, time.Now().UTC().Add(testRefreshTTL), storedExpiry, time.Minute)

		mockTokens.AssertExpectations(t)
	})

	t.Run("clamps a requested lifetime to one hour", func(t *testing.T) {
		user := seededUser(t, "pw")
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		mockTokens.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		pair, err := svc.Login(context.Background(), user.Email, "pw", 5*time.Hour)
		require.NoError(t, err)
		require.EqualValues(t, 3600, pair.ExpiresIn)

		pair, err = svc.Login(context.Background(), user.Email, "pw", 10*time.Minute)
		require.NoError(t, err)
		require.EqualValues(t, 600, pair.ExpiresIn)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		user := seededUser(t, "correctPassword123!")
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockUsers.On("FindByEmail", mock.Anything, "nobody@chirpy.test").Return(model.User{}, model.ErrUserNotFound)
		mockUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, errUnknown := svc.Login(context.Background(), "nobody@chirpy.test", "correctPassword123!", 0)
		_, errWrongPw := svc.Login(context.Background(), user.Email, "wrongPassword", 0)

		require.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)
		require.ErrorIs(t, errWrongPw, model.ErrInvalidCredentials)
		require.Equal(t, errUnknown, errWrongPw)

		mockTokens.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	now := time.Now().UTC()

	activeRow := model.RefreshToken{
		Token:     "aaaabbbbccccdddd",
		UserID:    "user-1",
		CreatedAt: now.Add(-time.Hour),
		UpdatedAt: now.Add(-time.Hour),
		ExpiresAt: now.Add(59 * 24 * time.Hour),
	}

	t.Run("active token yields a fresh access token", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockTokens.On("FindByToken", mock.Anything, activeRow.Token).Return(activeRow, nil)

		accessToken, err := svc.Refresh(context.Background(), "Bearer "+activeRow.Token)
		require.NoError(t, err)

		subject, err := auth.ValidateJWT(accessToken, testJWTSecret)
		require.NoError(t, err)
		require.Equal(t, activeRow.UserID, subject)

		// The refresh row itself is never touched.
		mockTokens.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockTokens.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := activeRow
		expired.ExpiresAt = now.Add(-time.Minute)

		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockTokens.On("FindByToken", mock.Anything, expired.Token).Return(expired, nil)

		_, err := svc.Refresh(context.Background(), "Bearer "+expired.Token)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		revokedAt := now.Add(-time.Minute)
		revoked := activeRow
		revoked.RevokedAt = &revokedAt

		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockTokens.On("FindByToken", mock.Anything, revoked.Token).Return(revoked, nil)

		_, err := svc.Refresh(context.Background(), "Bearer "+revoked.Token)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockTokens.On("FindByToken", mock.Anything, "missing").Return(model.RefreshToken{}, model.ErrTokenNotFound)

		_, err := svc.Refresh(context.Background(), "Bearer missing")
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("missing bearer header is rejected without a lookup", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		_, err := svc.Refresh(context.Background(), "")
		require.ErrorIs(t, err, model.ErrUnauthorized)

		mockTokens.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Revoke(t *testing.T) {
	now := time.Now().UTC()

	activeRow := model.RefreshToken{
		Token:     "aaaabbbbccccdddd",
		UserID:    "user-1",
		ExpiresAt: now.Add(24 * time.Hour),
	}

	t.Run("revokes an active token", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockTokens.On("FindByToken", mock.Anything, activeRow.Token).Return(activeRow, nil)
		mockTokens.On("Revoke", mock.Anything, activeRow.Token).Return(nil)

		require.NoError(t, svc.Revoke(context.Background(), "Bearer "+activeRow.Token))
		mockTokens.AssertExpectations(t)
	})

	t.Run("re-revoking matches revoking an unknown token", func(t *testing.T) {
		revokedAt := now.Add(-time.Minute)
		revoked := activeRow
		revoked.RevokedAt = &revokedAt

		mockUsers := new(repository.MockUserRepository)
		mockTokens := new(repository.MockTokenRepository)
		svc := newTestAuthService(t, mockUsers, mockTokens)

		mockTokens.On("FindByToken", mock.Anything, revoked.Token).Return(revoked, nil)
		mockTokens.On("FindByToken", mock.Anything, "missing").Return(model.RefreshToken{}, model.ErrTokenNotFound)

		errRevoked := svc.Revoke(context.Background(), "Bearer "+revoked.Token)
		errUnknown := svc.Revoke(context.Background(), "Bearer missing")

		require.ErrorIs(t, errRevoked, model.ErrUnauthorized)
		require.ErrorIs(t, errUnknown, model.ErrUnauthorized)
		require.Equal(t, errRevoked, errUnknown)

		mockTokens.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	mockUsers := new(repository.MockUserRepository)
	mockTokens := new(repository.MockTokenRepository)
	svc := newTestAuthService(t, mockUsers, mockTokens)

	t.Run("returns the subject of a valid token", func(t *testing.T) {
		token, err := auth.MakeJWT("user-42", time.Hour, testJWTSecret)
		require.NoError(t, err)

		userID, err := svc.Authenticate("Bearer " + token)
		require.NoError(t, err)
		require.Equal(t, "user-42", userID)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		_, err := svc.Authenticate("")
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("rejects a malformed scheme", func(t *testing.T) {
		token, err := auth.MakeJWT("user-42", time.Hour, testJWTSecret)
		require.NoError(t, err)

		_, err = svc.Authenticate("bearer " + token)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := auth.MakeJWT("user-42", -time.Second, testJWTSecret)
		require.NoError(t, err)

		_, err = svc.Authenticate("Bearer " + token)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := auth.MakeJWT("user-42", time.Hour, "other-secret")
		require.NoError(t, err)

		_, err = svc.Authenticate("Bearer " + token)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})
}
