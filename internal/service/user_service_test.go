package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chirpy/internal/auth"
	"chirpy/internal/model"
	"chirpy/internal/repository"
)

func TestUserService_Create(t *testing.T) {
	t.Run("stores a hash, never the raw password", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		svc := NewUserService(mockUsers)

		var stored model.User
		mockUsers.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(model.User)
			}).
			Return(nil)

		user, err := svc.Create(context.Background(), "walt@chirpy.test", "123456")
		require.NoError(t, err)

		require.Equal(t, "walt@chirpy.test", user.Email)
		require.NotEmpty(t, user.ID)
		require.NotEqual(t, "123456", stored.PasswordHash)
		require.True(t, auth.CheckPasswordHash("123456", stored.PasswordHash))
	})

	t.Run("duplicate email surfaces already-exists", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		svc := NewUserService(mockUsers)

		mockUsers.On("Create", mock.Anything, mock.AnythingOfType("model.User")).Return(model.ErrUserAlreadyExists)

		_, err := svc.Create(context.Background(), "walt@chirpy.test", "123456")
		require.ErrorIs(t, err, model.ErrUserAlreadyExists)
	})
}

func TestUserService_Update(t *testing.T) {
	mockUsers := new(repository.MockUserRepository)
	svc := NewUserService(mockUsers)

	updated := model.User{ID: "user-1", Email: "new@chirpy.test"}

	mockUsers.On("UpdateCredentials", mock.Anything, "user-1", "new@chirpy.test", mock.AnythingOfType("string")).Return(nil)
	mockUsers.On("FindByID", mock.Anything, "user-1").Return(updated, nil)

	user, err := svc.Update(context.Background(), "user-1", "new@chirpy.test", "newPassword")
	require.NoError(t, err)
	require.Equal(t, updated, user)

	hash := mockUsers.Calls[0].Arguments.String(3)
	require.True(t, auth.CheckPasswordHash("newPassword", hash))
}

func TestUserService_UpgradeToChirpyRed(t *testing.T) {
	t.Run("upgrades an existing user", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		svc := NewUserService(mockUsers)

		mockUsers.On("UpgradeToChirpyRed", mock.Anything, "user-1").Return(nil)

		require.NoError(t, svc.UpgradeToChirpyRed(context.Background(), "user-1"))
	})

	t.Run("unknown user reports not found", func(t *testing.T) {
		mockUsers := new(repository.MockUserRepository)
		svc := NewUserService(mockUsers)

		mockUsers.On("UpgradeToChirpyRed", mock.Anything, "missing").Return(model.ErrUserNotFound)

		err := svc.UpgradeToChirpyRed(context.Background(), "missing")
		require.ErrorIs(t, err, model.ErrUserNotFound)
	})
}
