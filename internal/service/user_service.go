package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chirpy/internal/auth"
	"chirpy/internal/model"
)

type userStore interface {
	Create(ctx context.Context, u model.User) error
	FindByID(ctx context.Context, id string) (model.User, error)
	UpdateCredentials(ctx context.Context, id string, email string, passwordHash string) error
	UpgradeToChirpyRed(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, email string, password string) (model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// Update replaces the authenticated user's email and password. The caller's
// id comes from the validated access token, never from the payload.
func (s *UserService) Update(ctx context.Context, userID string, email string, password string) (model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	if err := s.users.UpdateCredentials(ctx, userID, email, hash); err != nil {
		return model.User{}, err
	}

	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpgradeToChirpyRed(ctx context.Context, userID string) error {
	return s.users.UpgradeToChirpyRed(ctx, userID)
}

func (s *UserService) DeleteAll(ctx context.Context) error {
	return s.users.DeleteAll(ctx)
}
