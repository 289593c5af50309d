package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"chirpy/internal/model"
)

// Testify doubles for the repository contracts, shared by service and
// handler tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCredentials(ctx context.Context, id string, email string, passwordHash string) error {
	args := m.Called(ctx, id, email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpgradeToChirpyRed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Store(ctx context.Context, token string, userID string, expiresAt time.Time) error {
	args := m.Called(ctx, token, userID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenRepository) FindByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.RefreshToken), args.Error(1)
}

func (m *MockTokenRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockChirpRepository struct {
	mock.Mock
}

func (m *MockChirpRepository) Create(ctx context.Context, c model.Chirp) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChirpRepository) FindByID(ctx context.Context, id string) (model.Chirp, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Chirp), args.Error(1)
}

func (m *MockChirpRepository) List(ctx context.Context, authorID string, descending bool) ([]model.Chirp, error) {
	args := m.Called(ctx, authorID, descending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chirp), args.Error(1)
}

func (m *MockChirpRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChirpRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
