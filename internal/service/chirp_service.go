package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chirpy/internal/model"
	"chirpy/internal/util"
)

type chirpStore interface {
	Create(ctx context.Context, c model.Chirp) error
	FindByID(ctx context.Context, id string) (model.Chirp, error)
	List(ctx context.Context, authorID string, descending bool) ([]model.Chirp, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type ChirpService struct {
	chirps chirpStore
}

func NewChirpService(chirps chirpStore) *ChirpService {
	return &ChirpService{chirps: chirps}
}

// Create validates length, masks profanity and persists the chirp under the
// authenticated author.
func (s *ChirpService) Create(ctx context.Context, authorID string, body string) (model.Chirp, error) {
	if body == "" {
		return model.Chirp{}, model.ErrInvalidInput
	}
	if len(body) > model.MaxChirpLength {
		return model.Chirp{}, model.ErrChirpTooLong
	}

	now := time.Now().UTC()
	chirp := model.Chirp{
		ID:        uuid.NewString(),
		Body:      util.CleanProfanity(body),
		UserID:    authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.chirps.Create(ctx, chirp); err != nil {
		return model.Chirp{}, err
	}

	return chirp, nil
}

func (s *ChirpService) List(ctx context.Context, authorID string, descending bool) ([]model.Chirp, error) {
	return s.chirps.List(ctx, authorID, descending)
}

func (s *ChirpService) Get(ctx context.Context, id string) (model.Chirp, error) {
	return s.chirps.FindByID(ctx, id)
}

// Delete removes a chirp after checking ownership against the authenticated
// caller.
func (s *ChirpService) Delete(ctx context.Context, callerID string, chirpID string) error {
	chirp, err := s.chirps.FindByID(ctx, chirpID)
	if err != nil {
		return err
	}

	if chirp.UserID != callerID {
		return model.ErrForbidden
	}

	return s.chirps.Delete(ctx, chirpID)
}

func (s *ChirpService) DeleteAll(ctx context.Context) error {
	return s.chirps.DeleteAll(ctx)
}
