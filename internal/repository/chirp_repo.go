package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chirpy/internal/model"
)

type ChirpRepository struct {
	pool *pgxpool.Pool
}

func NewChirpRepository(pool *pgxpool.Pool) *ChirpRepository {
	return &ChirpRepository{pool: pool}
}

func (r *ChirpRepository) Create(ctx context.Context, c model.Chirp) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO chirps (id, body, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Body, c.UserID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create chirp: %w", err)
	}
	return nil
}

func (r *ChirpRepository) FindByID(ctx context.Context, id string) (model.Chirp, error) {
	var c model.Chirp
	err := r.pool.QueryRow(ctx,
		`SELECT id, body, user_id, created_at, updated_at FROM chirps WHERE id = $1`, id).
		Scan(&c.ID, &c.Body, &c.UserID, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Chirp{}, model.ErrChirpNotFound
	}
	if err != nil {
		return model.Chirp{}, fmt.Errorf("find chirp by id: %w", err)
	}
	return c, nil
}

// List returns chirps ordered by creation time, optionally filtered to one
// author. An empty authorID means all chirps.
func (r *ChirpRepository) List(ctx context.Context, authorID string, descending bool) ([]model.Chirp, error) {
	query := `SELECT id, body, user_id, created_at, updated_at FROM chirps`
	args := []any{}
	if authorID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, authorID)
	}
	if descending {
		query += ` ORDER BY created_at DESC`
	} else {
		query += ` ORDER BY created_at ASC`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chirps: %w", err)
	}
	defer rows.Close()

	chirps := make([]model.Chirp, 0)
	for rows.Next() {
		var c model.Chirp
		if err := rows.Scan(&c.ID, &c.Body, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chirp: %w", err)
		}
		chirps = append(chirps, c)
	}
	return chirps, rows.Err()
}

func (r *ChirpRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM chirps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chirp: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrChirpNotFound
	}
	return nil
}

func (r *ChirpRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM chirps`)
	if err != nil {
		return fmt.Errorf("delete all chirps: %w", err)
	}
	return nil
}
