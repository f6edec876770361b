package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query := `SELECT id, username, email, created_at FROM users WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) HandleExists(ctx context.Context, handle string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM usernames WHERE username = $1)`

	if err := r.db.QueryRow(ctx, query, handle).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check handle: %w", err)
	}
	return exists, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	var saved model.Profile
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := reserveHandle(ctx, tx, profile.Username, profile.ID); err != nil {
			return err
		}

		query := `INSERT INTO users (id, username, email, created_at)
				  VALUES ($1, $2, $3, $4)
				  ON CONFLICT (id) DO NOTHING
				  RETURNING id, username, email, created_at`

		var err error
		saved, err = scanProfile(tx.QueryRow(ctx, query,
			profile.ID, profile.Username, profile.Email, profile.CreatedAt,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrProfileExists
		}
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}

	return saved, nil
}

func (r *ProfileRepository) ChangeHandle(ctx context.Context, id uuid.UUID, handle string) (model.Profile, error) {
	var saved model.Profile
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		current, err := scanProfile(tx.QueryRow(ctx,
			`SELECT id, username, email, created_at FROM users WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock profile: %w", err)
		}

		if current.Username == handle {
			saved = current
			return nil
		}

		if err := reserveHandle(ctx, tx, handle, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM usernames WHERE username = $1 AND uid = $2`, current.Username, id); err != nil {
			return fmt.Errorf("failed to release handle: %w", err)
		}

		saved, err = scanProfile(tx.QueryRow(ctx,
			`UPDATE users SET username = $2 WHERE id = $1 RETURNING id, username, email, created_at`,
			id, handle))
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}

	return saved, nil
}

// reserveHandle is a create-if-absent write; a concurrent reservation of the
// same handle either wins here or fails with ErrHandleTaken.
func reserveHandle(ctx context.Context, tx pgx.Tx, handle string, uid uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`INSERT INTO usernames (username, uid) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		handle, uid)
	if err != nil {
		return fmt.Errorf("failed to reserve handle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrHandleTaken
	}
	return nil
}

func scanProfile(row pgx.Row) (model.Profile, error) {
	var p model.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.CreatedAt)
	return p, err
}
