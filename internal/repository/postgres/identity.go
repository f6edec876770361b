package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.IdentityStore = (*IdentityRepository)(nil)

type IdentityRepository struct {
	db *Connection
}

func NewIdentityRepository(db *Connection) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (model.Identity, error) {
	var identity model.Identity
	query := `SELECT id, email, password_hash, created_at
			  FROM identities WHERE LOWER(email) = LOWER($1)`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return identity, nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	var identity model.Identity
	query := `SELECT id, email, password_hash, created_at
			  FROM identities WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by id: %w", err)
	}

	return identity, nil
}

func (r *IdentityRepository) Create(ctx context.Context, identity model.Identity) (model.Identity, error) {
	query := `INSERT INTO identities (id, email, password_hash, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, email, password_hash, created_at`

	var saved model.Identity
	err := r.db.QueryRow(ctx, query,
		identity.ID, identity.Email, identity.PasswordHash, identity.CreatedAt,
	).Scan(&saved.ID, &saved.Email, &saved.PasswordHash, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Identity{}, model.ErrEmailTaken
		}
		return model.Identity{}, fmt.Errorf("failed to create identity: %w", err)
	}

	return saved, nil
}

// Delete removes the identity; its refresh tokens go with it via ON DELETE CASCADE.
func (r *IdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM identities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	return nil
}
