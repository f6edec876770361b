package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

const refreshTokenColumns = `id, jti, user_id, token_hash, issued_at, expires_at, revoked_at, rotated_from_jti`

// RefreshTokenRepository keeps the refresh tokens issued to identities.
// Rows are removed together with their identity by ON DELETE CASCADE.
type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create stores a newly issued token. created_at and updated_at come from
// column defaults. Returns ErrNotFound when the identity has been erased.
func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO refresh_tokens (`+refreshTokenColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		token.ID, token.JTI, token.UserID, token.TokenHash, token.IssuedAt, token.ExpiresAt,
		token.RevokedAt, token.RotatedFromJTI,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to store refresh token for identity %s: %w", token.UserID, err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByJTI(ctx context.Context, jti string) (model.RefreshToken, error) {
	rt, err := scanRefreshToken(r.db.QueryRow(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE jti = $1`, jti))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

// RevokeByJTI marks one token used. Revoking an unknown or already revoked
// token is a no-op so sign-out stays idempotent.
func (r *RefreshTokenRepository) RevokeByJTI(ctx context.Context, jti string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW(), updated_at = NOW()
		 WHERE jti = $1 AND revoked_at IS NULL`, jti)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllByUser ends every live session of an identity.
func (r *RefreshTokenRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW(), updated_at = NOW()
		 WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions of identity %s: %w", userID, err)
	}
	return nil
}

func scanRefreshToken(row pgx.Row) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := row.Scan(
		&rt.ID, &rt.JTI, &rt.UserID, &rt.TokenHash, &rt.IssuedAt, &rt.ExpiresAt,
		&rt.RevokedAt, &rt.RotatedFromJTI,
	)
	return rt, err
}
