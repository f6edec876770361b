package model

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
	ErrTokenMismatch = errors.New("refresh token mismatch")
)

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (token string, jti string, err error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (userID uuid.UUID, jti string, err error)
}

// RefreshTokenStore persists issued refresh tokens for rotation and revocation.
type RefreshTokenStore interface {
	// Create returns ErrNotFound when token.UserID names no identity.
	Create(ctx context.Context, token RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)
	RevokeByJTI(ctx context.Context, jti string) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type RefreshToken struct {
	ID             uuid.UUID
	JTI            string
	UserID         uuid.UUID
	TokenHash      []byte
	IssuedAt       time.Time
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	RotatedFromJTI *string
}

// ContextManager carries the authenticated caller through a request context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
