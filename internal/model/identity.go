package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IdentityStore persists credentialed identities.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (Identity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Identity, error)
	// Create returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, identity Identity) (Identity, error)
	// Delete removes the identity. Deleting an absent identity succeeds.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Identity represents a stored identity with its authentication material.
type Identity struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is the token pair handed to a signed-in client.
type Session struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
}

// Credentials are the email/password pair presented at sign-in.
type Credentials struct {
	Email    string
	Password string
}

// SignUpParams contains everything needed to create an identity with a profile.
type SignUpParams struct {
	Email    string
	Password string
	Handle   string
}
