package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore persists user profiles together with their handle reservations.
// A profile and its reservation are always written in one atomic unit.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	// HandleExists reports whether a reservation for handle exists.
	HandleExists(ctx context.Context, handle string) (bool, error)
	// Create reserves profile.Username with a create-if-absent write and stores
	// the profile. Returns ErrHandleTaken when the reservation already exists.
	Create(ctx context.Context, profile Profile) (Profile, error)
	// ChangeHandle reserves handle for id, releases the previous reservation and
	// updates the profile. Returns ErrHandleTaken or ErrNotFound.
	ChangeHandle(ctx context.Context, id uuid.UUID, handle string) (Profile, error)
}

// Profile is the launcher-facing user record, keyed by identity ID.
type Profile struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// Reservation binds a handle to the identity that owns it.
type Reservation struct {
	Handle string
	UserID uuid.UUID
}

// HandleCheck is the answer to a handle availability query.
type HandleCheck struct {
	Handle    string
	Available bool
	Reason    string
}
