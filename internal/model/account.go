package model

import (
	"context"

	"github.com/google/uuid"
)

// DefaultEraseChunkSize bounds the number of score deletes issued per statement.
const DefaultEraseChunkSize = 500

// AccountStore removes every document owned by one identity.
type AccountStore interface {
	// Erase deletes the profile, every handle reservation owned by the
	// identity and all its scores in one atomic unit.
	Erase(ctx context.Context, params EraseParams) (EraseResult, error)
}

// EraseParams identifies the data to remove.
type EraseParams struct {
	UserID    uuid.UUID
	ChunkSize int
}

// EraseResult reports what was removed.
type EraseResult struct {
	ProfileDeleted     bool
	ReservationDeleted bool
	ScoresDeleted      int
}
