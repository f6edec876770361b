package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeaderboardSize is the number of score records retained after trimming.
const LeaderboardSize = 10

// ScoreStore defines persistence operations for the score collection.
type ScoreStore interface {
	// Add inserts a score record and returns it with its generated ID.
	Add(ctx context.Context, score Score) (Score, error)
	// Top returns at most limit records ordered by score descending.
	Top(ctx context.Context, limit int) ([]Score, error)
	// ListOrdered returns the whole collection ordered by score descending.
	ListOrdered(ctx context.Context) ([]Score, error)
	// DeleteBatch removes all given records in one atomic batch.
	// Absent IDs are ignored.
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
}

// Score is a single leaderboard submission.
type Score struct {
	ID         uuid.UUID
	UserID     uuid.UUID // uuid.Nil when submitted anonymously
	PlayerName string
	Value      float64
	Timestamp  time.Time
}

// SubmitScoreParams contains a score submission as received from a client.
type SubmitScoreParams struct {
	PlayerName string
	Value      float64
	UserID     uuid.UUID
}

// ScoreOp names the kind of write that produced a ScoreChange.
type ScoreOp string

const (
	ScoreOpInsert ScoreOp = "INSERT"
	ScoreOpUpdate ScoreOp = "UPDATE"
	ScoreOpDelete ScoreOp = "DELETE"
)

// ScoreChange describes the post-write state of one score document.
// Exists is false for tombstones.
type ScoreChange struct {
	ID     uuid.UUID
	Op     ScoreOp
	Exists bool
}

// ScoreChangeFeed delivers a ScoreChange after every write to the score collection.
// The channel is closed when ctx is done or the feed fails permanently.
type ScoreChangeFeed interface {
	Changes(ctx context.Context) (<-chan ScoreChange, error)
}

// LessScore orders records by score descending, then by earlier timestamp,
// then by ID so that every reader observes the same ranking.
func LessScore(a, b Score) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.ID.String() < b.ID.String()
}
