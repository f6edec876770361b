package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// Leaderboard keeps the score collection at its configured size. It reacts to
// every write, so running it more than once for the same state is harmless.
type Leaderboard struct {
	store  model.ScoreStore
	size   int
	logger *logger.Logger
}

func NewLeaderboard(store model.ScoreStore, size int, logger *logger.Logger) *Leaderboard {
	return &Leaderboard{
		store:  store,
		size:   size,
		logger: logger,
	}
}

// OnScoreWrite trims the collection after a write. Failures are logged and
// swallowed; the next write retries the trim.
func (l *Leaderboard) OnScoreWrite(ctx context.Context, change model.ScoreChange) {
	if !change.Exists {
		return
	}

	deleted, err := l.Trim(ctx)
	if err != nil {
		l.logger.Error("Leaderboard service: failed to trim leaderboard",
			"score_id", change.ID,
			"error", err.Error())
		return
	}

	if deleted > 0 {
		l.logger.Info("Leaderboard service: trimmed leaderboard",
			"score_id", change.ID,
			"deleted", deleted)
	}
}

// Trim deletes every record ranked below the configured size in one batch
// and returns how many were removed.
func (l *Leaderboard) Trim(ctx context.Context) (int, error) {
	scores, err := l.store.ListOrdered(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list scores: %w", err)
	}

	if len(scores) <= l.size {
		return 0, nil
	}

	excess := scores[l.size:]
	ids := make([]uuid.UUID, len(excess))
	for i, s := range excess {
		ids[i] = s.ID
	}

	if err := l.store.DeleteBatch(ctx, ids); err != nil {
		return 0, fmt.Errorf("failed to delete excess scores: %w", err)
	}

	return len(ids), nil
}
