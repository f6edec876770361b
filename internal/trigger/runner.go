// Package trigger runs reactive handlers for writes to the score collection.
package trigger

import (
	"context"
	"fmt"
	"sync"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// ScoreWriteHandler reacts to a single score write. It owns its error handling.
type ScoreWriteHandler interface {
	OnScoreWrite(ctx context.Context, change model.ScoreChange)
}

// Runner delivers every change from a feed to a handler using a bounded
// number of concurrent invocations. Invocations are independent: ordering
// between them is not guaranteed.
type Runner struct {
	feed    model.ScoreChangeFeed
	handler ScoreWriteHandler
	workers int
	logger  *logger.Logger
}

func NewRunner(feed model.ScoreChangeFeed, handler ScoreWriteHandler, workers int, logger *logger.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		feed:    feed,
		handler: handler,
		workers: workers,
		logger:  logger,
	}
}

// Run blocks until ctx is done or the feed closes, then waits for in-flight
// invocations to return.
func (r *Runner) Run(ctx context.Context) error {
	changes, err := r.feed.Changes(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to score writes: %w", err)
	}

	r.logger.Info("Trigger runner: started", "workers", r.workers)

	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Trigger runner: stopping")
			return nil
		case change, ok := <-changes:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("score write feed closed")
			}

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return nil
			}

			wg.Add(1)
			go func(change model.ScoreChange) {
				defer wg.Done()
				defer func() { <-sem }()
				defer func() {
					if p := recover(); p != nil {
						r.logger.Error("Trigger runner: handler panicked",
							"score_id", change.ID,
							"panic", fmt.Sprint(p))
					}
				}()

				r.handler.OnScoreWrite(ctx, change)
			}(change)
		}
	}
}
