package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// ScoreWritesChannel is the NOTIFY channel populated by the scores trigger.
const ScoreWritesChannel = "score_writes"

var _ model.ScoreChangeFeed = (*ScoreFeed)(nil)

// ScoreFeed turns score_writes notifications into ScoreChange events.
// It holds a dedicated connection outside the pool because LISTEN is
// session state.
type ScoreFeed struct {
	dsn        string
	buffer     int
	logger     *logger.Logger
	newBackOff func() backoff.BackOff
}

func NewScoreFeed(dsn string, buffer int, logger *logger.Logger) *ScoreFeed {
	return &ScoreFeed{
		dsn:    dsn,
		buffer: buffer,
		logger: logger,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 10 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (f *ScoreFeed) Changes(ctx context.Context) (<-chan model.ScoreChange, error) {
	conn, err := f.listen(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan model.ScoreChange, f.buffer)
	go f.run(ctx, conn, out)

	return out, nil
}

func (f *ScoreFeed) listen(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, f.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect listener: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+ScoreWritesChannel); err != nil {
		conn.Close(context.Background()) //nolint:errcheck
		return nil, fmt.Errorf("failed to listen on %s: %w", ScoreWritesChannel, err)
	}

	return conn, nil
}

func (f *ScoreFeed) run(ctx context.Context, conn *pgx.Conn, out chan<- model.ScoreChange) {
	defer close(out)
	defer func() {
		if conn != nil {
			conn.Close(context.Background()) //nolint:errcheck
		}
	}()

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			f.logger.Warn("score feed: listener connection lost", "error", err)
			conn.Close(context.Background()) //nolint:errcheck
			conn, err = f.reconnect(ctx)
			if err != nil {
				f.logger.Error("score feed: giving up", "error", err)
				return
			}
			continue
		}

		change, err := decodeScoreChange(n.Payload)
		if err != nil {
			f.logger.Warn("score feed: skipping malformed notification", "payload", n.Payload, "error", err)
			continue
		}

		select {
		case out <- change:
		case <-ctx.Done():
			return
		}
	}
}

func (f *ScoreFeed) reconnect(ctx context.Context) (*pgx.Conn, error) {
	var conn *pgx.Conn
	op := func() error {
		c, err := f.listen(ctx)
		if err != nil {
			return err
		}
		conn = c
		return nil
	}

	notify := func(err error, next time.Duration) {
		f.logger.Warn("score feed: reconnect failed", "error", err, "retry_in", next)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(f.newBackOff(), ctx), notify); err != nil {
		return nil, err
	}

	f.logger.Info("score feed: listener reconnected")
	return conn, nil
}

type scoreNotification struct {
	ID string `json:"id"`
	Op string `json:"op"`
}

func decodeScoreChange(payload string) (model.ScoreChange, error) {
	var n scoreNotification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return model.ScoreChange{}, fmt.Errorf("failed to decode notification: %w", err)
	}

	id, err := uuid.Parse(n.ID)
	if err != nil {
		return model.ScoreChange{}, fmt.Errorf("failed to parse score id: %w", err)
	}

	op := model.ScoreOp(n.Op)
	switch op {
	case model.ScoreOpInsert, model.ScoreOpUpdate:
		return model.ScoreChange{ID: id, Op: op, Exists: true}, nil
	case model.ScoreOpDelete:
		return model.ScoreChange{ID: id, Op: op, Exists: false}, nil
	default:
		return model.ScoreChange{}, fmt.Errorf("unknown operation %q", n.Op)
	}
}
