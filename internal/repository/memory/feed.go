package memory

import (
	"context"
	"sync"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.ScoreChangeFeed = (*DB)(nil)

// subscriber buffers events without bound so that writers never block on a
// slow consumer, including consumers that write back to the store.
type subscriber struct {
	mu      sync.Mutex
	pending []model.ScoreChange
	wake    chan struct{}
}

func (s *subscriber) push(changes []model.ScoreChange) {
	s.mu.Lock()
	s.pending = append(s.pending, changes...)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) drain() []model.ScoreChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.pending
	s.pending = nil
	return out
}

func (db *DB) Changes(ctx context.Context) (<-chan model.ScoreChange, error) {
	sub := &subscriber{wake: make(chan struct{}, 1)}

	db.subMu.Lock()
	db.subscribers[sub] = struct{}{}
	db.subMu.Unlock()

	out := make(chan model.ScoreChange)
	go func() {
		defer close(out)
		defer func() {
			db.subMu.Lock()
			delete(db.subscribers, sub)
			db.subMu.Unlock()
		}()

		for {
			for _, change := range sub.drain() {
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-sub.wake:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (db *DB) publish(changes ...model.ScoreChange) {
	if len(changes) == 0 {
		return
	}

	db.subMu.Lock()
	defer db.subMu.Unlock()

	for sub := range db.subscribers {
		sub.push(changes)
	}
}
