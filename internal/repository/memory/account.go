package memory

import (
	"context"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Erase(_ context.Context, params model.EraseParams) (model.EraseResult, error) {
	var result model.EraseResult

	r.db.mu.Lock()
	if _, ok := r.db.users[params.UserID]; ok {
		delete(r.db.users, params.UserID)
		result.ProfileDeleted = true
	}

	for handle, owner := range r.db.usernames {
		if owner != params.UserID {
			continue
		}
		delete(r.db.usernames, handle)
		result.ReservationDeleted = true
	}

	var changes []model.ScoreChange
	for id, s := range r.db.scores {
		if s.UserID != params.UserID {
			continue
		}
		delete(r.db.scores, id)
		changes = append(changes, model.ScoreChange{ID: id, Op: model.ScoreOpDelete})
	}
	result.ScoresDeleted = len(changes)
	r.db.mu.Unlock()

	r.db.publish(changes...)
	return result, nil
}
