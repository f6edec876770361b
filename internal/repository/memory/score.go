package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.ScoreStore = (*ScoreRepository)(nil)

type ScoreRepository struct {
	db *DB
}

func NewScoreRepository(db *DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Add(_ context.Context, score model.Score) (model.Score, error) {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}

	r.db.mu.Lock()
	_, existed := r.db.scores[score.ID]
	r.db.scores[score.ID] = score
	r.db.mu.Unlock()

	op := model.ScoreOpInsert
	if existed {
		op = model.ScoreOpUpdate
	}
	r.db.publish(model.ScoreChange{ID: score.ID, Op: op, Exists: true})

	return score, nil
}

func (r *ScoreRepository) Top(ctx context.Context, limit int) ([]model.Score, error) {
	scores, err := r.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (r *ScoreRepository) ListOrdered(context.Context) ([]model.Score, error) {
	r.db.mu.Lock()
	scores := make([]model.Score, 0, len(r.db.scores))
	for _, s := range r.db.scores {
		scores = append(scores, s)
	}
	r.db.mu.Unlock()

	sort.Slice(scores, func(i, j int) bool {
		return model.LessScore(scores[i], scores[j])
	})
	return scores, nil
}

func (r *ScoreRepository) DeleteBatch(_ context.Context, ids []uuid.UUID) error {
	r.db.mu.Lock()
	changes := make([]model.ScoreChange, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.db.scores[id]; !ok {
			continue
		}
		delete(r.db.scores, id)
		changes = append(changes, model.ScoreChange{ID: id, Op: model.ScoreOpDelete})
	}
	r.db.mu.Unlock()

	r.db.publish(changes...)
	return nil
}
