package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.ScoreStore = (*ScoreRepository)(nil)

// rankOrder must stay in sync with model.LessScore.
const rankOrder = `ORDER BY score DESC, "timestamp" ASC, id ASC`

type ScoreRepository struct {
	db *Connection
}

func NewScoreRepository(db *Connection) *ScoreRepository {
	return &ScoreRepository{
		db: db,
	}
}

func (r *ScoreRepository) Add(ctx context.Context, score model.Score) (model.Score, error) {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}

	query := `INSERT INTO scores (id, uid, player_name, score, "timestamp")
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, uid, player_name, score, "timestamp"`

	saved, err := scanScore(r.db.QueryRow(ctx, query,
		score.ID, nullableUUID(score.UserID), score.PlayerName, score.Value, score.Timestamp,
	))
	if err != nil {
		return model.Score{}, fmt.Errorf("failed to insert score: %w", err)
	}

	return saved, nil
}

func (r *ScoreRepository) Top(ctx context.Context, limit int) ([]model.Score, error) {
	query := `SELECT id, uid, player_name, score, "timestamp" FROM scores ` + rankOrder + ` LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}

	return collectScores(rows)
}

func (r *ScoreRepository) ListOrdered(ctx context.Context) ([]model.Score, error) {
	query := `SELECT id, uid, player_name, score, "timestamp" FROM scores ` + rankOrder

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}

	return collectScores(rows)
}

// DeleteBatch removes ids with a single statement, which postgres applies atomically.
func (r *ScoreRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	const query = `DELETE FROM scores WHERE id = ANY($1::uuid[])`
	if _, err := r.db.Exec(ctx, query, uuidStrings(ids)); err != nil {
		return fmt.Errorf("failed to delete scores: %w", err)
	}
	return nil
}

func scanScore(row pgx.Row) (model.Score, error) {
	var s model.Score
	var uid *uuid.UUID
	if err := row.Scan(&s.ID, &uid, &s.PlayerName, &s.Value, &s.Timestamp); err != nil {
		return model.Score{}, err
	}
	if uid != nil {
		s.UserID = *uid
	}
	return s, nil
}

func collectScores(rows pgx.Rows) ([]model.Score, error) {
	defer rows.Close()

	scores := make([]model.Score, 0)
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}
	return scores, nil
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
