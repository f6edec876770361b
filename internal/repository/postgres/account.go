package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// Erase removes the profile, the reservation and every owned score in one
// transaction. Scores are deleted in chunks of params.ChunkSize.
func (r *AccountRepository) Erase(ctx context.Context, params model.EraseParams) (model.EraseResult, error) {
	chunkSize := params.ChunkSize
	if chunkSize <= 0 {
		chunkSize = model.DefaultEraseChunkSize
	}

	var result model.EraseResult
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		result = model.EraseResult{}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, params.UserID)
		if err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		result.ProfileDeleted = tag.RowsAffected() > 0

		// Keyed by owner so a handle changed after the caller read the
		// profile is still released.
		tag, err = tx.Exec(ctx, `DELETE FROM usernames WHERE uid = $1`, params.UserID)
		if err != nil {
			return fmt.Errorf("failed to delete handle reservation: %w", err)
		}
		result.ReservationDeleted = tag.RowsAffected() > 0

		ids, err := ownedScoreIDs(ctx, tx, params.UserID)
		if err != nil {
			return err
		}

		for start := 0; start < len(ids); start += chunkSize {
			end := min(start+chunkSize, len(ids))
			tag, err := tx.Exec(ctx, `DELETE FROM scores WHERE id = ANY($1::uuid[])`, uuidStrings(ids[start:end]))
			if err != nil {
				return fmt.Errorf("failed to delete scores: %w", err)
			}
			result.ScoresDeleted += int(tag.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return model.EraseResult{}, err
	}

	return result, nil
}

func ownedScoreIDs(ctx context.Context, tx pgx.Tx, uid uuid.UUID) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM scores WHERE uid = $1 FOR UPDATE`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to query owned scores: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan score id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate owned scores: %w", err)
	}
	return ids, nil
}
