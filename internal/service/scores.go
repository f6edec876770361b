package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// Scores serves the public leaderboard read and write paths.
type Scores struct {
	store  model.ScoreStore
	limit  int
	logger *logger.Logger
	now    func() time.Time
}

func NewScores(store model.ScoreStore, limit int, logger *logger.Logger) *Scores {
	return &Scores{
		store:  store,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Top returns at most limit scores, best first.
func (s *Scores) Top(ctx context.Context) ([]model.Score, error) {
	scores, err := s.store.Top(ctx, s.limit)
	if err != nil {
		s.logger.Error("Scores service: failed to read leaderboard",
			"error", err.Error())
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return scores, nil
}

// Submit validates and stores a new score stamped with the server time.
// The leaderboard may briefly exceed its size until the trimmer runs.
func (s *Scores) Submit(ctx context.Context, params model.SubmitScoreParams) (model.Score, error) {
	if err := validateSubmission(params); err != nil {
		s.logger.Debug("Scores service: rejected submission",
			"player_name", params.PlayerName,
			"error", err.Error())
		return model.Score{}, err
	}

	saved, err := s.store.Add(ctx, model.Score{
		UserID:     params.UserID,
		PlayerName: params.PlayerName,
		Value:      params.Value,
		Timestamp:  s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("Scores service: failed to save score",
			"player_name", params.PlayerName,
			"error", err.Error())
		return model.Score{}, fmt.Errorf("failed to save score: %w", err)
	}

	s.logger.Info("Scores service: score submitted",
		"score_id", saved.ID,
		"player_name", saved.PlayerName,
		"score", saved.Value)

	return saved, nil
}

func validateSubmission(params model.SubmitScoreParams) error {
	if strings.TrimSpace(params.PlayerName) == "" {
		return model.NewValidationError("playerName", "required")
	}
	if math.IsNaN(params.Value) || math.IsInf(params.Value, 0) {
		return model.NewValidationError("score", "must be a finite number")
	}
	return nil
}
