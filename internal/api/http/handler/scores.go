package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

const (
	msgInvalidScore  = "Invalid data, playerName and score required"
	msgScoreSaved    = "Score saved"
	msgReadFailed    = "Error retrieving scores"
	msgSaveFailed    = "Error saving score"
	maxScoreBodySize = 64 << 10
)

// ScoreService is the leaderboard behind the public API.
type ScoreService interface {
	Top(ctx context.Context) ([]model.Score, error)
	Submit(ctx context.Context, params model.SubmitScoreParams) (model.Score, error)
}

// Authenticator resolves a bearer token to the caller's identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// Scores serves GET and POST /api/scores.
type Scores struct {
	service ScoreService
	auth    Authenticator
	logger  *logger.Logger
}

// NewScores creates the scores handler. auth may be nil, in which case every
// submission is stored without an owner.
func NewScores(service ScoreService, auth Authenticator, logger *logger.Logger) *Scores {
	return &Scores{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

type scoreResponse struct {
	PlayerName string    `json:"playerName"`
	Score      float64   `json:"score"`
	Timestamp  time.Time `json:"timestamp"`
}

type submitScoreRequest struct {
	PlayerName any `json:"playerName"`
	Score      any `json:"score"`
}

func (h *Scores) List(w http.ResponseWriter, r *http.Request) {
	scores, err := h.service.Top(r.Context())
	if err != nil {
		writeText(w, http.StatusInternalServerError, msgReadFailed)
		return
	}

	resp := make([]scoreResponse, 0, len(scores))
	for _, s := range scores {
		resp = append(resp, scoreResponse{
			PlayerName: s.PlayerName,
			Score:      s.Value,
			Timestamp:  s.Timestamp,
		})
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *Scores) Submit(w http.ResponseWriter, r *http.Request) {
	params, err := decodeSubmission(http.MaxBytesReader(w, r.Body, maxScoreBodySize))
	if err != nil {
		h.logger.Debug("HTTP handler: invalid score submission",
			"error", err.Error())
		writeText(w, http.StatusBadRequest, msgInvalidScore)
		return
	}

	params.UserID = h.caller(r)

	if _, err := h.service.Submit(r.Context(), params); err != nil {
		if model.IsValidation(err) {
			writeText(w, http.StatusBadRequest, msgInvalidScore)
			return
		}
		writeText(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	writeText(w, http.StatusCreated, msgScoreSaved)
}

// caller returns the owner for a submission. The endpoint is public, so an
// absent or invalid token only means the score has no owner.
func (h *Scores) caller(r *http.Request) uuid.UUID {
	if h.auth == nil {
		return uuid.Nil
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return uuid.Nil
	}

	uid, err := h.auth.Authenticate(r.Context(), token)
	if err != nil {
		h.logger.Debug("HTTP handler: ignoring invalid bearer token",
			"error", err.Error())
		return uuid.Nil
	}
	return uid
}

func decodeSubmission(body io.Reader) (model.SubmitScoreParams, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var req submitScoreRequest
	if err := dec.Decode(&req); err != nil {
		return model.SubmitScoreParams{}, fmt.Errorf("failed to decode body: %w", err)
	}

	name, ok := req.PlayerName.(string)
	if !ok || name == "" {
		return model.SubmitScoreParams{}, model.NewValidationError("playerName", "required")
	}

	value, err := coerceScore(req.Score)
	if err != nil {
		return model.SubmitScoreParams{}, err
	}

	return model.SubmitScoreParams{PlayerName: name, Value: value}, nil
}

// coerceScore accepts a JSON number or a numeric string. null counts as absent.
func coerceScore(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, model.NewValidationError("score", "required")
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, model.NewValidationError("score", "not a number")
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, model.NewValidationError("score", "out of range")
			}
			return 0, model.NewValidationError("score", "not a number")
		}
		return f, nil
	default:
		return 0, model.NewValidationError("score", "not a number")
	}
}
