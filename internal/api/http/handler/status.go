package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/spacegame-server/internal/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	store   Pinger
	timeout time.Duration
	logger  *logger.Logger
}

func NewStatus(store Pinger, logger *logger.Logger) *Status {
	return &Status{
		store:   store,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

func (h *Status) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "Space Game Backend is Running",
	})
}

func (h *Status) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("HTTP handler: health check failed",
			"error", err.Error())
		writeJSON(w, h.logger, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
