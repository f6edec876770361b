package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/spacegame-server/internal/logger"
)

func writeJSON(w http.ResponseWriter, logger *logger.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("HTTP handler: failed to encode response",
			"error", err.Error())
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
