package handler

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// GamePrefix is the object key prefix of the published game client.
const GamePrefix = "game/"

// Game serves the browser game client from object storage. The launcher
// hands signed-in players off to /game/index.html.
type Game struct {
	storage model.AssetStorage
	logger  *logger.Logger
}

func NewGame(storage model.AssetStorage, logger *logger.Logger) *Game {
	return &Game{
		storage: storage,
		logger:  logger,
	}
}

func (h *Game) Serve(w http.ResponseWriter, r *http.Request) {
	key, ok := assetKey(r.PathValue("path"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	asset, err := h.storage.Download(r.Context(), key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("HTTP handler: failed to load game asset",
			"key", key,
			"error", err.Error())
		writeText(w, http.StatusBadGateway, "Game client unavailable")
		return
	}
	defer asset.Body.Close()

	if asset.ETag != "" {
		w.Header().Set("ETag", asset.ETag)
		if match := r.Header.Get("If-None-Match"); match != "" && match == asset.ETag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	if asset.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, asset.Body); err != nil {
		h.logger.Warn("HTTP handler: game asset transfer interrupted",
			"key", key,
			"error", err.Error())
	}
}

// assetKey maps a request path to an object key. Directories resolve to
// their index.html; paths escaping the prefix are refused.
func assetKey(p string) (string, bool) {
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index.html"
	}

	clean := path.Clean("/" + p)
	if clean == "/" || strings.Contains(clean, "..") {
		return "", false
	}

	return GamePrefix + strings.TrimPrefix(clean, "/"), true
}
