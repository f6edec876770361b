// Package router wires the public HTTP API.
package router

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dtroode/spacegame-server/internal/api/http/handler"
	"github.com/dtroode/spacegame-server/internal/api/http/middleware"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// Router holds the dependencies of the public API.
type Router struct {
	scores     handler.ScoreService
	auth       handler.Authenticator
	store      handler.Pinger
	assets     model.AssetStorage
	corsOrigin string
	logger     *logger.Logger
}

// New creates a Router. assets may be nil when no game client is published;
// the /game/ routes are then not registered.
func New(
	scores handler.ScoreService,
	auth handler.Authenticator,
	store handler.Pinger,
	assets model.AssetStorage,
	corsOrigin string,
	logger *logger.Logger,
) *Router {
	return &Router{
		scores:     scores,
		auth:       auth,
		store:      store,
		assets:     assets,
		corsOrigin: corsOrigin,
		logger:     logger,
	}
}

// Register builds the handler tree: routes, then CORS, logging and tracing.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	scores := handler.NewScores(r.scores, r.auth, r.logger)
	mux.HandleFunc("GET /api/scores", scores.List)
	mux.HandleFunc("POST /api/scores", scores.Submit)

	status := handler.NewStatus(r.store, r.logger)
	mux.HandleFunc("GET /{$}", status.Root)
	mux.HandleFunc("GET /healthz", status.Health)

	if r.assets != nil {
		game := handler.NewGame(r.assets, r.logger)
		mux.HandleFunc("GET /game/{path...}", game.Serve)
	}

	var h http.Handler = mux
	h = middleware.NewCORS(r.corsOrigin).Handle(h)
	h = middleware.NewLogging(r.logger).Handle(h)

	return otelhttp.NewHandler(h, "spacegame.http",
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			return req.Method + " " + req.URL.Path
		}),
	)
}
