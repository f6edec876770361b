package router

import (
	"context"
	"strings"

	"github.com/dtroode/spacegame-server/internal/api/grpc/handler"
	"github.com/dtroode/spacegame-server/internal/api/grpc/launcher"
	"github.com/dtroode/spacegame-server/internal/api/grpc/middleware"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// ProfileService combines the profile operations exposed to the launcher.
type ProfileService interface {
	handler.HandleChecker
	handler.ProfileService
}

// Router wires the launcher procedures and their middleware into a gRPC server.
type Router struct {
	authService    handler.AuthService
	profiles       ProfileService
	accounts       handler.AccountService
	authenticator  middleware.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	profiles ProfileService,
	accounts handler.AccountService,
	authenticator middleware.Authenticator,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		profiles:       profiles,
		accounts:       accounts,
		authenticator:  authenticator,
		contextManager: contextManager,
		logger:         logger,
	}
}

// authRequired matches every procedure of the Account service.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+launcher.AccountServiceName+"/")
}

// Register builds the gRPC server with logging, panic recovery, tracing and
// authentication for the Account service.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovering := middleware.NewRecovery(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)

	serverOpts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(recovering.HandlePanic)),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	}
	serverOpts = append(serverOpts, opts...)

	s := grpc.NewServer(serverOpts...)
	r.registerAuthRoutes(s)
	r.registerAccountRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.profiles, r.logger)
	launcher.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerAccountRoutes(server *grpc.Server) {
	accountHandler := handler.NewAccount(r.profiles, r.accounts, r.contextManager, r.logger)
	launcher.RegisterAccountServer(server, accountHandler)
}
