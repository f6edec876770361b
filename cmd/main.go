package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/spacegame-server/internal/api/grpc/context"
	grpcRouter "github.com/dtroode/spacegame-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/spacegame-server/internal/api/grpc/server"
	httpRouter "github.com/dtroode/spacegame-server/internal/api/http/router"
	httpServer "github.com/dtroode/spacegame-server/internal/api/http/server"
	"github.com/dtroode/spacegame-server/internal/config"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
	"github.com/dtroode/spacegame-server/internal/platform/otel"
	"github.com/dtroode/spacegame-server/internal/repository/memory"
	"github.com/dtroode/spacegame-server/internal/repository/postgres"
	"github.com/dtroode/spacegame-server/internal/server"
	"github.com/dtroode/spacegame-server/internal/service"
	storage "github.com/dtroode/spacegame-server/internal/storage/minio"
	"github.com/dtroode/spacegame-server/internal/token"
	"github.com/dtroode/spacegame-server/internal/trigger"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const scoreFeedBuffer = 256

// stores groups the persistence ports of one driver.
type stores struct {
	scores        model.ScoreStore
	profiles      model.ProfileStore
	accounts      model.AccountStore
	identities    model.IdentityStore
	refreshTokens model.RefreshTokenStore
	feed          model.ScoreChangeFeed
	pinger        interface{ Ping(context.Context) error }
	close         func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	logAppVersion()

	shutdownTracing, err := otel.Setup(ctx, cfg.Otel.Endpoint, cfg.Otel.ServiceName)
	if err != nil {
		logger.Fatal("failed to initialize tracing", "error", err)
	}

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.StoreDriver)
	}
	defer st.close()

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := service.NewTokenService(tokenManager, st.refreshTokens, cfg.JWT.RefreshTTL, logger)
	identityService := service.NewIdentity(st.identities, st.profiles, tokenService, logger)
	profileService := service.NewProfiles(st.profiles, st.identities, logger)
	accountService := service.NewAccount(st.profiles, st.accounts, identityService, cfg.Eraser.ChunkSize, cfg.Eraser.RevokeAttempts, logger)
	scoreService := service.NewScores(st.scores, cfg.Leaderboard.Size, logger)
	leaderboard := service.NewLeaderboard(st.scores, cfg.Leaderboard.Size, logger)

	var assets model.AssetStorage
	if cfg.Storage.Enabled {
		client, err := storage.New(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		assets = client
	}

	httpHandler := httpRouter.New(scoreService, identityService, st.pinger, assets, cfg.HTTP.CORSOrigin, logger).Register()
	apiServer := httpServer.NewHTTPServer(httpHandler, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout)

	launcherServer := registerGRPCServer(logger, identityService, profileService, accountService, fmt.Sprintf(":%s", cfg.GRPC.Port))

	runner := trigger.NewRunner(st.feed, leaderboard, cfg.Trigger.Workers, logger)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := runner.Run(ctx); err != nil {
			logger.Error("leaderboard trimmer stopped", "error", err)
			stop()
		}
	}()

	servers := []struct {
		srv model.Server
		sl  model.SecurityLayer
	}{
		{apiServer, server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)},
		{launcherServer, server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)},
	}

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.srv, s.sl)
	}

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.srv.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.srv.Address())
		}
	}

	wg.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		db := memory.NewDB()
		logger.Warn("using in-memory store, data is lost on restart")
		return stores{
			scores:        memory.NewScoreRepository(db),
			profiles:      memory.NewProfileRepository(db),
			accounts:      memory.NewAccountRepository(db),
			identities:    memory.NewIdentityRepository(db),
			refreshTokens: memory.NewRefreshTokenRepository(db),
			feed:          db,
			pinger:        db,
			close:         func() { _ = db.Close() },
		}, nil
	default:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return stores{}, err
		}
		return stores{
			scores:        postgres.NewScoreRepository(db),
			profiles:      postgres.NewProfileRepository(db),
			accounts:      postgres.NewAccountRepository(db),
			identities:    postgres.NewIdentityRepository(db),
			refreshTokens: postgres.NewRefreshTokenRepository(db),
			feed:          postgres.NewScoreFeed(cfg.Database.DSN, scoreFeedBuffer, logger),
			pinger:        db,
			close:         func() { _ = db.Close() },
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	identity *service.Identity,
	profiles *service.Profiles,
	accounts *service.Account,
	addr string,
) *grpcServer.GRPCServer {
	r := grpcRouter.New(identity, profiles, accounts, identity, grpcctx.NewManager(), logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
