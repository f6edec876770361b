// Command publishgame uploads a built game client to the bucket the server
// serves /game/ from.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/spacegame-server/internal/api/http/handler"
	"github.com/dtroode/spacegame-server/internal/config"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/publish"
	storage "github.com/dtroode/spacegame-server/internal/storage/minio"
)

func main() {
	dir := flag.String("dir", "dist", "directory holding the built game client")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stderr, cfg.LogLevel, cfg.LogFormat)

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

	n, err := publish.NewPublisher(client, handler.GamePrefix, logger).Dir(ctx, os.DirFS(*dir))
	if err != nil {
		logger.Fatal("failed to publish game client", "error", err, "dir", *dir, "uploaded", n)
	}
}
