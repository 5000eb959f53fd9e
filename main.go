package main

import (
	"context"

	"gepe-server/internal/bootstrap"
	"gepe-server/internal/config"
	"gepe-server/internal/observability"
	"gepe-server/internal/server"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLoggerAtLevel(cfg.Server.LogLevel)
	ctx := context.Background()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		deps.Cleanup(ctx)
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "server exited with error", err)
	}
}
