package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/provider/plpl"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"github.com/ogurasousui/codex-workforce-synth/internal/platform/config"
	"github.com/ogurasousui/codex-workforce-synth/internal/platform/logger"
	"github.com/ogurasousui/codex-workforce-synth/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.EffectivePath(""))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slogger, err := logger.Setup(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	gen := workforce.NewGenerator(plpl.Factory, nil)
	svc := workforce.NewService(gen, nil, nil).WithLogger(slogger)
	defaults := handler.ReportDefaults{
		Count:    cfg.Generation.Count,
		Seed:     cfg.Generation.SeedUsed,
		AsOf:     cfg.Generation.AsOf,
		MaxCount: cfg.Generation.MaxCount,
	}
	grpcServer := server.New(cfg.Server.ListenAddr, svc, defaults, slogger)

	if err := grpcServer.Run(ctx); err != nil {
		slogger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
