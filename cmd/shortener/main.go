package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/shorturl/internal/app"
	"github.com/InQaaaaGit/shorturl/internal/buildinfo"
	"github.com/InQaaaaGit/shorturl/internal/config"
	"github.com/InQaaaaGit/shorturl/internal/server"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		log.Fatalf("Ошибка запуска сервиса: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger, cleanup, err := server.InitLogger(cfg.IsProduction())
	if err != nil {
		return err
	}
	defer cleanup()

	buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Log(logger)

	return app.NewApp(cfg, logger).Run(ctx)
}
