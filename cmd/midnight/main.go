package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Sigi3012/Midnight/internal/bot"
	"github.com/Sigi3012/Midnight/internal/config"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("midnight")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.LogLevel) && cfg.LogLevel != "" {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := bot.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init bot error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot run error")
	}
}
