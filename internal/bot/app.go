package bot

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"k8s.io/utils/clock"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/cache"
	"github.com/Sigi3012/Midnight/internal/config"
	handlerhttp "github.com/Sigi3012/Midnight/internal/handler/http"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/metrics"
	"github.com/Sigi3012/Midnight/internal/notify"
	"github.com/Sigi3012/Midnight/internal/server"
	"github.com/Sigi3012/Midnight/internal/service"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/internal/workers"
	"github.com/Sigi3012/Midnight/models"
)

// App is the application context of the bot. Everything with a lifetime
// is created here and run by Run.
type App struct {
	db       *store.DB
	discord  *adapter.DiscordClient
	services *service.Services
	workers  *workers.Workers

	registerCommands bool
	logger           *logger.Logger
}

// NewApp connects to the store, applies migrations and builds every
// component from cfg.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	var publicKey ed25519.PublicKey
	if cfg.Discord.PublicKey != "" {
		key, err := handlerhttp.ParsePublicKey(cfg.Discord.PublicKey)
		if err != nil {
			return nil, err
		}
		publicKey = key
	} else {
		log.Warn().Str("func", "NewApp").Msg("no Discord public key configured, interactions will be rejected")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	clk := clock.RealClock{}

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	storages := store.NewStorages(db, log)

	tokens := adapter.NewTokenManager(cfg.Osu, clk, m, log)
	osu := adapter.NewOsuClient(cfg.Osu, tokens, m, log)
	discord := adapter.NewDiscordClient(cfg.Discord, log)

	caches := cache.NewCaches(storages.Channels, log)
	registry := notify.NewRegistry(discord, clk, m, log)

	var dispatcher *notify.Dispatcher
	services := service.NewServices(storages, osu, caches, func(subscriptions *service.SubscriptionService) service.FeedNotifier {
		dispatcher = notify.NewDispatcher(discord, caches, registry, subscriptions, cfg.Workers.ButtonTimeout, clk, m, log)
		return dispatcher
	}, log)

	handler := handlerhttp.NewHandler(handlerhttp.Dependencies{
		Subscriptions: services.Subscriptions,
		Components:    registry,
		Showcaser:     dispatcher,
		Followups:     discord,
		Health:        db,
		Gatherer:      reg,
		PublicKey:     publicKey,
		Deadline:      cfg.Server.InteractionDeadline,
		Clock:         clk,
		BuildInfo:     buildInfo,
	}, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	w := cfg.Workers
	return &App{
		db:       db,
		discord:  discord,
		services: services,
		workers: workers.NewWorkers(
			tokens,
			workers.NewLoop(services.Mapfeed, w.MapfeedInterval, w.ErrorBackoff, clk, m, log),
			workers.NewLoop(services.Groups, w.GroupInterval, w.ErrorBackoff, clk, m, log),
			registry,
			srv,
		),
		registerCommands: cfg.Discord.RegisterCommands,
		logger:           log,
	}, nil
}

// Run registers the slash commands when configured to and runs every
// worker until ctx is done. The store is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if a.registerCommands {
		if err := a.discord.RegisterCommands(ctx, handlerhttp.CommandDefinitions()); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error registering slash commands")
		}
	}

	a.logger.Info().Str("func", "*App.Run").Msg("bot started")
	if err := a.workers.Run(ctx); err != nil {
		return err
	}
	a.logger.Info().Str("func", "*App.Run").Msg("bot stopped")

	return nil
}
