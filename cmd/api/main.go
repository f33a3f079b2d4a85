package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minsukang/idlequest-backend/api/routes"
	"github.com/minsukang/idlequest-backend/internal/game"
	"github.com/minsukang/idlequest-backend/internal/players"
	"github.com/minsukang/idlequest-backend/internal/progression"
	"github.com/minsukang/idlequest-backend/pkg/config"
	"github.com/minsukang/idlequest-backend/pkg/db"
	"github.com/minsukang/idlequest-backend/pkg/keylock"
	"github.com/minsukang/idlequest-backend/pkg/logger"
	"github.com/minsukang/idlequest-backend/pkg/metrics"
	"github.com/minsukang/idlequest-backend/pkg/migrate"
	"github.com/minsukang/idlequest-backend/pkg/redis"
	"github.com/minsukang/idlequest-backend/pkg/rng"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	source, err := rng.New(cfg.Game.RandomSeed)
	if err != nil {
		logg.Error(context.Background(), "failed to seed game rng", err)
		os.Exit(1)
	}

	engine, err := progression.NewEngine(source)
	if err != nil {
		logg.Error(context.Background(), "failed to create progression engine", err)
		os.Exit(1)
	}

	catalog, err := game.LoadCatalog(cfg.Messages.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to load message catalog", err)
		os.Exit(1)
	}

	gameService, err := game.NewService(game.ServiceParams{
		Store:   players.NewRepository(dbClient.DB()),
		Engine:  engine,
		Locks:   keylock.New(),
		Catalog: catalog,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create game service", err)
		os.Exit(1)
	}

	webhookMetrics := metrics.NewWebhookMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, gameService, webhookMetrics),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
