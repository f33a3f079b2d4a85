package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minsukang/idlequest-backend/api/controllers"
	"github.com/minsukang/idlequest-backend/api/middleware"
	"github.com/minsukang/idlequest-backend/internal/game"
	"github.com/minsukang/idlequest-backend/pkg/config"
	"github.com/minsukang/idlequest-backend/pkg/db"
	"github.com/minsukang/idlequest-backend/pkg/logger"
	"github.com/minsukang/idlequest-backend/pkg/metrics"
	"github.com/minsukang/idlequest-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gameService game.Service,
	webhookMetrics *metrics.WebhookMetrics,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	messagePolicy := middleware.NewMessageRateLimitPolicy(
		cfg.RateLimit.Window,
		cfg.RateLimit.MessagesPerUser,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.With(middleware.MessageRateLimit(messagePolicy, redisClient, logg, webhookMetrics)).
		Post("/webhook", controllers.SkillWebhook(gameService, logg, webhookMetrics))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
