package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/minsukang/idlequest-backend/api/responses"
	"github.com/minsukang/idlequest-backend/pkg/config"
	pkgerrors "github.com/minsukang/idlequest-backend/pkg/errors"
	"github.com/minsukang/idlequest-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// pinger is the connectivity probe shared by the database and redis clients.
type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-IdleQuest-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every backing dependency answers a
// ping within the readiness timeout.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP pinger) http.HandlerFunc {
	deps := []struct {
		name  string
		probe pinger
	}{
		{"database", dbP},
		{"redis", redisP},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-IdleQuest-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for _, dep := range deps {
			if dep.probe == nil {
				continue
			}
			if err := dep.probe.Ping(ctx); err != nil {
				wrapped := pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependency unavailable").
					WithDetails(map[string]string{"dependency": dep.name})
				responses.WriteError(r.Context(), logg, w, wrapped)
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
