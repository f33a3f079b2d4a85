package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/minsukang/idlequest-backend/api/responses"
	pkgerrors "github.com/minsukang/idlequest-backend/pkg/errors"
	"github.com/minsukang/idlequest-backend/pkg/logger"
	"github.com/minsukang/idlequest-backend/pkg/metrics"
)

type messageRateStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// MessageRateLimitPolicy defines the per-player throttle for the skill
// webhook. Messenger traffic all arrives from the platform's egress, so
// there is no per-IP scope; the player id inside the body is the only
// meaningful counter key.
type MessageRateLimitPolicy struct {
	window    time.Duration
	perPlayer int
}

// NewMessageRateLimitPolicy builds a policy with the supplied window and
// per-player message limit.
func NewMessageRateLimitPolicy(window time.Duration, perPlayer int) MessageRateLimitPolicy {
	return MessageRateLimitPolicy{
		window:    window,
		perPlayer: perPlayer,
	}
}

func (p MessageRateLimitPolicy) enabled() bool {
	return p.window > 0 && p.perPlayer > 0
}

// MessageRateLimit enforces a fixed-window message counter per player id.
// The limiter fails open on store errors: a lost throttle is cheaper than a
// dead bot.
func MessageRateLimit(policy MessageRateLimitPolicy, store messageRateStore, logg *logger.Logger, mx *metrics.WebhookMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			body, err := io.ReadAll(r.Body)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			playerID := extractPlayerID(body)
			if playerID == "" {
				// Malformed payloads fall through to the controller's 400.
				next.ServeHTTP(w, r)
				return
			}

			allowed, count, err := store.FixedWindowAllow(ctx, "msg:"+playerID, int64(policy.perPlayer), policy.window)
			if err != nil {
				if logg != nil {
					logCtx := logg.WithPlayerID(ctx, playerID)
					logCtx = logg.WithField(logCtx, "error", err.Error())
					logg.Warn(logCtx, "webhook.rate_limit.store_error")
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				mx.IncRateLimited()
				respondMessageLimited(ctx, logg, w, policy, playerID, count)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondMessageLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, policy MessageRateLimitPolicy, playerID string, count int64) {
	if logg != nil {
		logCtx := logg.WithPlayerID(ctx, playerID)
		logCtx = logg.WithFields(logCtx, map[string]any{
			"attempts":       count,
			"limit":          policy.perPlayer,
			"window_seconds": int(policy.window.Seconds()),
		})
		logg.Warn(logCtx, "webhook.rate_limit.blocked")
	}
	err := pkgerrors.New(pkgerrors.CodeRateLimit, "too many messages, slow down")
	responses.WriteError(ctx, nil, w, err)
}

func extractPlayerID(payload []byte) string {
	var body struct {
		UserRequest struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"userRequest"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.UserRequest.User.ID
}
