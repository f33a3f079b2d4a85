package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WebhookMetrics records metadata for skill webhook traffic.
type WebhookMetrics struct {
	duration *prometheus.HistogramVec
	replies  *prometheus.CounterVec
	limited  prometheus.Counter
}

// NewWebhookMetrics registers the webhook metrics on the provided registerer.
func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		return &WebhookMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "webhook_duration_seconds",
		Help:    "Duration of skill webhook handling in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	replies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_replies_total",
		Help: "Replies sent back to the chat channel, by reply kind.",
	}, []string{"kind"})
	limited := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_rate_limited_total",
		Help: "Utterances rejected by the per-player rate limit.",
	})
	reg.MustRegister(duration, replies, limited)
	return &WebhookMetrics{
		duration: duration,
		replies:  replies,
		limited:  limited,
	}
}

// ObserveDuration records how long one utterance took to handle.
func (w *WebhookMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if w == nil || w.duration == nil {
		return
	}
	w.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncReply increments the reply counter for the given reply kind.
func (w *WebhookMetrics) IncReply(kind string) {
	if w == nil || w.replies == nil {
		return
	}
	w.replies.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncRateLimited increments the rejected-utterance counter.
func (w *WebhookMetrics) IncRateLimited() {
	if w == nil || w.limited == nil {
		return
	}
	w.limited.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
