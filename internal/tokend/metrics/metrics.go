// Package metrics holds the Prometheus collectors of tokend. They register
// with the default registry and are served by promhttp at /metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/asyncx"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tokend"

// Operation labels of TokensIssued.
const (
	OperationCreate  = "create"
	OperationRefresh = "refresh"
)

// Check labels of CheckDuration.
const (
	CheckAppSecret  = "app_secret"
	CheckUserSecret = "user_secret"
	CheckSession    = "session"
)

var (
	TokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Token pairs minted, by operation.",
	}, []string{"operation"})

	TokenDecodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_decodes_total",
		Help:      "Access token decode attempts, by result.",
	}, []string{"result"})

	TokenRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Refresh grant attempts, by result.",
	}, []string{"result"})

	CheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collaborator_check_seconds",
		Help:      "Latency of the registry lookups behind token checks.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"check"})

	SessionsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_purged_total",
		Help:      "Expired sessions removed by housekeeping.",
	})
)

// Result maps the outcome of a decode or refresh to a low-cardinality label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, oauthtoken.ErrExpiredToken):
		return "expired"
	case errors.Is(err, oauthtoken.ErrInvalidTokenType):
		return "invalid_type"
	case errors.Is(err, oauthtoken.ErrInvalidToken):
		return "invalid"
	case errors.Is(err, tokenx.ErrInvalidSignature):
		return "bad_signature"
	case errors.Is(err, tokenx.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, oauthtoken.ErrAppSecretInvalid):
		return "app_secret"
	case errors.Is(err, oauthtoken.ErrUserSecretInvalid):
		return "user_secret"
	case errors.Is(err, oauthtoken.ErrSessionInvalid):
		return "session"
	case errors.Is(err, asyncx.ErrPanic):
		return "panic"
	default:
		return "error"
	}
}

// ObserveCheck records the time since start under check.
func ObserveCheck(check string, start time.Time) {
	CheckDuration.WithLabelValues(check).Observe(time.Since(start).Seconds())
}
