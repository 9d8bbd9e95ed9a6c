package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// HealthChecker reports whether a dependency such as the database is
// reachable. *store.DB satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	sessions *sessionCookies
	traceIDs *utils.UUIDGenerator

	health         HealthChecker
	metrics        *metrics.Metrics
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional collaborators of a Handler.
type Option func(*Handler)

// WithHealthChecker makes /healthz report the state of checker.
func WithHealthChecker(checker HealthChecker) Option {
	return func(h *Handler) { h.health = checker }
}

// WithMetrics instruments every request and exposes /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithRequestTimeout bounds the handling of a single request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) { h.requestTimeout = timeout }
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		sessions: newSessionCookies(cfg),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
