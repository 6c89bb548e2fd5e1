package http

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vocabachkhoa/api/internal/metrics"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Services
	AuthService       AuthService
	VocabularyService VocabularyService

	// Database is pinged by /health; nil reports "not configured".
	Database Pinger

	Logger *slog.Logger

	// Metrics; a nil Gatherer leaves /metrics unregistered.
	Recorder        metrics.Recorder
	MetricsGatherer prometheus.Gatherer

	// Prefix is the mount path of the auth and vocabulary routes.
	Prefix         string
	AllowedOrigins []string

	// Application info
	Version string
}
