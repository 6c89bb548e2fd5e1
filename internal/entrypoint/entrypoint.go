package entrypoint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vocabachkhoa/api/internal/auth"
	"github.com/vocabachkhoa/api/internal/config"
	"github.com/vocabachkhoa/api/internal/database"
	"github.com/vocabachkhoa/api/internal/database/accounts"
	vocabstore "github.com/vocabachkhoa/api/internal/database/vocabulary"
	http_controllers "github.com/vocabachkhoa/api/internal/http"
	"github.com/vocabachkhoa/api/internal/logging"
	"github.com/vocabachkhoa/api/internal/metrics"
	"github.com/vocabachkhoa/api/internal/scheduler"
	"github.com/vocabachkhoa/api/internal/vocabulary"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired components of a running server.
type App struct {
	Router    *gin.Engine
	Database  *database.Database
	Scheduler *scheduler.StatsScheduler
}

// NewApp opens the database and wires services, metrics and the router.
func NewApp(cfg *config.Config, version string, logger *slog.Logger) (*App, error) {
	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}
	if err := ensureJWTSecret(&cfg.Auth, logger); err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database initialized", "driver", cfg.Database.Driver)

	accountsRepo := accounts.NewRepository(db.DB)
	authService := auth.NewService(accountsRepo, cfg.Auth)
	vocabService := vocabulary.NewService(accountsRepo, vocabstore.NewRepository(db.DB))

	routerCfg := http_controllers.RouterConfig{
		AuthService:       authService,
		VocabularyService: vocabService,
		Database:          db,
		Logger:            logger,
		Prefix:            cfg.HTTP.Prefix,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		Version:           version,
	}

	app := &App{Database: db}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector := metrics.NewCollector(reg)
		routerCfg.Recorder = collector
		routerCfg.MetricsGatherer = reg
		app.Scheduler = scheduler.NewStatsScheduler(db, collector, cfg.Metrics.StatsSchedule, logger)
	}

	app.Router = http_controllers.NewRouter(routerCfg)
	return app, nil
}

// Close stops background work and releases the database.
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	return a.Database.Close()
}

// ensureJWTSecret fills in a random secret when none is configured.
// Tokens signed with it stop verifying after a restart.
func ensureJWTSecret(cfg *config.Auth, logger *slog.Logger) error {
	if cfg.JWTSecret != "" {
		return nil
	}
	secret, err := generateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.JWTSecret = secret
	logger.Warn("JWT_SECRET is not set; generated a random secret. Issued tokens will not survive a restart")
	return nil
}

func generateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Serve runs the server until SIGINT or SIGTERM, then shuts it down gracefully.
func Serve(router *gin.Engine, cfg *config.Config, logger *slog.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if onShutdown != nil {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			onShutdown(ctx)
		}
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	logger.Info("server exited")
	return nil
}

func Run(cfg *config.Config, version string) error {
	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)
	logger.Info("starting vocabulary API", "version", version)

	gin.SetMode(cfg.HTTP.GinMode)

	app, err := NewApp(cfg, version, logger)
	if err != nil {
		return err
	}

	if app.Scheduler != nil {
		if err := app.Scheduler.Start(context.Background()); err != nil {
			if closeErr := app.Close(); closeErr != nil {
				logger.Error("failed to close database", "error", closeErr)
			}
			return err
		}
		if next := app.Scheduler.GetNextRunTime(); next != nil {
			logger.Info("stats refresh scheduled", "next_run", next.Format(time.RFC3339))
		}
	}

	return Serve(app.Router, cfg, logger, func(ctx context.Context) {
		if err := app.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	})
}
