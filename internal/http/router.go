package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vocabachkhoa/api/internal/auth"
	"github.com/vocabachkhoa/api/internal/metrics"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	router := gin.New()
	// Order matters: the logger must see the status written by the error
	// handler, and the error handler must see errors pushed by recovery.
	router.Use(RequestLogger(logger, recorder))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	router.Use(ErrorHandler(logger))
	router.Use(gin.CustomRecovery(recoverPanic))

	router.NoRoute(notFound)

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	if cfg.MetricsGatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(cfg.MetricsGatherer)))
	}

	api := router.Group(cfg.Prefix)

	if cfg.AuthService != nil {
		authController := NewAuthController(cfg.AuthService, recorder)
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
		authRoutes.GET("/me", auth.RequireBearer(cfg.AuthService), authController.Me)
	}

	if cfg.VocabularyService != nil {
		vocabController := NewVocabularyController(cfg.VocabularyService)
		vocabRoutes := api.Group("/vocab")
		vocabRoutes.POST("/save", vocabController.Save)
		vocabRoutes.GET("/show", vocabController.Show)
		vocabRoutes.DELETE("/delete", vocabController.Delete)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
