package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Log
		Metrics
	}

	HTTP struct {
		Port           int32
		Host           string
		Prefix         string   // Mount path for the auth and vocab routes
		AllowedOrigins []string // CORS origins, "*" allows all
		GinMode        string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Driver   string // "sqlite" or "postgres"
		Path     string // sqlite file
		URL      string // postgres DSN
		LogLevel string // gorm logger level: silent, error, warn, info
	}

	Auth struct {
		JWTSecret    string
		JWTExpiry    time.Duration
		JWTExpiresIn string // Raw JWT_EXPIRES_IN setting
		BcryptCost   int
	}

	Log struct {
		Level  string
		Format string // "text" or "json"
	}

	Metrics struct {
		Enabled       bool
		StatsSchedule string // Cron format, empty disables the stats job
	}
)

// NewConfig reads configuration from the environment, after loading a .env
// file from the working directory when one exists.
func NewConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}
	return newConfig(viper.New())
}

// Validate rejects auth settings that would only fail once requests arrive.
// A zero BcryptCost falls back to bcrypt's default.
func (a Auth) Validate() error {
	if a.BcryptCost != 0 && (a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("invalid AUTH_BCRYPT_COST %d: must be between %d and %d",
			a.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if a.JWTExpiresIn != "" && a.JWTExpiry <= 0 {
		return fmt.Errorf("invalid JWT_EXPIRES_IN %q: must be a positive duration such as 1h", a.JWTExpiresIn)
	}
	return nil
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("api_prefix", "")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_url", "")
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("jwt_secret", "") // Auto-generated if empty
	v.SetDefault("jwt_expires_in", "1h")
	v.SetDefault("auth_bcrypt_cost", 10)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("metrics_enabled", true)
	v.SetDefault("stats_schedule", "@every 1m")

	return &Config{
		HTTP: HTTP{
			Port:           v.GetInt32("PORT"),
			Host:           v.GetString("HOST"),
			Prefix:         normalizePrefix(v.GetString("API_PREFIX")),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			GinMode:        v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
			Path:     v.GetString("DATABASE_PATH"),
			URL:      v.GetString("DATABASE_URL"),
			LogLevel: strings.ToLower(v.GetString("DATABASE_LOG_LEVEL")),
		},
		Auth: Auth{
			JWTSecret:    v.GetString("JWT_SECRET"),
			JWTExpiry:    v.GetDuration("JWT_EXPIRES_IN"),
			JWTExpiresIn: v.GetString("JWT_EXPIRES_IN"),
			BcryptCost:   v.GetInt("AUTH_BCRYPT_COST"),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Metrics: Metrics{
			Enabled:       v.GetBool("METRICS_ENABLED"),
			StatsSchedule: v.GetString("STATS_SCHEDULE"),
		},
	}
}

// normalizePrefix turns "api/", "/api/" and "/api" into "/api"; "" and "/" into "".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
