package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig(viper.New())

	assert.Equal(t, int32(DefaultPort), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "", cfg.HTTP.Prefix)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, time.Hour, cfg.Auth.JWTExpiry)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "@every 1m", cfg.Metrics.StatsSchedule)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("API_PREFIX", "api/")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://vocab@localhost/vocab")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := newConfig(viper.New())

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.Prefix)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://vocab@localhost/vocab", cfg.Database.URL)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.JWTExpiry)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestAuthValidate(t *testing.T) {
	require.NoError(t, newConfig(viper.New()).Auth.Validate())
	require.NoError(t, Auth{}.Validate())

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"cost above bcrypt max", map[string]string{"AUTH_BCRYPT_COST": "32"}, "AUTH_BCRYPT_COST"},
		{"cost below bcrypt min", map[string]string{"AUTH_BCRYPT_COST": "2"}, "AUTH_BCRYPT_COST"},
		{"unparseable expiry", map[string]string{"JWT_EXPIRES_IN": "soon"}, "JWT_EXPIRES_IN"},
		{"zero expiry", map[string]string{"JWT_EXPIRES_IN": "0s"}, "JWT_EXPIRES_IN"},
		{"negative expiry", map[string]string{"JWT_EXPIRES_IN": "-5m"}, "JWT_EXPIRES_IN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := newConfig(viper.New()).Auth.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"/":     "",
		"api":   "/api",
		"/api/": "/api",
		" v1/ ": "/v1",
		"/a/b/": "/a/b",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizePrefix(in), "prefix %q", in)
	}
}
