// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 100, cfg.Security.RateLimitRequests)
	assert.Equal(t, 15*time.Minute, cfg.Security.RateLimitWindow)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     "5432",
			User:     "app",
			Password: "pw",
			Name:     "store",
			SSLMode:  "disable",
		},
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=app password=pw dbname=store sslmode=disable",
		cfg.GetDatabaseDSN())

	cfg.Database.URL = "postgres://app:pw@db.internal:5432/store"
	assert.Equal(t, "postgres://app:pw@db.internal:5432/store", cfg.GetDatabaseDSN())
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Host: "cache.internal", Port: "6379"}}
	assert.Equal(t, "cache.internal:6379", cfg.GetRedisAddr())
}
