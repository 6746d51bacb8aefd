package config_test

import (
	"testing"
	"time"

	"go-hrapp/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("requires jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "")
		t.Setenv("JWT_TTL", "")
		t.Setenv("DB_MAX_RETRIES", "")
		t.Setenv("PROFILE_CACHE_TTL", "")

		cfg, err := config.Load()
		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 5, cfg.DBRetries)
		assert.Equal(t, 10*time.Minute, cfg.ProfileCacheTTL)
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_TTL", "tomorrow")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("production flag", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_TTL", "1h")
		t.Setenv("APP_ENV", "production")

		cfg, err := config.Load()
		assert.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, time.Hour, cfg.JWTTTL)
	})
}
