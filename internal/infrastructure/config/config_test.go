package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := FromViper(NewViper())

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.AllowResetPlans)
	assert.Equal(t, 2*time.Hour, cfg.SessionMaxIdle)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PERGOLA_ADDR", ":9090")
	t.Setenv("PERGOLA_ALLOW_RESET_PLANS", "1")
	t.Setenv("PERGOLA_SESSION_MAX_IDLE", "15m")
	t.Setenv("DATABASE_URL", "postgres://localhost/pergola")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := FromViper(NewViper())

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.AllowResetPlans)
	assert.Equal(t, 15*time.Minute, cfg.SessionMaxIdle)
	assert.Equal(t, "postgres://localhost/pergola", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestPrefixedWinsOverBare(t *testing.T) {
	t.Setenv("PERGOLA_JWT_SECRET", "prefixed")
	t.Setenv("JWT_SECRET", "bare")

	assert.Equal(t, "prefixed", FromViper(NewViper()).JWTSecret)
}
