package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collisions-monitor/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "switrs.sqlite", cfg.GetDatabaseDSN())
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Dataset.WindowStart)
	assert.Equal(t, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), cfg.Dataset.WindowEnd)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.DashboardCacheTTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "switrs")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "collisions")
	t.Setenv("DATA_WINDOW_START", "2019-01-01")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("API_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5432 user=switrs password=secret dbname=collisions sslmode=disable", cfg.GetDatabaseDSN())
	assert.Equal(t, 2019, cfg.Dataset.WindowStart.Year())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"bad window date", map[string]string{"DATA_WINDOW_START": "01/01/2021"}},
		{"reversed window", map[string]string{"DATA_WINDOW_START": "2022-01-01", "DATA_WINDOW_END": "2021-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
