package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, 60, cfg.RefreshMinutes)
	assert.Equal(t, filepath.Join("/srv/app", "resources", "dataset"), cfg.DatasetDir)
	assert.Equal(t, filepath.Join("/srv/app", "resources", "geojson"), cfg.GeoJSONOutDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("VENUES_TIMEZONE", "Asia/Osaka")
	t.Setenv("DATASET_DIR", "/data/venues")
	t.Setenv("REFRESH_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6380", cfg.RedisAddr)
	assert.Equal(t, "Asia/Osaka", cfg.Timezone)
	assert.Equal(t, "/data/venues", cfg.DatasetDir)
	assert.Equal(t, 15, cfg.RefreshMinutes)
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/app")

	assert.Equal(t, filepath.Join("/srv/app", "resources", "dataset"), GetResourcePath("dataset"))
}
