package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Civil timezone for every "open now" computation. One canonical zone,
// no per-call overrides.
const DEFAULT_TIMEZONE = "Asia/Tokyo"

// Redis defaults
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Dataset refresher config
const DATASET_REFRESHER_SCHEDULE_MINUTES = 60

// GeoJSON build config
const GEOJSON_VERSION = "v2025"
const GEOJSON_CENTROID_MAX = 4000
const GEOJSON_COORD_DECIMALS = 4

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const DATASET_DIR_RESOURCE = "dataset"
const GEOJSON_OUT_RESOURCE = "geojson"

// Config holds the runtime settings, overridable through the environment.
type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8080"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	Timezone       string `env:"VENUES_TIMEZONE" envDefault:"Asia/Tokyo"`
	DatasetDir     string `env:"DATASET_DIR" envDefault:""`
	GeoJSONOutDir  string `env:"GEOJSON_OUT_DIR" envDefault:""`
	GeoJSONVersion string `env:"GEOJSON_VERSION" envDefault:"v2025"`
	RefreshMinutes int    `env:"REFRESH_MINUTES" envDefault:"60"`
	CentroidMax    int    `env:"CENTROID_MAX" envDefault:"4000"`
	CoordDecimals  int    `env:"COORD_DECIMALS" envDefault:"4"`
}

// Load parses the configuration from the environment, filling path defaults
// relative to the project root.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.DatasetDir == "" {
		cfg.DatasetDir = GetResourcePath(DATASET_DIR_RESOURCE)
	}
	if cfg.GeoJSONOutDir == "" {
		cfg.GeoJSONOutDir = GetResourcePath(GEOJSON_OUT_RESOURCE)
	}
	return &cfg, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
