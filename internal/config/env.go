package config

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultHTTPAddr = ":8080"

// ServerConfig is read from the environment by cmd/api.
type ServerConfig struct {
	PostgresDSN    string
	HTTPAddr       string
	HeatmapConfig  string // optional path to a HeatmapConfig JSON file
	MigrationsAuto bool
}

// LoadServerConfig reads POSTGRES_DSN, HTTP_ADDR, HEATMAP_CONFIG and
// MIGRATIONS_AUTO. POSTGRES_DSN is required.
func LoadServerConfig(getenv func(string) string) (ServerConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := ServerConfig{
		PostgresDSN:   getenv("POSTGRES_DSN"),
		HTTPAddr:      getenv("HTTP_ADDR"),
		HeatmapConfig: getenv("HEATMAP_CONFIG"),
	}
	if cfg.PostgresDSN == "" {
		return ServerConfig{}, fmt.Errorf("POSTGRES_DSN is not set")
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}

	if v := getenv("MIGRATIONS_AUTO"); v != "" {
		auto, err := strconv.ParseBool(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("invalid MIGRATIONS_AUTO %q: %w", v, err)
		}
		cfg.MigrationsAuto = auto
	}

	return cfg, nil
}

// LoadHeatmapDefaults loads path, or returns DefaultHeatmapConfig when
// path is empty.
func LoadHeatmapDefaults(path string) (*HeatmapConfig, error) {
	if path == "" {
		return DefaultHeatmapConfig(), nil
	}
	return LoadHeatmapConfig(path)
}
