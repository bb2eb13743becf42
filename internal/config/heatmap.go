package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"event-heatmap-service/internal/heatmap/core/aggregator"
	"event-heatmap-service/internal/heatmap/core/domain"
)

const DefaultDisplayThreshold = 0.01

// HeatmapConfig holds the default grid settings applied when a request
// leaves them out. Omitted fields fall back to the Get* defaults.
type HeatmapConfig struct {
	Offset           *domain.Vec3 `json:"offset,omitempty"`
	Scale            *domain.Vec3 `json:"scale,omitempty"`
	DisplayThreshold *float64     `json:"display_threshold,omitempty"`
	TimeRange        *TimeWindow  `json:"time_range,omitempty"`
}

// TimeWindow bounds are RFC 3339 strings.
type TimeWindow struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

func ptrFloat64(v float64) *float64 { return &v }

func EmptyHeatmapConfig() *HeatmapConfig {
	return &HeatmapConfig{}
}

// DefaultHeatmapConfig returns a config with every field populated.
func DefaultHeatmapConfig() *HeatmapConfig {
	return &HeatmapConfig{
		Offset:           &domain.Vec3{},
		Scale:            &domain.Vec3{X: 1, Y: 1, Z: 1},
		DisplayThreshold: ptrFloat64(DefaultDisplayThreshold),
	}
}

// LoadHeatmapConfig loads a HeatmapConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadHeatmapConfig(path string) (*HeatmapConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyHeatmapConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that are set.
func (c *HeatmapConfig) Validate() error {
	if c.Offset != nil {
		if err := aggregator.ValidateOffset(*c.Offset); err != nil {
			return err
		}
	}
	if c.Scale != nil {
		if err := aggregator.ValidateScale(*c.Scale); err != nil {
			return err
		}
	}
	if c.DisplayThreshold != nil {
		if err := aggregator.ValidateThreshold(*c.DisplayThreshold); err != nil {
			return err
		}
	}
	if _, err := c.GetTimeRange(); err != nil {
		return err
	}
	return nil
}

func (c *HeatmapConfig) GetOffset() domain.Vec3 {
	if c.Offset == nil {
		return domain.Vec3{}
	}
	return *c.Offset
}

func (c *HeatmapConfig) GetScale() domain.Vec3 {
	if c.Scale == nil {
		return domain.Vec3{X: 1, Y: 1, Z: 1}
	}
	return *c.Scale
}

func (c *HeatmapConfig) GetDisplayThreshold() float64 {
	if c.DisplayThreshold == nil {
		return DefaultDisplayThreshold
	}
	return *c.DisplayThreshold
}

// GetTimeRange parses the configured window. It returns nil when none is set.
func (c *HeatmapConfig) GetTimeRange() (*domain.TimeRange, error) {
	if c.TimeRange == nil {
		return nil, nil
	}
	begin, err := time.Parse(time.RFC3339, c.TimeRange.Begin)
	if err != nil {
		return nil, fmt.Errorf("%w: time_range.begin: %v", aggregator.ErrInvalidConfiguration, err)
	}
	end, err := time.Parse(time.RFC3339, c.TimeRange.End)
	if err != nil {
		return nil, fmt.Errorf("%w: time_range.end: %v", aggregator.ErrInvalidConfiguration, err)
	}
	tr := &domain.TimeRange{Begin: begin.UTC(), End: end.UTC()}
	if err := aggregator.ValidateTimeRange(tr); err != nil {
		return nil, err
	}
	return tr, nil
}

// Settings resolves the config into aggregation settings.
func (c *HeatmapConfig) Settings() (domain.Settings, error) {
	tr, err := c.GetTimeRange()
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{
		Offset:           c.GetOffset(),
		Scale:            c.GetScale(),
		TimeRange:        tr,
		DisplayThreshold: c.GetDisplayThreshold(),
	}, nil
}
