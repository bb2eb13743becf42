package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"event-heatmap-service/internal/heatmap/core/aggregator"
	"event-heatmap-service/internal/heatmap/core/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultHeatmapConfig(t *testing.T) {
	cfg := DefaultHeatmapConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.Vec3{}, cfg.GetOffset())
	assert.Equal(t, domain.Vec3{X: 1, Y: 1, Z: 1}, cfg.GetScale())
	assert.Equal(t, 0.01, cfg.GetDisplayThreshold())

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Nil(t, s.TimeRange)
}

func TestEmptyHeatmapConfigFallsBack(t *testing.T) {
	got, err := EmptyHeatmapConfig().Settings()
	require.NoError(t, err)

	want, err := DefaultHeatmapConfig().Settings()
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHeatmapConfig(t *testing.T) {
	path := writeConfig(t, "heatmap.json", `{
  "offset": {"x": 0.5, "y": 0, "z": -1},
  "scale": {"x": 2, "y": 1, "z": 2},
  "display_threshold": 0.25,
  "time_range": {"begin": "2024-03-01T00:00:00Z", "end": "2024-03-02T00:00:00Z"}
}`)

	cfg, err := LoadHeatmapConfig(path)
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)

	want := domain.Settings{
		Offset:           domain.Vec3{X: 0.5, Y: 0, Z: -1},
		Scale:            domain.Vec3{X: 2, Y: 1, Z: 2},
		DisplayThreshold: 0.25,
		TimeRange: &domain.TimeRange{
			Begin: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHeatmapConfig_Partial(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"display_threshold": 0}`)

	cfg, err := LoadHeatmapConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.GetDisplayThreshold())
	assert.Equal(t, domain.Vec3{X: 1, Y: 1, Z: 1}, cfg.GetScale())
}

func TestLoadHeatmapConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
		invalid bool
	}{
		{name: "extension", file: "heatmap.yaml", body: `{}`, wantErr: ".json extension"},
		{name: "bad json", file: "bad.json", body: `{"scale":`, wantErr: "parse config JSON"},
		{name: "zero scale", file: "scale.json", body: `{"scale":{"x":1,"y":0,"z":1}}`, wantErr: "scale.y", invalid: true},
		{name: "threshold", file: "thr.json", body: `{"display_threshold":1}`, wantErr: "display threshold", invalid: true},
		{name: "bad time", file: "time.json", body: `{"time_range":{"begin":"yesterday","end":"2024-03-02T00:00:00Z"}}`, wantErr: "time_range.begin", invalid: true},
		{
			name:    "inverted range",
			file:    "inv.json",
			body:    `{"time_range":{"begin":"2024-03-02T00:00:00Z","end":"2024-03-01T00:00:00Z"}}`,
			wantErr: "begins after",
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadHeatmapConfig(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.invalid, errors.Is(err, aggregator.ErrInvalidConfiguration))
		})
	}
}

func TestHeatmapConfig_ValidateOffset(t *testing.T) {
	cfg := EmptyHeatmapConfig()
	cfg.Offset = &domain.Vec3{Y: math.Inf(1)}

	err := cfg.Validate()
	require.ErrorIs(t, err, aggregator.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "offset.y")
}

func TestLoadHeatmapConfig_Missing(t *testing.T) {
	_, err := LoadHeatmapConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat config file")
}

func TestLoadHeatmapConfig_TooLarge(t *testing.T) {
	body := `{"display_threshold": 0.1,` + strings.Repeat(" ", 1024*1024) + `}`
	_, err := LoadHeatmapConfig(writeConfig(t, "big.json", body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
