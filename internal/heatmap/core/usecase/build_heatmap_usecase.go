package usecase

import (
	"context"
	"errors"
	"fmt"

	"event-heatmap-service/internal/heatmap/core/aggregator"
	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"
	"event-heatmap-service/internal/monitoring"
)

var (
	ErrInvalidHeatmapQuery = errors.New("invalid heatmap query")
	ErrNoRenderTarget      = errors.New("render target is required")
)

type BuildHeatmapInput struct {
	WorldID  string
	MetricID string // optional, empty means every metric
	Settings domain.Settings

	// AllWorlds bins every world the source holds. WorldID must then be empty.
	AllWorlds bool
}

type BuildHeatmapUseCase struct {
	source ports.EventSourcePort
}

func NewBuildHeatmapUseCase(source ports.EventSourcePort) *BuildHeatmapUseCase {
	return &BuildHeatmapUseCase{source: source}
}

// Execute loads the events for a world, bins them, and lays out the
// bars that pass the display threshold.
func (uc *BuildHeatmapUseCase) Execute(ctx context.Context, in BuildHeatmapInput) (*domain.HeatmapView, error) {
	if (in.WorldID == "") != in.AllWorlds {
		return nil, ErrInvalidHeatmapQuery
	}
	if err := validateSettings(in.Settings); err != nil {
		return nil, err
	}

	events, err := uc.source.ListEvents(ctx, ports.EventQuery{
		WorldID:   in.WorldID,
		MetricID:  in.MetricID,
		TimeRange: in.Settings.TimeRange,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	// The source may ignore the pushed-down range, so filter again here.
	res, err := aggregator.Aggregate(events, in.Settings.Offset, in.Settings.Scale, in.Settings.TimeRange)
	if err != nil {
		return nil, err
	}

	shown := aggregator.ApplyThreshold(res, in.Settings.DisplayThreshold)
	bars := aggregator.Bars(shown, res.MaxAmount, in.Settings.Offset, in.Settings.Scale)

	monitoring.Logf("heatmap world=%s metric=%s events=%d bins=%d shown=%d max=%d",
		in.WorldID, in.MetricID, len(events), len(res.Bins), len(bars), res.MaxAmount)

	return &domain.HeatmapView{
		WorldID:  in.WorldID,
		MetricID: in.MetricID,
		Settings: in.Settings,
		Bars:     bars,
		Summary:  aggregator.Summarize(res, len(bars)),
	}, nil
}

// Render builds the heat map and draws it into target.
func (uc *BuildHeatmapUseCase) Render(ctx context.Context, in BuildHeatmapInput, target ports.RenderTarget) (*domain.HeatmapView, error) {
	if target == nil {
		return nil, ErrNoRenderTarget
	}
	view, err := uc.Execute(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := target.Draw(ctx, view); err != nil {
		return nil, fmt.Errorf("draw heatmap: %w", err)
	}
	return view, nil
}

func validateSettings(s domain.Settings) error {
	if err := aggregator.ValidateOffset(s.Offset); err != nil {
		return err
	}
	if err := aggregator.ValidateScale(s.Scale); err != nil {
		return err
	}
	if err := aggregator.ValidateTimeRange(s.TimeRange); err != nil {
		return err
	}
	return aggregator.ValidateThreshold(s.DisplayThreshold)
}
