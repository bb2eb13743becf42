package ports

import (
	"context"
	"io"

	"event-heatmap-service/internal/heatmap/core/domain"
)

type EventQuery struct {
	WorldID   string
	MetricID  string
	TimeRange *domain.TimeRange // optional, pushed down to the source
}

type EventSourcePort interface {
	ListEvents(ctx context.Context, q EventQuery) ([]domain.Event, error)
}

// RenderTarget draws a finished heat map. The caller owns the target and
// hands it in explicitly; the core never looks one up.
type RenderTarget interface {
	Draw(ctx context.Context, view *domain.HeatmapView) error
}

// RenderTargetProvider hands out render targets writing to w.
type RenderTargetProvider interface {
	AcquireRenderTarget(w io.Writer) (RenderTarget, error)
}
