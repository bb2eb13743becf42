package ports

import (
	"context"

	"event-heatmap-service/internal/metrics/core/domain"
)

type MetricsFilter struct {
	WorldID  string
	From     int64
	To       int64
	MetricID *string // optional
	GroupBy  string  // "", "metric", "time"
	Interval string  // "hour" / "day" (GroupBy = "time" required)
}

type MetricsReaderPort interface {
	QueryMetrics(ctx context.Context, f MetricsFilter) (*domain.AggregatedMetrics, error)
}
