package usecase

import (
	"context"
	"errors"

	"event-heatmap-service/internal/metrics/core/domain"
	"event-heatmap-service/internal/metrics/core/ports"
	"event-heatmap-service/internal/monitoring"
)

var (
	ErrInvalidMetricsQuery = errors.New("invalid metrics query")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidGroupBy      = errors.New("invalid group_by value")
	ErrInvalidInterval     = errors.New("invalid interval for time grouping")
)

type GetMetricsInput struct {
	WorldID string
	From    int64
	To      int64

	MetricID *string
	GroupBy  string // "", "metric", "time"
	Interval string // "hour" / "day", required when GroupBy is "time"
}

type GetMetricsUseCase struct {
	reader ports.MetricsReaderPort
}

func NewGetMetricsUseCase(reader ports.MetricsReaderPort) *GetMetricsUseCase {
	return &GetMetricsUseCase{reader: reader}
}

// IsValidationError reports whether err rejects the input rather than
// failing the query.
func IsValidationError(err error) bool {
	for _, target := range []error{ErrInvalidMetricsQuery, ErrInvalidTimeRange, ErrInvalidGroupBy, ErrInvalidInterval} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Execute validates the input, turns it into a filter and queries the reader.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, in GetMetricsInput) (*domain.AggregatedMetrics, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	result, err := uc.reader.QueryMetrics(ctx, in.filter())
	if err != nil {
		monitoring.Logf("metrics: query world=%s group_by=%q: %v", in.WorldID, in.GroupBy, err)
		return nil, err
	}
	return result, nil
}

func (in GetMetricsInput) validate() error {
	switch {
	case in.WorldID == "", in.MetricID != nil && *in.MetricID == "":
		return ErrInvalidMetricsQuery
	case in.From <= 0, in.To <= 0, in.From > in.To:
		return ErrInvalidTimeRange
	}

	switch in.GroupBy {
	case "", "metric":
		return nil
	case "time":
		if _, ok := timeIntervals[in.Interval]; !ok {
			return ErrInvalidInterval
		}
		return nil
	default:
		return ErrInvalidGroupBy
	}
}

var timeIntervals = map[string]struct{}{"hour": {}, "day": {}}

func (in GetMetricsInput) filter() ports.MetricsFilter {
	return ports.MetricsFilter{
		WorldID:  in.WorldID,
		From:     in.From,
		To:       in.To,
		MetricID: in.MetricID,
		GroupBy:  in.GroupBy,
		Interval: in.Interval,
	}
}
