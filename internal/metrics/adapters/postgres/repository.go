package postgres

import (
	"context"
	"fmt"
	"time"

	"event-heatmap-service/internal/db"
	"event-heatmap-service/internal/metrics/core/domain"
	"event-heatmap-service/internal/metrics/core/ports"
)

type (
	RowScanner = db.Rows
	DB         = db.Querier
)

type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// truncUnits maps interval names onto date_trunc units.
var truncUnits = map[string]string{
	"hour": "hour",
	"day":  "day",
}

func (r *MetricsRepository) QueryMetrics(ctx context.Context, f ports.MetricsFilter) (*domain.AggregatedMetrics, error) {
	fromTime := time.Unix(f.From, 0).UTC()
	toTime := time.Unix(f.To, 0).UTC()

	where := "world_id = $1 AND event_time BETWEEN $2 AND $3"
	args := []any{f.WorldID, fromTime, toTime}

	result := &domain.AggregatedMetrics{
		WorldID: f.WorldID,
		From:    f.From,
		To:      f.To,
		GroupBy: f.GroupBy,
	}

	if f.MetricID != nil {
		where += " AND metric_id = $4"
		args = append(args, *f.MetricID)
		result.MetricID = *f.MetricID
	}

	switch f.GroupBy {
	case "":
		return r.queryNoGroup(ctx, where, args, result)
	case "metric":
		return r.queryGroups(ctx, "metric_id", where, args, result, func(s RowScanner, key *string, events, count *int64) error {
			return s.Scan(key, events, count)
		})
	case "time":
		unit, ok := truncUnits[f.Interval]
		if !ok {
			return nil, fmt.Errorf("unsupported interval: %s", f.Interval)
		}
		bucket := fmt.Sprintf("date_trunc('%s', event_time)", unit)
		return r.queryGroups(ctx, bucket, where, args, result, func(s RowScanner, key *string, events, count *int64) error {
			var ts time.Time
			if err := s.Scan(&ts, events, count); err != nil {
				return err
			}
			*key = ts.UTC().Format(time.RFC3339)
			return nil
		})
	default:
		// validated by the use case already
		return nil, fmt.Errorf("unsupported group_by: %s", f.GroupBy)
	}
}

func (r *MetricsRepository) queryNoGroup(
	ctx context.Context,
	where string,
	args []any,
	res *domain.AggregatedMetrics,
) (*domain.AggregatedMetrics, error) {
	query := `
SELECT
    COUNT(*) AS total_events,
    COALESCE(SUM(count), 0) AS total_count
FROM events
WHERE ` + where

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var events, count int64
		if err := rows.Scan(&events, &count); err != nil {
			return nil, err
		}
		res.TotalEvents = events
		res.TotalCount = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

type groupScanFunc func(s RowScanner, key *string, events, count *int64) error

func (r *MetricsRepository) queryGroups(
	ctx context.Context,
	keyExpr string,
	where string,
	args []any,
	res *domain.AggregatedMetrics,
	scan groupScanFunc,
) (*domain.AggregatedMetrics, error) {
	query := fmt.Sprintf(`
SELECT
    %s AS group_key,
    COUNT(*) AS total_events,
    COALESCE(SUM(count), 0) AS total_count
FROM events
WHERE %s
GROUP BY group_key
ORDER BY group_key
`, keyExpr, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.MetricsGroup
	var eventsSum, countSum int64

	for rows.Next() {
		var g domain.MetricsGroup
		if err := scan(rows, &g.Key, &g.TotalEvents, &g.TotalCount); err != nil {
			return nil, err
		}
		groups = append(groups, g)
		eventsSum += g.TotalEvents
		countSum += g.TotalCount
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	res.Groups = groups
	res.TotalEvents = eventsSum
	res.TotalCount = countSum

	return res, nil
}
