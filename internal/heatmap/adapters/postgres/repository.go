package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-heatmap-service/internal/db"
	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"
)

type (
	RowScanner = db.Rows
	DB         = db.Querier
)

type EventSource struct {
	db DB
}

func NewEventSource(db DB) *EventSource {
	return &EventSource{db: db}
}

var _ ports.EventSourcePort = (*EventSource)(nil)

// ListEvents reads the matching events in time order. An empty WorldID
// reads every world.
func (r *EventSource) ListEvents(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if q.WorldID != "" {
		args = append(args, q.WorldID)
		conds = append(conds, fmt.Sprintf("world_id = $%d", len(args)))
	}
	if q.MetricID != "" {
		args = append(args, q.MetricID)
		conds = append(conds, fmt.Sprintf("metric_id = $%d", len(args)))
	}
	if q.TimeRange != nil {
		args = append(args, q.TimeRange.Begin.UTC(), q.TimeRange.End.UTC())
		conds = append(conds, fmt.Sprintf("event_time BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "\nWHERE " + strings.Join(conds, " AND ")
	}

	query := `
SELECT
    id,
    world_id,
    metric_id,
    count,
    pos_x,
    pos_y,
    pos_z,
    event_time
FROM events` + where + `
ORDER BY event_time`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e  domain.Event
			ts time.Time
		)
		if err := rows.Scan(
			&e.ID,
			&e.WorldID,
			&e.MetricID,
			&e.Count,
			&e.Position.X,
			&e.Position.Y,
			&e.Position.Z,
			&ts,
		); err != nil {
			return nil, err
		}
		e.Timestamp = ts.UTC()
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
