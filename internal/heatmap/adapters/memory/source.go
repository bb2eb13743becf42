package memory

import (
	"context"

	"event-heatmap-service/internal/analyticslog"
	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"
)

// EventSource serves events held in memory, e.g. a recorded log loaded
// from disk.
type EventSource struct {
	events []domain.Event
}

func NewEventSource(events []domain.Event) *EventSource {
	return &EventSource{events: events}
}

// FromRecords converts decoded log records into an EventSource.
func FromRecords(records []analyticslog.Record) *EventSource {
	events := make([]domain.Event, len(records))
	for i, r := range records {
		events[i] = domain.Event{
			ID:        r.ID,
			WorldID:   r.WorldID,
			MetricID:  r.MetricID,
			Count:     r.Count,
			Position:  domain.Vec3{X: r.Position.X, Y: r.Position.Y, Z: r.Position.Z},
			Timestamp: r.Timestamp.Time,
		}
	}
	return NewEventSource(events)
}

var _ ports.EventSourcePort = (*EventSource)(nil)

// ListEvents filters by world, metric and time range. An empty WorldID
// matches every world.
func (s *EventSource) ListEvents(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Event
	for _, e := range s.events {
		if q.WorldID != "" && e.WorldID != q.WorldID {
			continue
		}
		if q.MetricID != "" && e.MetricID != q.MetricID {
			continue
		}
		if q.TimeRange != nil && !q.TimeRange.Contains(e.Timestamp) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Worlds lists the distinct world ids in load order.
func (s *EventSource) Worlds() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range s.events {
		if !seen[e.WorldID] {
			seen[e.WorldID] = true
			out = append(out, e.WorldID)
		}
	}
	return out
}
