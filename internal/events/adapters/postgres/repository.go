package postgres

import (
	"context"

	"event-heatmap-service/internal/events/core/domain"
	"event-heatmap-service/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO events (
    id,
    world_id,
    metric_id,
    count,
    pos_x,
    pos_y,
    pos_z,
    event_time
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (id) DO NOTHING;
`

const existingIDsSQL = `SELECT id FROM events WHERE id = ANY($1)`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.WorldID,
		e.MetricID,
		e.Count,
		e.Position.X,
		e.Position.Y,
		e.Position.Z,
		e.EventTime,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *EventRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, existingIDsSQL, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return found, nil
}
