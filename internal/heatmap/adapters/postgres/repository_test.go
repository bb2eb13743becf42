package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			v, ok := row.values[i].(int)
			if !ok {
				return errors.New("type assertion to int failed")
			}
			*d = v
		case *float64:
			v, ok := row.values[i].(float64)
			if !ok {
				return errors.New("type assertion to float64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func eventRow(id string, x, y, z float64, ts time.Time) fakeRow {
	return fakeRow{values: []any{id, "wrld_1", "visit", 1, x, y, z, ts}}
}

// ------------------------------------------------------------
// WORLD ONLY
// ------------------------------------------------------------

func TestEventSource_WorldOnly(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	scanner := &fakeRowScanner{
		rows: []fakeRow{
			eventRow("a", 1, 2, 3, ts),
			eventRow("b", -1, 0, 0.5, ts.Add(time.Second)),
		},
	}
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return scanner, nil
		},
	}

	src := NewEventSource(db)

	events, err := src.ListEvents(context.Background(), ports.EventQuery{WorldID: "wrld_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Position != (domain.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("unexpected position: %+v", events[0].Position)
	}
	if events[1].ID != "b" || !events[1].Timestamp.Equal(ts.Add(time.Second)) {
		t.Fatalf("unexpected event: %+v", events[1])
	}
	if len(db.lastArgs) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(db.lastArgs))
	}
	if strings.Contains(db.lastQuery, "metric_id =") || strings.Contains(db.lastQuery, "BETWEEN") {
		t.Fatalf("unexpected filters in query: %s", db.lastQuery)
	}
	if !scanner.closed {
		t.Fatalf("expected rows to be closed")
	}
}

// ------------------------------------------------------------
// METRIC + TIME RANGE
// ------------------------------------------------------------

func TestEventSource_MetricAndTimeRange(t *testing.T) {
	db := &fakeDB{}
	src := NewEventSource(db)

	begin := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	q := ports.EventQuery{
		WorldID:   "wrld_1",
		MetricID:  "visit",
		TimeRange: &domain.TimeRange{Begin: begin, End: begin.Add(24 * time.Hour)},
	}

	if _, err := src.ListEvents(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "metric_id = $2") {
		t.Fatalf("expected metric filter, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "event_time BETWEEN $3 AND $4") {
		t.Fatalf("expected time filter, got: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 4 {
		t.Fatalf("expected 4 args, got %d", len(db.lastArgs))
	}
}

// ------------------------------------------------------------
// ALL WORLDS
// ------------------------------------------------------------

func TestEventSource_AllWorlds(t *testing.T) {
	db := &fakeDB{}

	if _, err := NewEventSource(db).ListEvents(context.Background(), ports.EventQuery{MetricID: "visit"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(db.lastQuery, "world_id =") {
		t.Fatalf("expected no world filter, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "WHERE metric_id = $1") {
		t.Fatalf("expected metric filter as $1, got: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 1 || db.lastArgs[0] != "visit" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}

	if _, err := NewEventSource(db).ListEvents(context.Background(), ports.EventQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(db.lastQuery, "WHERE") || len(db.lastArgs) != 0 {
		t.Fatalf("expected unfiltered query, got: %s %v", db.lastQuery, db.lastArgs)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestEventSource_DBError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	events, err := NewEventSource(db).ListEvents(context.Background(), ports.EventQuery{WorldID: "wrld_1"})
	if err == nil || err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if events != nil {
		t.Fatalf("expected nil events on error")
	}
}

func TestEventSource_RowsError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("conn reset")}, nil
		},
	}

	if _, err := NewEventSource(db).ListEvents(context.Background(), ports.EventQuery{WorldID: "wrld_1"}); err == nil {
		t.Fatalf("expected rows error")
	}
}
