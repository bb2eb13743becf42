package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"event-heatmap-service/internal/events/core/domain"
	"event-heatmap-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

type StoreEventUseCase struct {
	repo  ports.EventRepositoryPort
	now   func() time.Time
	newID func() string
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

type PositionInput struct {
	X float64
	Y float64
	Z float64
}

type StoreEventInput struct {
	ID        string // optional, generated when empty
	WorldID   string
	MetricID  string
	Count     int
	Position  PositionInput
	Timestamp time.Time
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {

	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	return uc.repo.InsertEvent(ctx, uc.toEvent(in))
}

func (uc *StoreEventUseCase) toEvent(in StoreEventInput) *domain.Event {
	id := in.ID
	if id == "" {
		id = uc.newID()
	}

	return &domain.Event{
		ID:        id,
		WorldID:   in.WorldID,
		MetricID:  in.MetricID,
		Count:     in.Count,
		Position:  domain.Position{X: in.Position.X, Y: in.Position.Y, Z: in.Position.Z},
		EventTime: in.Timestamp.UTC(),
	}
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents validates the whole batch before writing anything.
// Ids already stored, or repeated inside the batch, count as duplicates.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	for i, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
	}

	var ids []string
	for _, ev := range in.Events {
		if ev.ID != "" {
			ids = append(ids, ev.ID)
		}
	}

	existing := map[string]bool{}
	if len(ids) > 0 {
		var err error
		existing, err = uc.repo.ExistingIDs(ctx, ids)
		if err != nil {
			return res, err
		}
	}

	seen := make(map[string]bool, len(in.Events))
	for _, ev := range in.Events {
		if ev.ID != "" && (existing[ev.ID] || seen[ev.ID]) {
			res.Duplicates++
			continue
		}
		seen[ev.ID] = true

		ok, err := uc.repo.InsertEvent(ctx, uc.toEvent(ev))
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {

	if in.WorldID == "" || in.MetricID == "" {
		return ErrInvalidEvent
	}

	if in.Count < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalidEvent)
	}

	for _, v := range []float64{in.Position.X, in.Position.Y, in.Position.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: position must be finite", ErrInvalidEvent)
		}
	}

	if in.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}

	if in.Timestamp.After(uc.now()) {
		return ErrFutureTime
	}

	return nil
}
