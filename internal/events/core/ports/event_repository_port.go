package ports

import (
	"context"
	"event-heatmap-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate id (idempotent)
	//   created = false, err != nil -> DB error
	InsertEvent(ctx context.Context, e *domain.Event) (created bool, err error)

	// ExistingIDs returns the subset of ids already stored.
	ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
}
