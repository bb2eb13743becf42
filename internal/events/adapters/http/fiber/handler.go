package fiber

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"event-heatmap-service/internal/analyticslog"
	"event-heatmap-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
}

func NewEventHandler(storeUC StoreEventUseCase) *EventHandler {
	return &EventHandler{storeUC: storeUC}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Stores a single positional event; repeated ids are ignored
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.StoreEventInput{
		ID:        req.ID,
		WorldID:   req.WorldID,
		MetricID:  req.MetricID,
		Count:     req.Count,
		Position:  usecase.PositionInput{X: req.Position.X, Y: req.Position.Y, Z: req.Position.Z},
		Timestamp: req.Timestamp,
	}

	created, err := h.storeUC.Execute(c.UserContext(), input)
	if err != nil {
		return writeStoreError(c, err)
	}

	if !created {
		resp := CreateEventResponse{
			Status: "duplicate",
		}
		return c.Status(http.StatusOK).JSON(resp)
	}

	resp := CreateEventResponse{
		Status: "created",
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk create events
// @Description Accepts a list of events and stores them individually
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = usecase.StoreEventInput{
			ID:        e.ID,
			WorldID:   e.WorldID,
			MetricID:  e.MetricID,
			Count:     e.Count,
			Position:  usecase.PositionInput{X: e.Position.X, Y: e.Position.Y, Z: e.Position.Z},
			Timestamp: e.Timestamp,
		}
	}

	return h.storeBulk(c, inputs)
}

// ImportLog godoc
// @Summary Import a recorded analytics log
// @Description Accepts the exported log format (JSON array with ID, worldId, metricId, count, position, timestamp)
// @Tags Events
// @Accept json
// @Produce json
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/import [post]
func (h *EventHandler) ImportLog(c *fiber.Ctx) error {
	records, err := analyticslog.Decode(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_log",
			Message: err.Error(),
		})
	}

	if len(records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(records))
	for i, r := range records {
		inputs[i] = usecase.StoreEventInput{
			ID:        r.ID,
			WorldID:   r.WorldID,
			MetricID:  r.MetricID,
			Count:     r.Count,
			Position:  usecase.PositionInput{X: r.Position.X, Y: r.Position.Y, Z: r.Position.Z},
			Timestamp: r.Timestamp.Time,
		}
	}

	return h.storeBulk(c, inputs)
}

func (h *EventHandler) storeBulk(c *fiber.Ctx, inputs []usecase.StoreEventInput) error {
	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func writeStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
