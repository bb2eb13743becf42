package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-heatmap-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreEventUseCase struct {
	ExecuteFunc         func(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateFunc      func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
	LastExecuteInput    usecase.StoreEventInput
	LastBulkCreateInput usecase.BulkCreateEventsInput
}

func (f *fakeStoreEventUseCase) Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeStoreEventUseCase) BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
	f.LastBulkCreateInput = in
	if f.BulkCreateFunc != nil {
		return f.BulkCreateFunc(ctx, in)
	}
	return usecase.BulkCreateEventsResult{}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc StoreEventUseCase) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(uc)

	app.Post("/events", h.CreateEvent)
	app.Post("/events/bulk", h.BulkCreateEvents)
	app.Post("/events/import", h.ImportLog)

	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	return respJSON
}

func sampleRequest() CreateEventRequest {
	return CreateEventRequest{
		ID:        "evt_1",
		WorldID:   "wrld_1",
		MetricID:  "visit",
		Count:     1,
		Position:  PositionDTO{X: 1, Y: 2, Z: 3},
		Timestamp: time.Now().Add(-time.Minute).UTC().Truncate(time.Second),
	}
}

func TestCreateEvent_Success_Created(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			// created = true
			return true, nil
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := sampleRequest()
	resp, body := doRequest(t, app, http.MethodPost, "/events", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["status"] != "created" {
		t.Errorf("expected status=created, got %v", respJSON["status"])
	}

	in := fakeUC.LastExecuteInput
	if in.ID != "evt_1" || in.WorldID != "wrld_1" || in.MetricID != "visit" {
		t.Errorf("unexpected ids: %+v", in)
	}
	if in.Position != (usecase.PositionInput{X: 1, Y: 2, Z: 3}) {
		t.Errorf("unexpected position: %+v", in.Position)
	}
	if !in.Timestamp.Equal(reqBody.Timestamp) {
		t.Errorf("expected timestamp %v, got %v", reqBody.Timestamp, in.Timestamp)
	}
}

func TestCreateEvent_Success_Duplicate(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			// created = false → duplicate
			return false, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", sampleRequest())

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", respJSON["status"])
	}
}

func TestCreateEvent_InvalidJSON(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", `{"world_id":`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestCreateEvent_ValidationError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return false, usecase.ErrInvalidEvent
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := sampleRequest()
	reqBody.WorldID = ""

	resp, body := doRequest(t, app, http.MethodPost, "/events", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}

	// Handler Error: "invalid_event", Message: err.Error()
	if respJSON := decodeMap(t, body); respJSON["error"] != "invalid_event" {
		t.Errorf("expected error=%q, got %v", "invalid_event", respJSON["error"])
	}
}

func TestCreateEvent_FutureTimeError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return false, usecase.ErrFutureTime
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := sampleRequest()
	reqBody.Timestamp = time.Now().Add(time.Hour)

	resp, body := doRequest(t, app, http.MethodPost, "/events", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["error"] != "invalid_event" {
		t.Errorf("expected error=%q, got %v", "invalid_event", respJSON["error"])
	}
}

func TestCreateEvent_InternalError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return false, errors.New("db error")
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", sampleRequest())

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", respJSON["error"])
	}
}

// ---- Bulk tests ----

func TestBulkCreateEvents_Success_AllCreated(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{
				Created:    len(in.Events),
				Duplicates: 0,
			}, nil
		},
	}

	app := setupTestApp(fakeUC)

	ts := time.Now().Add(-time.Minute)
	reqBody := BulkCreateEventsRequest{
		Events: []bulkEventItem{
			{ID: "a", WorldID: "wrld_1", MetricID: "visit", Count: 1, Position: PositionDTO{X: 1}, Timestamp: ts},
			{ID: "b", WorldID: "wrld_1", MetricID: "jump", Count: 2, Position: PositionDTO{Z: -4}, Timestamp: ts},
		},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	respJSON := decodeMap(t, body)
	if int(respJSON["created"].(float64)) != 2 {
		t.Errorf("expected created=2, got %v", respJSON["created"])
	}
	if int(respJSON["duplicates"].(float64)) != 0 {
		t.Errorf("expected duplicates=0, got %v", respJSON["duplicates"])
	}

	got := fakeUC.LastBulkCreateInput.Events
	if len(got) != 2 || got[1].MetricID != "jump" || got[1].Position.Z != -4 {
		t.Errorf("unexpected usecase input: %+v", got)
	}
}

func TestBulkCreateEvents_InvalidJSON(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", `{"events":[`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestBulkCreateEvents_EmptyEvents(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	reqBody := BulkCreateEventsRequest{
		Events: []bulkEventItem{},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["error"] != "events_list_required" {
		t.Errorf("expected error=events_list_required, got %v", respJSON["error"])
	}
}

func TestBulkCreateEvents_ValidationError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{}, usecase.ErrInvalidEvent
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := BulkCreateEventsRequest{
		Events: []bulkEventItem{{MetricID: "visit", Timestamp: time.Now()}},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["error"] != "invalid_event" {
		t.Errorf("expected error=%q, got %v", "invalid_event", respJSON["error"])
	}
}

func TestBulkCreateEvents_InternalError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{}, errors.New("db error")
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := BulkCreateEventsRequest{
		Events: []bulkEventItem{{WorldID: "wrld_1", MetricID: "visit", Timestamp: time.Now()}},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", reqBody)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}

	if respJSON := decodeMap(t, body); respJSON["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", respJSON["error"])
	}
}

// ---- Import tests ----

const recordedLog = `[
  {"ID":"a","worldId":"wrld_1","metricId":"visit","count":1,"position":{"x":0,"y":0,"z":0},"timestamp":"2024-03-01T12:00:00Z"},
  {"ID":"b","worldId":"wrld_1","metricId":"visit","count":1,"position":{"x":1,"y":0,"z":0},"timestamp":"2024-03-01T12:00:01"}
]`

func TestImportLog_Success(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{Created: 1, Duplicates: 1}, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events/import", recordedLog)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var got BulkCreateEventsResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.Created != 1 || got.Duplicates != 1 {
		t.Errorf("unexpected response: %+v", got)
	}

	events := fakeUC.LastBulkCreateInput.Events
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].ID != "b" || events[1].Position.X != 1 {
		t.Errorf("unexpected event: %+v", events[1])
	}
	if !events[1].Timestamp.Equal(time.Date(2024, 3, 1, 12, 0, 1, 0, time.UTC)) {
		t.Errorf("unexpected timestamp: %v", events[1].Timestamp)
	}
}

func TestImportLog_Invalid(t *testing.T) {
	for _, body := range []string{`{"ID":"a"}`, `[{"ID":"a","timestamp":"soon"}]`, `[]`} {
		fakeUC := &fakeStoreEventUseCase{}
		app := setupTestApp(fakeUC)

		resp, respBody := doRequest(t, app, http.MethodPost, "/events/import", body)

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d (body: %s)", body, http.StatusBadRequest, resp.StatusCode, string(respBody))
		}
	}
}
