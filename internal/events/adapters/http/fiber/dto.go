package fiber

import "time"

type PositionDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CreateEventRequest represents event creation payload
// @Description Event creation DTO
type CreateEventRequest struct {
	ID        string      `json:"id"`
	WorldID   string      `json:"world_id"`
	MetricID  string      `json:"metric_id"`
	Count     int         `json:"count"`
	Position  PositionDTO `json:"position"`
	Timestamp time.Time   `json:"timestamp"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []bulkEventItem `json:"events"`
}

type bulkEventItem struct {
	ID        string      `json:"id"`
	WorldID   string      `json:"world_id"`
	MetricID  string      `json:"metric_id"`
	Count     int         `json:"count"`
	Position  PositionDTO `json:"position"`
	Timestamp time.Time   `json:"timestamp"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
