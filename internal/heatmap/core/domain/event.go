package domain

import "time"

// Event is a recorded analytics event as read by the heat map.
type Event struct {
	ID        string
	WorldID   string
	MetricID  string
	Count     int
	Position  Vec3
	Timestamp time.Time
}
