package domain

import "time"

type Position struct {
	X float64
	Y float64
	Z float64
}

type Event struct {
	ID        string
	WorldID   string
	MetricID  string
	Count     int
	Position  Position
	EventTime time.Time
}
