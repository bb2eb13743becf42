package domain

import "time"

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Cell is the integer-quantized grid coordinate of a bin.
type Cell struct {
	I int
	J int
	K int
}

type Bin struct {
	Cell   Cell
	Amount int
}

// AggregationResult holds one pass over an event set.
// MaxAmount is 0 when Bins is empty.
type AggregationResult struct {
	Bins      map[Cell]int
	MaxAmount int
}

// TimeRange is a closed interval; both bounds are inclusive.
type TimeRange struct {
	Begin time.Time
	End   time.Time
}

func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Begin) && !t.After(tr.End)
}

type Settings struct {
	Offset           Vec3
	Scale            Vec3
	TimeRange        *TimeRange // optional
	DisplayThreshold float64    // 0 keeps every bin
}

// Bar is one extruded column of the rendered heat map.
type Bar struct {
	Cell      Cell
	Amount    int
	Intensity float64 // amount / max amount, in (0,1]
	Center    Vec3
	Size      Vec3
}

type Summary struct {
	Events    int
	Bins      int
	Displayed int
	MaxAmount int
	Mean      float64
	StdDev    float64
	P50       float64
	P90       float64
}

type HeatmapView struct {
	WorldID  string
	MetricID string
	Settings Settings
	Bars     []Bar
	Summary  Summary
}
