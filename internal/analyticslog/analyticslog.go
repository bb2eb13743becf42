// Package analyticslog reads recorded analytics logs: a JSON array of
// positional events as exported by the world analytics backend.
package analyticslog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Record is one logged event. Key matching is case-insensitive, so both
// "ID" and "id" populate ID.
type Record struct {
	ID        string    `json:"id"`
	WorldID   string    `json:"worldId"`
	MetricID  string    `json:"metricId"`
	Count     int       `json:"count"`
	Position  Position  `json:"position"`
	Timestamp Timestamp `json:"timestamp"`
}

// Timestamp accepts RFC 3339 as well as zone-less ISO 8601 date-times,
// which are taken as UTC.
type Timestamp struct {
	time.Time
}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty timestamp")
	}
	for _, layout := range layouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// Decode reads the whole log from r.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode analytics log: %w", err)
	}
	return records, nil
}
