package domain

type AggregatedMetrics struct {
	WorldID     string
	MetricID    string // empty when not filtered
	From        int64  // unix second
	To          int64  // unix second
	TotalEvents int64
	TotalCount  int64

	GroupBy string         // "", "metric", "time"
	Groups  []MetricsGroup // per group breakdown
}

type MetricsGroup struct {
	Key         string // e.g. "visit" or "2025-12-07T10:00:00Z"
	TotalEvents int64
	TotalCount  int64
}
