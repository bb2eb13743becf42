package fiber

type MetricsGroupResponse struct {
	Key         string `json:"key"`
	TotalEvents int64  `json:"total_events"`
	TotalCount  int64  `json:"total_count"`
}

type MetricsResponse struct {
	WorldID     string                 `json:"world_id"`
	MetricID    string                 `json:"metric_id,omitempty"`
	From        int64                  `json:"from"`
	To          int64                  `json:"to"`
	TotalEvents int64                  `json:"total_events"`
	TotalCount  int64                  `json:"total_count"`
	GroupBy     string                 `json:"group_by,omitempty"`
	Groups      []MetricsGroupResponse `json:"groups,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time range"`
}
