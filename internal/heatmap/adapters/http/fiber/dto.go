package fiber

type Vec3Response struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type CellResponse struct {
	I int `json:"i"`
	J int `json:"j"`
	K int `json:"k"`
}

type BarResponse struct {
	Cell      CellResponse `json:"cell"`
	Amount    int          `json:"amount"`
	Intensity float64      `json:"intensity"`
	Center    Vec3Response `json:"center"`
	Size      Vec3Response `json:"size"`
}

type SummaryResponse struct {
	Events    int     `json:"events"`
	Bins      int     `json:"bins"`
	Displayed int     `json:"displayed"`
	MaxAmount int     `json:"max_amount"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"stddev"`
	P50       float64 `json:"p50"`
	P90       float64 `json:"p90"`
}

type HeatmapResponse struct {
	WorldID          string          `json:"world_id"`
	MetricID         string          `json:"metric_id,omitempty"`
	Offset           Vec3Response    `json:"offset"`
	Scale            Vec3Response    `json:"scale"`
	From             int64           `json:"from,omitempty"`
	To               int64           `json:"to,omitempty"`
	DisplayThreshold float64         `json:"display_threshold"`
	Summary          SummaryResponse `json:"summary"`
	Bars             []BarResponse   `json:"bars"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"scale.x must be finite and non-zero"`
}
