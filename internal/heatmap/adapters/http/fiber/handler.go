package fiber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"event-heatmap-service/internal/heatmap/core/aggregator"
	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"
	"event-heatmap-service/internal/heatmap/core/usecase"
	"event-heatmap-service/internal/httpquery"

	"github.com/gofiber/fiber/v2"
)

type BuildHeatmapUseCase interface {
	Execute(ctx context.Context, in usecase.BuildHeatmapInput) (*domain.HeatmapView, error)
	Render(ctx context.Context, in usecase.BuildHeatmapInput, target ports.RenderTarget) (*domain.HeatmapView, error)
}

type HeatmapHandler struct {
	uc       BuildHeatmapUseCase
	defaults domain.Settings
	chart    ports.RenderTargetProvider
	image    ports.RenderTargetProvider
}

// NewHeatmapHandler wires the handler. defaults fill in offset, scale and
// threshold when a request leaves them out.
func NewHeatmapHandler(uc BuildHeatmapUseCase, defaults domain.Settings, chart, image ports.RenderTargetProvider) *HeatmapHandler {
	return &HeatmapHandler{uc: uc, defaults: defaults, chart: chart, image: image}
}

// GetHeatmap godoc
// @Summary Build a heat map
// @Description Bins a world's events into a 3D grid and returns the bars above the display threshold
// @Tags Heatmap
// @Produce json
// @Param world_id query string true "World ID"
// @Param metric_id query string false "Metric ID"
// @Param from query int false "From timestamp (unix seconds)"
// @Param to query int false "To timestamp (unix seconds)"
// @Param offset query string false "Grid offset x,y,z"
// @Param scale query string false "Cell size x,y,z"
// @Param threshold query number false "Display threshold in [0,1)"
// @Success 200 {object} HeatmapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /heatmap [get]
func (h *HeatmapHandler) GetHeatmap(c *fiber.Ctx) error {
	in, err := h.parseInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	view, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeUseCaseError(c, err)
	}

	return c.Status(http.StatusOK).JSON(NewHeatmapResponse(view))
}

// GetHeatmapChart godoc
// @Summary Heat map as an interactive 3D bar chart
// @Tags Heatmap
// @Produce html
// @Param world_id query string true "World ID"
// @Param metric_id query string false "Metric ID"
// @Param from query int false "From timestamp (unix seconds)"
// @Param to query int false "To timestamp (unix seconds)"
// @Param offset query string false "Grid offset x,y,z"
// @Param scale query string false "Cell size x,y,z"
// @Param threshold query number false "Display threshold in [0,1)"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /heatmap/chart [get]
func (h *HeatmapHandler) GetHeatmapChart(c *fiber.Ctx) error {
	return h.render(c, h.chart, "text/html; charset=utf-8")
}

// GetHeatmapImage godoc
// @Summary Heat map as a top-down PNG image
// @Tags Heatmap
// @Produce png
// @Param world_id query string true "World ID"
// @Param metric_id query string false "Metric ID"
// @Param from query int false "From timestamp (unix seconds)"
// @Param to query int false "To timestamp (unix seconds)"
// @Param offset query string false "Grid offset x,y,z"
// @Param scale query string false "Cell size x,y,z"
// @Param threshold query number false "Display threshold in [0,1)"
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /heatmap/image [get]
func (h *HeatmapHandler) GetHeatmapImage(c *fiber.Ctx) error {
	return h.render(c, h.image, "image/png")
}

func (h *HeatmapHandler) render(c *fiber.Ctx, provider ports.RenderTargetProvider, contentType string) error {
	in, err := h.parseInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	var buf bytes.Buffer
	target, err := provider.AcquireRenderTarget(&buf)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	if _, err := h.uc.Render(c.UserContext(), in, target); err != nil {
		return writeUseCaseError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func writeUseCaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidHeatmapQuery),
		errors.Is(err, aggregator.ErrInvalidConfiguration):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func (h *HeatmapHandler) parseInput(c *fiber.Ctx) (usecase.BuildHeatmapInput, error) {
	in := usecase.BuildHeatmapInput{
		WorldID:  c.Query("world_id", ""),
		MetricID: c.Query("metric_id", ""),
		Settings: h.defaults,
	}
	if in.WorldID == "" {
		return in, errors.New("world_id is required")
	}

	var err error
	if s := c.Query("offset", ""); s != "" {
		if in.Settings.Offset, err = parseVec3(s); err != nil {
			return in, fmt.Errorf("invalid 'offset' parameter: %w", err)
		}
	}
	if s := c.Query("scale", ""); s != "" {
		if in.Settings.Scale, err = parseVec3(s); err != nil {
			return in, fmt.Errorf("invalid 'scale' parameter: %w", err)
		}
	}
	if s := c.Query("threshold", ""); s != "" {
		if in.Settings.DisplayThreshold, err = strconv.ParseFloat(s, 64); err != nil {
			return in, errors.New("invalid 'threshold' parameter")
		}
	}

	from, to, ok, err := httpquery.UnixRange(c)
	if err != nil {
		return in, err
	}
	if ok {
		in.Settings.TimeRange = &domain.TimeRange{
			Begin: time.Unix(from, 0).UTC(),
			End:   time.Unix(to, 0).UTC(),
		}
	}

	return in, nil
}

// parseVec3 reads "x,y,z".
func parseVec3(s string) (domain.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return domain.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return domain.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// NewHeatmapResponse maps a view to its JSON wire shape.
func NewHeatmapResponse(view *domain.HeatmapView) HeatmapResponse {
	s := view.Settings
	resp := HeatmapResponse{
		WorldID:          view.WorldID,
		MetricID:         view.MetricID,
		Offset:           vec(s.Offset),
		Scale:            vec(s.Scale),
		DisplayThreshold: s.DisplayThreshold,
		Summary: SummaryResponse{
			Events:    view.Summary.Events,
			Bins:      view.Summary.Bins,
			Displayed: view.Summary.Displayed,
			MaxAmount: view.Summary.MaxAmount,
			Mean:      view.Summary.Mean,
			StdDev:    view.Summary.StdDev,
			P50:       view.Summary.P50,
			P90:       view.Summary.P90,
		},
		Bars: make([]BarResponse, 0, len(view.Bars)),
	}
	if s.TimeRange != nil {
		resp.From = s.TimeRange.Begin.Unix()
		resp.To = s.TimeRange.End.Unix()
	}

	for _, b := range view.Bars {
		resp.Bars = append(resp.Bars, BarResponse{
			Cell:      CellResponse{I: b.Cell.I, J: b.Cell.J, K: b.Cell.K},
			Amount:    b.Amount,
			Intensity: b.Intensity,
			Center:    vec(b.Center),
			Size:      vec(b.Size),
		})
	}
	return resp
}

func vec(v domain.Vec3) Vec3Response {
	return Vec3Response{X: v.X, Y: v.Y, Z: v.Z}
}
