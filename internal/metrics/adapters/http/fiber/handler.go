package fiber

import (
	"context"
	"errors"
	"net/http"

	"event-heatmap-service/internal/httpquery"
	"event-heatmap-service/internal/metrics/core/domain"
	"event-heatmap-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*domain.AggregatedMetrics, error)
}

type MetricsHandler struct {
	uc GetMetricsUseCase
}

func NewMetricsHandler(uc GetMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// GetMetrics godoc
// @Summary Query aggregated metrics
// @Description Returns event totals of a world, optionally grouped by metric or time bucket
// @Tags Metrics
// @Accept json
// @Produce json
// @Param world_id query string true "World id"
// @Param metric_id query string false "Metric id"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param group_by query string false "Group by: metric | time"
// @Param interval query string false "Interval: hour | day"
// @Success 200 {object} MetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	in, err := parseInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeUseCaseError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

func parseInput(c *fiber.Ctx) (usecase.GetMetricsInput, error) {
	in := usecase.GetMetricsInput{
		WorldID:  c.Query("world_id", ""),
		MetricID: httpquery.OptionalString(c, "metric_id"),
		GroupBy:  c.Query("group_by", ""),
		Interval: c.Query("interval", ""),
	}
	if in.WorldID == "" {
		return in, errors.New("world_id is required")
	}

	from, to, ok, err := httpquery.UnixRange(c)
	if err != nil {
		return in, err
	}
	if !ok {
		return in, errors.New("from and to are required")
	}
	in.From, in.To = from, to
	return in, nil
}

func writeUseCaseError(c *fiber.Ctx, err error) error {
	if usecase.IsValidationError(err) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func toResponse(res *domain.AggregatedMetrics) MetricsResponse {
	resp := MetricsResponse{
		WorldID:     res.WorldID,
		MetricID:    res.MetricID,
		From:        res.From,
		To:          res.To,
		TotalEvents: res.TotalEvents,
		TotalCount:  res.TotalCount,
		GroupBy:     res.GroupBy,
		Groups:      make([]MetricsGroupResponse, 0, len(res.Groups)),
	}
	for _, g := range res.Groups {
		resp.Groups = append(resp.Groups, MetricsGroupResponse{
			Key:         g.Key,
			TotalEvents: g.TotalEvents,
			TotalCount:  g.TotalCount,
		})
	}
	return resp
}
