package echarts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// viridis, low to high
var palette = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

var ErrNilWriter = errors.New("echarts: nil writer")

// Renderer draws heat maps as an interactive 3D bar chart page.
type Renderer struct {
	Theme      string
	AssetsHost string // empty uses the go-echarts default CDN
}

func NewRenderer() *Renderer {
	return &Renderer{Theme: "dark"}
}

var _ ports.RenderTargetProvider = (*Renderer)(nil)

func (r *Renderer) AcquireRenderTarget(w io.Writer) (ports.RenderTarget, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &target{w: w, r: r}, nil
}

type target struct {
	w io.Writer
	r *Renderer
}

type column struct {
	i, k   int
	amount int
}

// Draw writes the chart page. Layers along the vertical axis are summed
// into one column per (i,k) since the chart has a single height value.
func (t *target) Draw(ctx context.Context, view *domain.HeatmapView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	byColumn := make(map[[2]int]int, len(view.Bars))
	for _, b := range view.Bars {
		byColumn[[2]int{b.Cell.I, b.Cell.K}] += b.Amount
	}
	cols := make([]column, 0, len(byColumn))
	peak := 0
	for key, amount := range byColumn {
		cols = append(cols, column{i: key[0], k: key[1], amount: amount})
		if amount > peak {
			peak = amount
		}
	}
	sort.Slice(cols, func(a, b int) bool {
		if cols[a].i != cols[b].i {
			return cols[a].i < cols[b].i
		}
		return cols[a].k < cols[b].k
	})

	data := make([]opts.Chart3DData, 0, len(cols))
	for _, c := range cols {
		data = append(data, opts.Chart3DData{
			Name:  fmt.Sprintf("(%d, %d)", c.i, c.k),
			Value: []interface{}{c.i, c.k, c.amount},
		})
	}

	title := fmt.Sprintf("Heatmap %s", view.WorldID)
	if view.MetricID != "" {
		title += " / " + view.MetricID
	}

	bar := charts.NewBar3D()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: t.r.Theme, Width: "1000px", Height: "800px", AssetsHost: t.r.AssetsHost}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("events=%d bins=%d shown=%d max=%d", view.Summary.Events, view.Summary.Bins, view.Summary.Displayed, view.Summary.MaxAmount),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "i"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "k"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "events"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(peak),
			InRange:    &opts.VisualMapInRange{Color: palette},
		}),
	)
	bar.AddSeries("bins", data)

	return bar.Render(t.w)
}
