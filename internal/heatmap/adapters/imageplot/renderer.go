package imageplot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"event-heatmap-service/internal/heatmap/core/aggregator"
	"event-heatmap-service/internal/heatmap/core/domain"
	"event-heatmap-service/internal/heatmap/core/ports"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNilWriter = errors.New("imageplot: nil writer")

// MaxGridSpan caps the cells drawn along i and k. The image grid is dense,
// so wider views need a coarser scale.
const MaxGridSpan = 4096

var ErrGridTooLarge = fmt.Errorf("%w: image grid wider than %d cells", aggregator.ErrInvalidConfiguration, MaxGridSpan)

// Renderer draws a top-down (i,k) heat map image of the bars.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
	Format string // any format accepted by plot.WriterTo, e.g. "png" or "svg"
	Colors int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 8 * vg.Inch, Height: 8 * vg.Inch, Format: "png", Colors: 16}
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

func (t *target) Draw(ctx context.Context, view *domain.HeatmapView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Heatmap %s", view.WorldID)
	if view.MetricID != "" {
		p.Title.Text += " / " + view.MetricID
	}
	p.X.Label.Text = "i"
	p.Y.Label.Text = "k"

	grid, err := projectColumns(view.Bars)
	if err != nil {
		return err
	}
	if grid != nil {
		hm := plotter.NewHeatMap(grid, palette.Heat(t.r.Colors, 1))
		hm.Min = 0
		hm.Max = grid.peak
		p.Add(hm)
	}

	wt, err := p.WriterTo(t.r.Width, t.r.Height, t.r.Format)
	if err != nil {
		return fmt.Errorf("create %s writer: %w", t.r.Format, err)
	}
	_, err = wt.WriteTo(t.w)
	return err
}

// columnGrid is a dense (k rows, i columns) matrix of summed amounts.
// It implements plotter.GridXYZ.
type columnGrid struct {
	m          *mat.Dense
	minI, minK int
	peak       float64
}

// projectColumns sums bars over the vertical axis. Returns nil for no bars.
func projectColumns(bars []domain.Bar) (*columnGrid, error) {
	if len(bars) == 0 {
		return nil, nil
	}

	minI, maxI := bars[0].Cell.I, bars[0].Cell.I
	minK, maxK := bars[0].Cell.K, bars[0].Cell.K
	for _, b := range bars[1:] {
		minI, maxI = min(minI, b.Cell.I), max(maxI, b.Cell.I)
		minK, maxK = min(minK, b.Cell.K), max(maxK, b.Cell.K)
	}

	// unsigned so cells at opposite extremes cannot overflow
	spanI, spanK := uint64(maxI)-uint64(minI), uint64(maxK)-uint64(minK)
	if spanI >= MaxGridSpan || spanK >= MaxGridSpan {
		return nil, fmt.Errorf("%w: i spans %d, k spans %d", ErrGridTooLarge, spanI+1, spanK+1)
	}

	g := &columnGrid{
		m:    mat.NewDense(maxK-minK+1, maxI-minI+1, nil),
		minI: minI,
		minK: minK,
	}
	for _, b := range bars {
		r, c := b.Cell.K-minK, b.Cell.I-minI
		v := g.m.At(r, c) + float64(b.Amount)
		g.m.Set(r, c, v)
		if v > g.peak {
			g.peak = v
		}
	}
	return g, nil
}

func (g *columnGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g *columnGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g *columnGrid) X(c int) float64 { return float64(g.minI + c) }

func (g *columnGrid) Y(r int) float64 { return float64(g.minK + r) }
