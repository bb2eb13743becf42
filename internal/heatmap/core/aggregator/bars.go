package aggregator

import (
	"sort"

	"event-heatmap-service/internal/heatmap/core/domain"
	"gonum.org/v1/gonum/stat"
)

// Bars turns the displayed bins into extruded columns in world space.
// A column stands on the point that quantizes back to its cell,
// (cell+offset)*scale, and rises intensity*scale.y.
func Bars(bins []domain.Bin, maxAmount int, offset, scale domain.Vec3) []domain.Bar {
	bars := make([]domain.Bar, 0, len(bins))
	for _, b := range bins {
		in := Intensity(b.Amount, maxAmount)
		if in == 0 {
			continue
		}
		bars = append(bars, domain.Bar{
			Cell:      b.Cell,
			Amount:    b.Amount,
			Intensity: in,
			Center: domain.Vec3{
				X: (float64(b.Cell.I) + offset.X) * scale.X,
				Y: (float64(b.Cell.J)+offset.Y)*scale.Y + scale.Y*0.5*in,
				Z: (float64(b.Cell.K) + offset.Z) * scale.Z,
			},
			Size: domain.Vec3{
				X: 0.5 * scale.X,
				Y: in * scale.Y,
				Z: 0.5 * scale.Z,
			},
		})
	}
	return bars
}

// Summarize reports distribution statistics over every bin of res.
func Summarize(res domain.AggregationResult, displayed int) domain.Summary {
	s := domain.Summary{
		Bins:      len(res.Bins),
		Displayed: displayed,
		MaxAmount: res.MaxAmount,
	}
	if len(res.Bins) == 0 {
		return s
	}

	amounts := make([]float64, 0, len(res.Bins))
	for _, a := range res.Bins {
		amounts = append(amounts, float64(a))
		s.Events += a
	}
	sort.Float64s(amounts)

	s.Mean, s.StdDev = stat.MeanStdDev(amounts, nil)
	if len(amounts) < 2 {
		s.StdDev = 0
	}
	s.P50 = stat.Quantile(0.5, stat.Empirical, amounts, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, amounts, nil)
	return s
}
