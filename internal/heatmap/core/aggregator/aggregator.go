package aggregator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"event-heatmap-service/internal/heatmap/core/domain"
)

var ErrInvalidConfiguration = errors.New("invalid heatmap configuration")

// MaxCellIndex bounds |i|, |j| and |k|. Beyond it float64 no longer holds
// every integer and distinct positions would collapse into one cell.
const MaxCellIndex = 1 << 53

// Aggregate bins events into grid cells and counts hits per cell.
// Events outside tr (when non-nil) are skipped before binning.
func Aggregate(events []domain.Event, offset, scale domain.Vec3, tr *domain.TimeRange) (domain.AggregationResult, error) {
	if err := ValidateOffset(offset); err != nil {
		return domain.AggregationResult{}, err
	}
	if err := ValidateScale(scale); err != nil {
		return domain.AggregationResult{}, err
	}
	if err := ValidateTimeRange(tr); err != nil {
		return domain.AggregationResult{}, err
	}

	res := domain.AggregationResult{Bins: make(map[domain.Cell]int)}
	inv := domain.Vec3{X: 1 / scale.X, Y: 1 / scale.Y, Z: 1 / scale.Z}

	for i := range events {
		if tr != nil && !tr.Contains(events[i].Timestamp) {
			continue
		}
		cell, err := quantize(events[i].Position, offset, inv)
		if err != nil {
			return domain.AggregationResult{}, fmt.Errorf("event %q: %w", events[i].ID, err)
		}
		n := res.Bins[cell] + 1
		res.Bins[cell] = n
		if n > res.MaxAmount {
			res.MaxAmount = n
		}
	}

	return res, nil
}

// Quantize maps a position to its grid cell. Each axis is rounded to the
// nearest integer with ties going to the even neighbour.
func Quantize(p, offset, scale domain.Vec3) (domain.Cell, error) {
	if err := ValidateOffset(offset); err != nil {
		return domain.Cell{}, err
	}
	if err := ValidateScale(scale); err != nil {
		return domain.Cell{}, err
	}
	return quantize(p, offset, domain.Vec3{X: 1 / scale.X, Y: 1 / scale.Y, Z: 1 / scale.Z})
}

func quantize(p, offset, inv domain.Vec3) (domain.Cell, error) {
	var idx [3]int
	for a, v := range [3]float64{p.X*inv.X - offset.X, p.Y*inv.Y - offset.Y, p.Z*inv.Z - offset.Z} {
		r := math.RoundToEven(v)
		if math.IsNaN(r) || math.Abs(r) > MaxCellIndex {
			return domain.Cell{}, fmt.Errorf("%w: %c index %v is outside the grid", ErrInvalidConfiguration, "ijk"[a], r)
		}
		idx[a] = int(r)
	}
	return domain.Cell{I: idx[0], J: idx[1], K: idx[2]}, nil
}

func ValidateOffset(offset domain.Vec3) error {
	for i, v := range [3]float64{offset.X, offset.Y, offset.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: offset.%c must be finite, got %v", ErrInvalidConfiguration, "xyz"[i], v)
		}
	}
	return nil
}

func ValidateScale(scale domain.Vec3) error {
	axes := [3]float64{scale.X, scale.Y, scale.Z}
	for i, v := range axes {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: scale.%c must be finite and non-zero, got %v", ErrInvalidConfiguration, "xyz"[i], v)
		}
	}
	return nil
}

func ValidateTimeRange(tr *domain.TimeRange) error {
	if tr != nil && tr.Begin.After(tr.End) {
		return fmt.Errorf("%w: time range begins after it ends", ErrInvalidConfiguration)
	}
	return nil
}

func ValidateThreshold(t float64) error {
	if math.IsNaN(t) || t < 0 || t >= 1 {
		return fmt.Errorf("%w: display threshold must be in [0,1), got %v", ErrInvalidConfiguration, t)
	}
	return nil
}

// Intensity returns amount/max, or 0 when the result is empty.
func Intensity(amount, maxAmount int) float64 {
	if maxAmount <= 0 {
		return 0
	}
	return float64(amount) / float64(maxAmount)
}

// ApplyThreshold returns the bins whose intensity is strictly above
// threshold. MaxAmount of res is left untouched.
func ApplyThreshold(res domain.AggregationResult, threshold float64) []domain.Bin {
	if res.MaxAmount == 0 {
		return nil
	}
	out := make([]domain.Bin, 0, len(res.Bins))
	for cell, amount := range res.Bins {
		if Intensity(amount, res.MaxAmount) <= threshold {
			continue
		}
		out = append(out, domain.Bin{Cell: cell, Amount: amount})
	}
	SortBins(out)
	return out
}

// SortedBins lists every bin of res in cell order.
func SortedBins(res domain.AggregationResult) []domain.Bin {
	out := make([]domain.Bin, 0, len(res.Bins))
	for cell, amount := range res.Bins {
		out = append(out, domain.Bin{Cell: cell, Amount: amount})
	}
	SortBins(out)
	return out
}

func SortBins(bins []domain.Bin) {
	sort.Slice(bins, func(a, b int) bool {
		ca, cb := bins[a].Cell, bins[b].Cell
		if ca.I != cb.I {
			return ca.I < cb.I
		}
		if ca.J != cb.J {
			return ca.J < cb.J
		}
		return ca.K < cb.K
	})
}
