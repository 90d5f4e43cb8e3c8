package attractor

import (
	"fmt"
	"math"
)

// Summary describes the extent of a trajectory.
type Summary struct {
	Count int     `json:"count"`
	MinX  float64 `json:"min_x"`
	MaxX  float64 `json:"max_x"`
	MinY  float64 `json:"min_y"`
	MaxY  float64 `json:"max_y"`
	MeanX float64 `json:"mean_x"`
	MeanY float64 `json:"mean_y"`
}

func errLengthMismatch(nx, ny int) error {
	return fmt.Errorf("%w: xs has %d values but ys has %d", ErrInvalidArgument, nx, ny)
}

// Summarize computes bounds and means of a trajectory. An empty trajectory
// yields the zero Summary.
func Summarize(xs, ys []float64) (Summary, error) {
	if len(xs) != len(ys) {
		return Summary{}, errLengthMismatch(len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Summary{}, nil
	}

	sum := Summary{
		Count: len(xs),
		MinX:  math.Inf(1),
		MaxX:  math.Inf(-1),
		MinY:  math.Inf(1),
		MaxY:  math.Inf(-1),
	}
	var tx, ty float64
	for i := range xs {
		x, y := xs[i], ys[i]
		sum.MinX = math.Min(sum.MinX, x)
		sum.MaxX = math.Max(sum.MaxX, x)
		sum.MinY = math.Min(sum.MinY, y)
		sum.MaxY = math.Max(sum.MaxY, y)
		tx += x
		ty += y
	}
	sum.MeanX = tx / float64(len(xs))
	sum.MeanY = ty / float64(len(ys))
	return sum, nil
}

// Contains reports whether every point lies inside the square [-r, r] x [-r, r].
func (s Summary) Contains(r float64) bool {
	if s.Count == 0 {
		return true
	}
	return s.MinX >= -r && s.MaxX <= r && s.MinY >= -r && s.MaxY <= r
}
