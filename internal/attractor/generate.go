package attractor

import (
	"context"
	"iter"
	"math"
)

// CheckInterval is how many iterations GenerateContext runs between context checks.
const CheckInterval = 4096

// Point is one (x, y) sample of a trajectory.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// step applies the map once. The float64 conversions stop the compiler from
// fusing c*cos(..)+sin(..) into an FMA, which would change the low bits on
// some architectures.
func (p Params) step(x, y, s float64) (float64, float64) {
	cs := math.Cos(s)
	xNew := (math.Sin(p.A*y) + float64(p.C*math.Cos(p.A*x))) * cs
	yNew := (math.Sin(p.B*x) + float64(p.D*math.Cos(p.B*y))) * cs
	return xNew, yNew
}

// Generate returns the first n points of the default attractor as two
// positionally paired slices.
func Generate(n int) (xs, ys []float64, err error) {
	return DefaultParams().Generate(n)
}

// Calc is Generate under the name the attractor has historically been exposed as.
func Calc(n int) (xs, ys []float64, err error) {
	return Generate(n)
}

// Generate returns the first n points of the trajectory. Both slices have
// length n and the first point is (X0, Y0). n == 0 yields two empty slices.
func (p Params) Generate(n int) (xs, ys []float64, err error) {
	return p.GenerateContext(context.Background(), n)
}

// GenerateContext is Generate with cancellation. The context is polled every
// CheckInterval iterations; on cancellation no partial result is returned.
func (p Params) GenerateContext(ctx context.Context, n int) (xs, ys []float64, err error) {
	if err := CheckCount(n); err != nil {
		return nil, nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	x, y, s := p.X0, p.Y0, p.S0
	for i := 0; i < n; i++ {
		if i%CheckInterval == 0 && i > 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		xs[i] = x
		ys[i] = y
		x, y = p.step(x, y, s)
		s += p.SD
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// Points returns a lazy, restartable sequence over the first n points.
// Each range over the result starts again from (X0, Y0). A negative n or
// invalid parameters yield an empty sequence; use CheckCount and Validate
// when the caller needs the reason.
func (p Params) Points(n int) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		if CheckCount(n) != nil || p.Validate() != nil {
			return
		}
		x, y, s := p.X0, p.Y0, p.S0
		for i := 0; i < n; i++ {
			if !yield(i, Point{X: x, Y: y}) {
				return
			}
			x, y = p.step(x, y, s)
			s += p.SD
		}
	}
}

// Pairs zips two coordinate slices into points. The slices must have equal length.
func Pairs(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, errLengthMismatch(len(xs), len(ys))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}
