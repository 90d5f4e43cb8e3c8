// Package attractor generates trajectories of the Clifford strange attractor.
//
// The map iterated here is the Clifford map with a slowly drifting damping term:
//
//	x' = (sin(a*y) + c*cos(a*x)) * cos(s)
//	y' = (sin(b*x) + d*cos(b*y)) * cos(s)
//	s' = s + sd
//
// Every trajectory starts at (X0, Y0) and the first recorded point is always the
// starting point: values are recorded before each update.
//
// Usage:
//
//	xs, ys, err := attractor.Generate(100_000)
//
//	p := attractor.DefaultParams()
//	p.C = -1.7
//	for i, pt := range p.Points(10) {
//	    fmt.Println(i, pt.X, pt.Y)
//	}
package attractor

import (
	"fmt"
	"math"
)

// Default shape coefficients.
const (
	DefaultA  = -1.3
	DefaultB  = -1.3
	DefaultC  = -1.8
	DefaultD  = -1.9
	DefaultSD = 0.007
	DefaultS0 = 0.007
)

// Params holds the coefficients and initial state of one attractor.
type Params struct {
	A  float64 // x-phase coefficient
	B  float64 // y-phase coefficient
	C  float64 // x-amplitude coefficient
	D  float64 // y-amplitude coefficient
	SD float64 // per-step increment of s

	S0 float64 // initial s
	X0 float64
	Y0 float64
}

// DefaultParams returns the classic parameter set.
func DefaultParams() Params {
	return Params{
		A:  DefaultA,
		B:  DefaultB,
		C:  DefaultC,
		D:  DefaultD,
		SD: DefaultSD,
		S0: DefaultS0,
	}
}

// Validate rejects coefficients that would poison the trajectory with NaN or Inf.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"a", p.A}, {"b", p.B}, {"c", p.C}, {"d", p.D},
		{"sd", p.SD}, {"s0", p.S0}, {"x0", p.X0}, {"y0", p.Y0},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: parameter %s must be finite, got %v", ErrInvalidArgument, f.name, f.v)
		}
	}
	return nil
}

// String renders the coefficients compactly for logs.
func (p Params) String() string {
	return fmt.Sprintf("a=%g b=%g c=%g d=%g sd=%g s0=%g start=(%g,%g)",
		p.A, p.B, p.C, p.D, p.SD, p.S0, p.X0, p.Y0)
}
