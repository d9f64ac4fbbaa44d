package advanced

import "math"

// The tolerance and the parameter range are the only numerical judgment calls
// in the system.
const (
	// If the cross product of two segment directions is smaller than this, the
	// segments are treated as parallel, and never intersect.
	ParallelTolerance = 1e-10

	// The parametric range of a segment, inclusive at both ends. Crossings that
	// land exactly on an endpoint are reported.
	MinParameter = 0.0
	MaxParameter = 1.0

	// A flat vertex sequence needs at least two vertices.
	MinFlatLength = 4
)

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func inParameterRange(u float64) bool {
	return u >= MinParameter && u <= MaxParameter
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}
