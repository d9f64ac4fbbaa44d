package advanced

import "math"

// Find the point where two segments cross, if they cross within their finite
// extents. This is the standard parametric line intersection:
//
//	A(ua) = a.Start + ua*(a.End-a.Start)
//	B(ub) = b.Start + ub*(b.End-b.Start)
//
// The denominator is the cross product of the two direction vectors. When it is
// (nearly) zero the segments are parallel or collinear, and we report nothing,
// even for overlapping collinear segments.
func (a Segment) Intersection(b Segment) (Point, bool) {
	x1, y1 := a.Start.X, a.Start.Y
	x2, y2 := a.End.X, a.End.Y
	x3, y3 := b.Start.X, b.Start.Y
	x4, y4 := b.End.X, b.End.Y

	denominator := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if math.Abs(denominator) < ParallelTolerance {
		return Point{}, false
	}

	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / denominator
	ub := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / denominator

	if !inParameterRange(ua) || !inParameterRange(ub) {
		return Point{}, false
	}

	return a.PointAt(ua), true
}

// Point at parametric position u, where 0 is the start and 1 is the end.
func (a Segment) PointAt(u float64) Point {
	return a.Start.Add(a.End.Sub(a.Start).Scale(u))
}

// Convenience wrapper for four loose points.
func FindIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	return Segment{p1, p2}.Intersection(Segment{p3, p4})
}
