// Segment and polygon edge intersection for Go.
//
// This package finds the point where two line segments cross, and collects
// every crossing between the edges of two closed polygons. Coordinates go in
// and come out as flat float64 sequences, x then y, which is what rendering
// hosts usually have on hand.
package intersections

import "github.com/osuushi/intersections/advanced"

type Point = advanced.Point
type Polygon = advanced.Polygon
type InputError = advanced.InputError

// Find the intersection of segment (x1, y1)-(x2, y2) with segment (x3, y3)-(x4,
// y4). The second return value is false when the segments are parallel,
// collinear, or cross outside of either segment. Crossings exactly at an
// endpoint count.
func FindIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (Point, bool) {
	return advanced.FindIntersection(
		Point{X: x1, Y: y1},
		Point{X: x2, Y: y2},
		Point{X: x3, Y: y3},
		Point{X: x4, Y: y4},
	)
}

// Find every crossing between the edges of two polygons.
//
// Each polygon is a flat sequence where values 2k and 2k+1 are the x and y of
// vertex k, and the last vertex connects back to the first. Both sequences must
// have an even length of at least four, and every value must be finite;
// otherwise an *InputError is returned.
//
// The result is flat as well, in discovery order: for each edge of the first
// polygon, crossings with the edges of the second polygon in order. Duplicates
// are not removed. No crossings gives an empty, non-nil slice.
func FindAllIntersections(verticesA, verticesB []float64) (result []float64, err error) {
	defer func() {
		recoveredErr := advanced.HandleIntersectPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ScanFlat(verticesA, verticesB), nil
}
