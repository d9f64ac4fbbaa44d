package advanced

// Points are plain values. Nothing in this package keeps a reference to a
// point after a call returns, so they can be copied freely.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

// A polygon is an ordered list of vertices. It is implicitly closed: the last
// vertex connects back to the first. The name is only used for diagnostics.
type Polygon struct {
	Name   string
	Points []Point
}

// Intersection points in the order they were discovered by a scan.
type IntersectionList []Point

// A single crossing found during a scan, along with the indexes of the edges
// that produced it. EdgeA indexes the first polygon's edges, EdgeB the second.
type Crossing struct {
	Point        Point
	EdgeA, EdgeB int
}
