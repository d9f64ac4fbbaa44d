package advanced

// Scanning is a brute force cross product of the two edge sets. Every edge of
// a is tested against every edge of b, with no bounding box or spatial
// pruning, so the cost is O(|a| * |b|). This is fine for the small polygons
// this is meant for.
//
// Results come out in discovery order: outer edge index (a) first, then inner
// edge index (b). Callers may depend on that order, so don't change the loop
// nesting. Points are not deduplicated; two edges crossing at a shared vertex
// will report that vertex twice.

// Call fn for every crossing, in discovery order. If fn returns false, the scan
// stops early.
func ScanEach(a, b Polygon, fn func(Crossing) bool) {
	edgesA := a.Edges()
	edgesB := b.Edges()
	for i, edgeA := range edgesA {
		for j, edgeB := range edgesB {
			point, ok := edgeA.Intersection(edgeB)
			if !ok {
				continue
			}
			if !fn(Crossing{Point: point, EdgeA: i, EdgeB: j}) {
				return
			}
		}
	}
}

func Scan(a, b Polygon) IntersectionList {
	result := IntersectionList{}
	ScanEach(a, b, func(c Crossing) bool {
		result = append(result, c.Point)
		return true
	})
	return result
}

// Like Scan, but keeps the edge indexes for each crossing.
func ScanCrossings(a, b Polygon) []Crossing {
	var result []Crossing
	ScanEach(a, b, func(c Crossing) bool {
		result = append(result, c)
		return true
	})
	return result
}

// Check whether any edge of a crosses any edge of b. Stops at the first
// crossing.
func Intersects(a, b Polygon) bool {
	found := false
	ScanEach(a, b, func(Crossing) bool {
		found = true
		return false
	})
	return found
}

// Scan two flat vertex sequences and return the flat intersection sequence, x
// then y for each point. Invalid input panics with an IntersectError; use
// HandleIntersectPanicRecover to turn that into an error.
func ScanFlat(a, b []float64) []float64 {
	polyA := mustPolygonFromFlat("a", a)
	polyB := mustPolygonFromFlat("b", b)
	return Scan(polyA, polyB).Flatten()
}
