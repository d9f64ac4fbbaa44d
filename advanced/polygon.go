package advanced

// Build a polygon from a flat coordinate sequence, where values 2k and 2k+1 are
// the x and y of vertex k.
func PolygonFromFlat(name string, flat []float64) (Polygon, error) {
	if err := ValidateFlat(name, flat); err != nil {
		return Polygon{}, err
	}
	points := make([]Point, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		points = append(points, Point{flat[i], flat[i+1]})
	}
	return Polygon{Name: name, Points: points}, nil
}

func mustPolygonFromFlat(name string, flat []float64) Polygon {
	poly, err := PolygonFromFlat(name, flat)
	if err != nil {
		fatal(err)
	}
	return poly
}

// Edge i runs from vertex i to vertex i+1, and the last edge wraps around to
// the first vertex. A polygon with n vertices always has n edges, so a two
// vertex "polygon" has the same segment twice, once in each direction.
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{
		Start: poly.Points[CircularIndex(i, n)],
		End:   poly.Points[CircularIndex(i+1, n)],
	}
}

func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly.Points))
	for i := range poly.Points {
		edges[i] = poly.Edge(i)
	}
	return edges
}

func (poly Polygon) Flatten() []float64 {
	flat := make([]float64, 0, 2*len(poly.Points))
	for _, p := range poly.Points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Name: poly.Name}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shift every vertex by the given offset. Handy for building overlapping
// copies of a shape.
func (poly Polygon) Translate(offset Point) Polygon {
	newPoly := Polygon{Name: poly.Name, Points: make([]Point, len(poly.Points))}
	for i, p := range poly.Points {
		newPoly.Points[i] = p.Add(offset)
	}
	return newPoly
}

// Always returns a non-nil slice, so that "no intersections" is an empty
// sequence rather than a missing one.
func (list IntersectionList) Flatten() []float64 {
	flat := make([]float64, 0, 2*len(list))
	for _, p := range list {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}
