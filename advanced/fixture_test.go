package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds every polygon element in the file, in
// document order, and names each one by its id. If anything goes wrong, it
// exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var result []Polygon
	for _, polygonEl := range polygonEls {
		pointStrings := strings.Fields(polygonEl.Attributes["points"])
		points := make([]Point, 0, len(pointStrings))
		for _, pointString := range pointStrings {
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pointStrings[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseFloat(pointStrings[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			points = append(points, Point{x, y})
		}
		result = append(result, Polygon{Name: polygonEl.Attributes["id"], Points: points})
	}
	return result
}

// Some ad hoc code specified fixtures
func UnitSquare() Polygon {
	return Polygon{Name: "unit", Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
}

func SimpleStar(cx, cy float64) Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)})
	}
	return Polygon{Name: "star", Points: points}
}

// Regular polygon with n sides, rotated by the given angle
func RegularPolygon(n int, radius, rotation float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := rotation + 2*math.Pi*float64(i)/float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return Polygon{Points: points}
}
