// Package polyio reads polygons from the formats the command line tool
// accepts, and writes scan results back out.
package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/intersections/advanced"
	"github.com/pkg/errors"
)

// Read polygons in the line format: newline separated points in the form "x
// y", with each polygon separated by an extra newline. Lines starting with "#"
// are comments.
func ReadLines(in io.Reader) ([]advanced.Polygon, error) {
	polygons := []advanced.Polygon{}
	scanner := bufio.NewScanner(in)
	var points []advanced.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.Polygon{Points: points})
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Parse a flat coordinate list such as "0,0 1,0 1,1" or "0 0 1 0 1 1". Commas
// and whitespace are interchangeable.
func ParseFlat(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	flat := make([]float64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		flat = append(flat, v)
	}
	return flat, nil
}

// Format a flat sequence as space separated "x,y" pairs. An odd trailing value
// is written on its own.
func FormatFlat(flat []float64) string {
	var sb strings.Builder
	for i := 0; i < len(flat); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(flat[i], 'g', -1, 64))
		if i+1 < len(flat) {
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(flat[i+1], 'g', -1, 64))
		}
	}
	return sb.String()
}
