package polyio

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/intersections/advanced"
	"github.com/pkg/errors"
)

// Read every <polygon> element of an SVG document, in document order. Each
// polygon is named after its id attribute, if it has one. This is not a full
// SVG reader: transforms, paths and other shapes are ignored.
func ReadSVG(in io.Reader) ([]advanced.Polygon, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var polygons []advanced.Polygon
	for i, polygonEl := range rootEl.FindAll("polygon") {
		name := polygonEl.Attributes["id"]
		flat, err := ParseFlat(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d points", i)
		}
		poly, err := advanced.PolygonFromFlat(name, flat)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, poly)
	}
	return polygons, nil
}
