package polyio

import (
	"io"

	"github.com/osuushi/intersections/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A batch document lists polygon pairs to scan:
//
//	pairs:
//	  - name: roof
//	    a: [0, 0, 1, 0, 1, 1, 0, 1]
//	    b: [0.5, 0.5, 1.5, 0.5, 1.5, 1.5, 0.5, 1.5]
type BatchFile struct {
	Pairs []Pair `yaml:"pairs"`
}

type Pair struct {
	Name string    `yaml:"name,omitempty"`
	A    []float64 `yaml:"a,flow"`
	B    []float64 `yaml:"b,flow"`
}

// The result of scanning one pair. Error is set instead of Intersections when
// the pair's input was invalid.
type PairReport struct {
	Name          string    `yaml:"name,omitempty"`
	Count         int       `yaml:"count"`
	Intersections []float64 `yaml:"intersections,flow"`
	Error         string    `yaml:"error,omitempty"`
}

type Report struct {
	Pairs []PairReport `yaml:"pairs"`
}

func ReadBatch(in io.Reader) (*BatchFile, error) {
	var batch BatchFile
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	if err := decoder.Decode(&batch); err != nil {
		if err == io.EOF {
			return &batch, nil
		}
		return nil, errors.Wrap(err, "decoding batch")
	}
	return &batch, nil
}

// Polygons builds the pair's two polygons, validating both.
func (p Pair) Polygons() (a, b advanced.Polygon, err error) {
	a, err = advanced.PolygonFromFlat("a", p.A)
	if err != nil {
		return
	}
	b, err = advanced.PolygonFromFlat("b", p.B)
	return
}

func WriteReport(out io.Writer, report *Report) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return errors.Wrap(encoder.Close(), "encoding report")
}
