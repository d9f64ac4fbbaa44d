package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Returned when a flat vertex sequence breaks the input rules: an even number
// of values, at least MinFlatLength of them, and every value finite.
type InputError struct {
	// Name of the polygon, if the caller gave it one
	Polygon string
	// Index of the offending value, or -1 if the length is the problem
	Index  int
	Reason string
}

func (e *InputError) Error() string {
	subject := "vertex sequence"
	if e.Polygon != "" {
		subject = fmt.Sprintf("vertex sequence %q", e.Polygon)
	}
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", subject, e.Reason)
	}
	return fmt.Sprintf("invalid %s at index %d: %s", subject, e.Index, e.Reason)
}

func ValidateFlat(name string, flat []float64) error {
	if len(flat)%2 != 0 {
		return errors.WithStack(&InputError{
			Polygon: name,
			Index:   -1,
			Reason:  fmt.Sprintf("odd length %d, coordinates must come in x,y pairs", len(flat)),
		})
	}
	if len(flat) < MinFlatLength {
		return errors.WithStack(&InputError{
			Polygon: name,
			Index:   -1,
			Reason:  fmt.Sprintf("length %d, need at least %d values (two vertices)", len(flat), MinFlatLength),
		})
	}
	for i, v := range flat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.WithStack(&InputError{
				Polygon: name,
				Index:   i,
				Reason:  fmt.Sprintf("non-finite coordinate %v", v),
			})
		}
	}
	return nil
}
