package advanced

// The scan runs a tight double loop and has nothing useful to do with an error
// halfway through, so precondition failures panic with an IntersectError, and
// the public API recovers to convert to an error. Any other panic is a real bug
// and is allowed to propagate.

type IntersectError struct {
	cause error
}

func (e IntersectError) Error() string {
	return e.cause.Error()
}

func (e IntersectError) Cause() error {
	return e.cause
}

func (e IntersectError) Unwrap() error {
	return e.cause
}

// Panic with an IntersectError.
func fatal(err error) {
	panic(IntersectError{err})
}

func HandleIntersectPanicRecover(r interface{}) error {
	if r != nil {
		if intersectError, ok := r.(IntersectError); ok {
			return intersectError.cause
		}
		panic(r)
	}
	return nil
}
