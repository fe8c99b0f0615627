package solver

import "errors"

var (
	// ErrOutOfBounds is returned when a cell outside the board is
	// passed to an operation that needs in-bounds coordinates.
	ErrOutOfBounds = errors.New("cell out of board bounds")

	// ErrContradiction is returned when the knowledge base is fed
	// observations that cannot all be true, e.g. two sentences over
	// the same cells with different mine counts.
	ErrContradiction = errors.New("contradictory knowledge")
)

// AssertionError signals a broken internal invariant. It is panicked,
// not returned: state is corrupt and must not be reasoned with.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
