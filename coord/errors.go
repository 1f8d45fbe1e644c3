package coord

import (
	"errors"
	"fmt"
)

// ErrNonFinite is returned when a coordinate is NaN or infinite.
var ErrNonFinite = errors.New("coordinate is not finite")

// ErrDimensionMismatch indicates two operands of the same operation
// have a different number of components.
type ErrDimensionMismatch struct {
	Op       string
	Operand  string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: dimension mismatch on %s: expected %d, got %d", e.Op, e.Operand, e.Expected, e.Actual)
}

// ErrUnsupportedDimension indicates an operation is not defined
// for vectors of the given dimension.
type ErrUnsupportedDimension struct {
	Op        string
	Dimension int
}

func (e *ErrUnsupportedDimension) Error() string {
	return fmt.Sprintf("%s: unsupported dimension: %d", e.Op, e.Dimension)
}
