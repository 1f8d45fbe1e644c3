package measure

import (
	"errors"
	"fmt"
	"math"

	"github.com/mastercactapus/gspatial/coord"
)

// ErrContract is matched (errors.Is) by every ErrContractViolation.
var ErrContract = errors.New("contract violation")

// ErrContractViolation is returned when a computed measurement fails a
// postcondition. It always indicates a bug, never bad input.
type ErrContractViolation struct {
	Op     string
	Result float64
	Reason string
}

func (e *ErrContractViolation) Error() string {
	return fmt.Sprintf("%s: contract violation: %s (got %v)", e.Op, e.Reason, e.Result)
}

func (e *ErrContractViolation) Unwrap() error { return ErrContract }

var operandNames = [...]string{"point a", "point b", "point c", "point d"}

func embeddable(n int) bool { return n == 2 || n == 3 }

// requirePoints validates the inputs of a measurement and returns them
// ready for use. Mixed 2D/3D points are all embedded in 3D; any other
// difference in dimension is rejected.
func requirePoints(op string, pts ...coord.Point) ([]coord.Point, error) {
	mixed := false
	for i, p := range pts {
		if len(p) == 0 && i == 0 {
			return nil, &coord.ErrUnsupportedDimension{Op: op, Dimension: 0}
		}
		if len(p) == 0 {
			return nil, &coord.ErrDimensionMismatch{Op: op, Operand: operandNames[i], Expected: len(pts[0]), Actual: 0}
		}
		if !p.Finite() {
			return nil, fmt.Errorf("%s: %s: %w", op, operandNames[i], coord.ErrNonFinite)
		}
		if len(p) == len(pts[0]) {
			continue
		}
		if !embeddable(len(p)) || !embeddable(len(pts[0])) {
			return nil, &coord.ErrDimensionMismatch{Op: op, Operand: operandNames[i], Expected: len(pts[0]), Actual: len(p)}
		}
		mixed = true
	}
	if !mixed && !embeddable(len(pts[0])) {
		return pts, nil
	}

	res := make([]coord.Point, len(pts))
	for i, p := range pts {
		res[i] = p.Embed(3)
	}
	return res, nil
}

// ensureMeasure checks the result of a measurement before it is
// handed back to the caller.
func ensureMeasure(op string, val float64) error {
	switch {
	case math.IsNaN(val):
		return &ErrContractViolation{Op: op, Result: val, Reason: "result is not a number"}
	case math.IsInf(val, 0):
		return &ErrContractViolation{Op: op, Result: val, Reason: "result is not finite"}
	case val < 0:
		return &ErrContractViolation{Op: op, Result: val, Reason: "result is negative"}
	}
	return nil
}
