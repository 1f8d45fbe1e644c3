package coord

import (
	"math"
)

// Vector is a directed displacement in n-dimensional space.
type Vector []float64

// FromPoints returns the vector from p to q (q - p).
func FromPoints(p, q Point) (Vector, error) {
	if len(p) != len(q) {
		return nil, &ErrDimensionMismatch{Op: "from points", Operand: "q", Expected: len(p), Actual: len(q)}
	}
	return q.Sub(p)
}

func (v Vector) Dimension() int { return len(v) }

// Dot returns the inner product of v and op.
func (v Vector) Dot(op Vector) (float64, error) {
	if len(v) != len(op) {
		return 0, &ErrDimensionMismatch{Op: "dot", Operand: "op", Expected: len(v), Actual: len(op)}
	}
	var sum float64
	for i := range v {
		sum += v[i] * op[i]
	}
	return sum, nil
}

// Magnitude returns the Euclidean norm of v.
//
// Components are scaled by the largest one before squaring so the
// result only overflows when the norm itself does.
func (v Vector) Magnitude() float64 {
	var scale float64
	for _, c := range v {
		scale = math.Max(scale, math.Abs(c))
	}
	if scale == 0 || math.IsInf(scale, 1) {
		return scale
	}

	var sum float64
	for _, c := range v {
		c /= scale
		sum += c * c
	}
	return scale * math.Sqrt(sum)
}

func crossable(n int) bool { return n == 2 || n == 3 }

// Cross returns the cross product of v and op as a 3D vector.
//
// Both operands must be 2D or 3D. A 2D operand is treated as lying in
// the XY plane (Z = 0), so the cross of two 2D vectors is (0, 0, z).
func (v Vector) Cross(op Vector) (Vector, error) {
	if len(v) != len(op) && !(crossable(len(v)) && crossable(len(op))) {
		return nil, &ErrDimensionMismatch{Op: "cross", Operand: "op", Expected: len(v), Actual: len(op)}
	}
	if !crossable(len(v)) {
		return nil, &ErrUnsupportedDimension{Op: "cross", Dimension: len(v)}
	}
	a := Point(v).Embed(3)
	b := Point(op).Embed(3)

	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// CrossZ returns the scalar cross product of two 2D vectors, the Z
// component of their cross product in 3D.
func (v Vector) CrossZ(op Vector) (float64, error) {
	if len(v) != 2 {
		return 0, &ErrUnsupportedDimension{Op: "cross z", Dimension: len(v)}
	}
	if len(op) != 2 {
		return 0, &ErrDimensionMismatch{Op: "cross z", Operand: "op", Expected: 2, Actual: len(op)}
	}
	return v[0]*op[1] - v[1]*op[0], nil
}
