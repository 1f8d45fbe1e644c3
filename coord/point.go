package coord

import (
	"math"
)

// Point is a location in n-dimensional space. Its dimension is the
// number of coordinates.
type Point []float64

func (p Point) Dimension() int { return len(p) }

func (p Point) Equal(b Point) bool {
	if len(p) != len(b) {
		return false
	}
	for i := range p {
		if p[i] != b[i] {
			return false
		}
	}
	return true
}

// Finite returns true if every coordinate is a real number.
func (p Point) Finite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sub will return the displacement from target to p.
func (p Point) Sub(target Point) (Vector, error) {
	if len(p) != len(target) {
		return nil, &ErrDimensionMismatch{Op: "sub", Operand: "target", Expected: len(p), Actual: len(target)}
	}
	v := make(Vector, len(p))
	for i := range p {
		v[i] = p[i] - target[i]
	}
	return v, nil
}

// Embed returns a copy of p padded with trailing zeros up to n dimensions.
// Points that already have n or more coordinates are copied as-is.
func (p Point) Embed(n int) Point {
	if n < len(p) {
		n = len(p)
	}
	res := make(Point, n)
	copy(res, p)
	return res
}

// DistanceTo will return the Euclidean distance to p from target.
func (p Point) DistanceTo(target Point) (float64, error) {
	v, err := FromPoints(p, target)
	if err != nil {
		return 0, err
	}
	return v.Magnitude(), nil
}
