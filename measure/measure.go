// Package measure computes areas and volumes of simplices from their
// vertices.
//
// Points may be 2D or 3D, and the two may be mixed in one call: 2D points
// are treated as lying in the Z = 0 plane. Any other mix of dimensions is
// rejected with a *coord.ErrDimensionMismatch.
package measure

import (
	"math"

	"github.com/mastercactapus/gspatial/coord"
)

// AreaTriangle returns the area of the triangle with vertices a, b and c.
//
// Collinear vertices give an area of 0.
func AreaTriangle(a, b, c coord.Point) (float64, error) {
	const op = "area triangle"

	pts, err := requirePoints(op, a, b, c)
	if err != nil {
		return 0, err
	}

	ab, err := coord.FromPoints(pts[0], pts[1])
	if err != nil {
		return 0, err
	}
	ac, err := coord.FromPoints(pts[0], pts[2])
	if err != nil {
		return 0, err
	}
	cp, err := ab.Cross(ac)
	if err != nil {
		return 0, err
	}

	area := 0.5 * cp.Magnitude()
	if err = ensureMeasure(op, area); err != nil {
		return 0, err
	}
	return area, nil
}

// VolumeTetrahedron returns the volume of the tetrahedron with vertices
// a, b, c and d. The result does not depend on vertex order.
//
// Coplanar vertices give a volume of 0.
func VolumeTetrahedron(a, b, c, d coord.Point) (float64, error) {
	const op = "volume tetrahedron"

	pts, err := requirePoints(op, a, b, c, d)
	if err != nil {
		return 0, err
	}

	ab, err := coord.FromPoints(pts[0], pts[1])
	if err != nil {
		return 0, err
	}
	ac, err := coord.FromPoints(pts[0], pts[2])
	if err != nil {
		return 0, err
	}
	ad, err := coord.FromPoints(pts[0], pts[3])
	if err != nil {
		return 0, err
	}
	cp, err := ac.Cross(ad)
	if err != nil {
		return 0, err
	}
	triple, err := ab.Dot(cp)
	if err != nil {
		return 0, err
	}

	vol := math.Abs(triple) / 6
	if err = ensureMeasure(op, vol); err != nil {
		return 0, err
	}
	return vol, nil
}

// Triangle is a triangle given by its three vertices.
type Triangle struct{ A, B, C coord.Point }

// Area returns the area of t. See AreaTriangle.
func (t Triangle) Area() (float64, error) {
	return AreaTriangle(t.A, t.B, t.C)
}

// Tetrahedron is a tetrahedron given by its four vertices.
type Tetrahedron struct{ A, B, C, D coord.Point }

// Volume returns the volume of t. See VolumeTetrahedron.
func (t Tetrahedron) Volume() (float64, error) {
	return VolumeTetrahedron(t.A, t.B, t.C, t.D)
}
