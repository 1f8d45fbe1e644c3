package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Sub(t *testing.T) {
	a := Point{4, 5, 6}
	b := Point{1, 2, 3}

	v, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, Vector{3, 3, 3}, v)

	_, err = a.Sub(Point{1, 2})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
}

func TestPoint_Equal(t *testing.T) {
	assert.True(t, Point{1, 2}.Equal(Point{1, 2}))
	assert.False(t, Point{1, 2}.Equal(Point{1, 2, 0}))
	assert.False(t, Point{1, 2}.Equal(Point{2, 1}))
}

func TestPoint_Embed(t *testing.T) {
	p := Point{1, 2}

	res := p.Embed(3)
	assert.Equal(t, Point{1, 2, 0}, res)
	assert.Equal(t, 3, res.Dimension())

	// original untouched
	res[0] = 10
	assert.Equal(t, Point{1, 2}, p)

	assert.Equal(t, Point{1, 2}, p.Embed(1))
}

func TestPoint_Finite(t *testing.T) {
	assert.True(t, Point{0, -1, 1e300}.Finite())
	assert.False(t, Point{0, math.NaN()}.Finite())
	assert.False(t, Point{math.Inf(-1)}.Finite())
}

func TestPoint_DistanceTo(t *testing.T) {
	dist, err := Point{1, 2, 3}.DistanceTo(Point{4, 5, 3})
	require.NoError(t, err)
	assert.InEpsilon(t, 4.24264, dist, .01)

	_, err = Point{1, 2}.DistanceTo(Point{1})
	assert.Error(t, err)
}
