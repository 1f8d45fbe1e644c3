package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/mastercactapus/gspatial/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMeasure(t *testing.T) {
	assert.NoError(t, ensureMeasure("test", 0))
	assert.NoError(t, ensureMeasure("test", 12.5))

	tests := []struct {
		name   string
		val    float64
		reason string
	}{
		{"Negative", -1, "result is negative"},
		{"NaN", math.NaN(), "result is not a number"},
		{"Inf", math.Inf(1), "result is not finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureMeasure("test", tt.val)
			var cv *ErrContractViolation
			require.ErrorAs(t, err, &cv)
			assert.Equal(t, tt.reason, cv.Reason)
			assert.True(t, errors.Is(err, ErrContract))
		})
	}
}

func TestRequirePoints(t *testing.T) {
	pts, err := requirePoints("test", coord.Point{1, 2}, coord.Point{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []coord.Point{{1, 2, 0}, {3, 4, 5}}, pts)

	pts, err = requirePoints("test", coord.Point{1, 2}, coord.Point{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []coord.Point{{1, 2, 0}, {3, 4, 0}}, pts)

	// no embedding outside of 2D/3D
	in := []coord.Point{{1, 2, 3, 4}, {5, 6, 7, 8}}
	pts, err = requirePoints("test", in...)
	require.NoError(t, err)
	assert.Equal(t, in, pts)

	var dm *coord.ErrDimensionMismatch
	_, err = requirePoints("test", coord.Point{1, 2, 3}, coord.Point{1, 2, 3}, coord.Point{1, 2, 3, 4})
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, "point c", dm.Operand)
	assert.Equal(t, "test: dimension mismatch on point c: expected 3, got 4", err.Error())
}
