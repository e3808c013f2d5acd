package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchScalarMultMatchesSequential(t *testing.T) {
	c, err := NewParams(4, 4, 313)
	require.NoError(t, err)

	p := NewPoint(205, 130)
	scalars := make([]int64, 10)
	points := make([]Point, 10)
	for i := range scalars {
		scalars[i] = int64(i)
		points[i] = p
	}

	result := c.BatchScalarMult(scalars, points, 3)
	require.True(t, result.OK)
	assert.Empty(t, result.FailedIndices)
	assert.Equal(t, len(points), result.TotalChecked)

	for i, scalar := range scalars {
		want, err := c.ScalarMult(scalar, p)
		require.NoError(t, err)
		assert.True(t, result.Points[i].Equal(want), "index %d: got %v, want %v", i, result.Points[i], want)
	}
}

func TestBatchScalarMultDefaultWorkers(t *testing.T) {
	c, err := NewParams(4, 4, 313)
	require.NoError(t, err)

	result := c.BatchScalarMult([]int64{2}, []Point{NewPoint(205, 130)}, 0)
	require.True(t, result.OK)
	assert.True(t, result.Points[0].Equal(NewPoint(79, 178)))
}

func TestBatchScalarMultLengthMismatch(t *testing.T) {
	c, err := NewParams(4, 4, 313)
	require.NoError(t, err)

	result := c.BatchScalarMult([]int64{1, 2}, []Point{NewPoint(205, 130)}, 2)
	assert.False(t, result.OK)
	assert.Zero(t, result.TotalChecked)
}

func TestBatchScalarMultCollectsFailures(t *testing.T) {
	// Modulus 8 makes the doubling denominator 2y non-invertible.
	c, err := NewParams(0, 0, 8)
	require.NoError(t, err)

	scalars := []int64{0, 2}
	points := []Point{NewPoint(0, 1), NewPoint(2, 1)}

	result := c.BatchScalarMult(scalars, points, 2)
	assert.False(t, result.OK)
	assert.Equal(t, []int{1}, result.FailedIndices)
	assert.True(t, result.Points[0].IsInfinity())
}

func TestBatchOnCurve(t *testing.T) {
	c, err := NewParams(4, 4, 313)
	require.NoError(t, err)

	points := []Point{
		NewPoint(205, 130),
		NewPoint(205, 131),
		Infinity(),
		NewPoint(79, 178),
	}

	result := c.BatchOnCurve(points, 2)
	assert.False(t, result.OK)
	assert.Equal(t, []int{1}, result.FailedIndices)
	assert.Equal(t, len(points), result.TotalChecked)
}
