package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelation(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	columns := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{4, 3, 2, 1},
		{1, 3, 2, 4},
	}
	corr, err := Correlation(names, columns)
	require.NoError(t, err)
	require.Equal(t, 4, corr.Dim())

	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1.0, corr.At(i, i), 1e-12, "diagonal %d", i)
		for j := 0; j < 4; j++ {
			assert.InDelta(t, corr.At(i, j), corr.At(j, i), 1e-12, "symmetry %d,%d", i, j)
		}
	}
	assert.InDelta(t, 1.0, corr.At(0, 1), 1e-12)
	assert.InDelta(t, -1.0, corr.At(0, 2), 1e-12)
	// cov 4/3, both variances 5/3
	assert.InDelta(t, 0.8, corr.At(0, 3), 1e-12)
}

func TestCorrelationConstantColumn(t *testing.T) {
	corr, err := Correlation([]string{"x", "k"}, [][]float64{{1, 2, 3}, {5, 5, 5}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, corr.At(1, 1))
	assert.True(t, math.IsNaN(corr.At(0, 1)))
}

func TestCorrelationTooFewRows(t *testing.T) {
	for _, columns := range [][][]float64{
		{{1}, {2}},
		{{}, {}},
	} {
		corr, err := Correlation([]string{"x", "y"}, columns)
		require.NoError(t, err)
		assert.Equal(t, 2, corr.Dim())
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.True(t, math.IsNaN(corr.At(i, j)), "cell %d,%d with %d rows", i, j, len(columns[0]))
			}
		}
	}
}

func TestCorrelationErrors(t *testing.T) {
	_, err := Correlation([]string{"x", "y"}, [][]float64{{1, 2}, {1}})
	assert.Error(t, err)

	_, err = Correlation([]string{"x"}, nil)
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	corr, err := Correlation([]string{"a", "b", "c"},
		[][]float64{{1, 2, 3}, {3, 1, 2}, {2, 2, 1}})
	require.NoError(t, err)

	mask := corr.Mask()
	lower := corr.Lower()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, j >= i, mask[i][j], "mask %d,%d", i, j)
			if mask[i][j] {
				assert.True(t, math.IsNaN(lower[i][j]), "lower %d,%d", i, j)
			} else {
				assert.Equal(t, corr.At(i, j), lower[i][j])
			}
		}
	}
}
