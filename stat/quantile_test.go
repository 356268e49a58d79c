package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func oneToHundred() []float64 {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}

func TestQuantile(t *testing.T) {
	xs := oneToHundred()
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.025, 3.475},
		{0.5, 50.5},
		{0.975, 97.525},
		{1, 100},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, Quantile(xs, tc.p), 1e-9, "p=%g", tc.p)
	}
}

func TestQuantileDoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Quantile(xs, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestQuantileDegenerate(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{math.NaN()}, 0.5)))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.025))
	assert.Equal(t, 7.0, Quantile([]float64{7, 7, 7}, 0.975))
	assert.Equal(t, 2.0, Quantile([]float64{math.NaN(), 1, 3}, 0.5))
}

func TestFilterBand(t *testing.T) {
	xs := oneToHundred()
	idx := FilterBand(xs, 0.025, 0.975)
	if assert.Len(t, idx, 94) {
		assert.Equal(t, 4.0, xs[idx[0]])
		assert.Equal(t, 97.0, xs[idx[len(idx)-1]])
	}

	// Bounds come from the unfiltered column: checking the kept
	// values against them again removes nothing.
	lo, hi := Band(xs, 0.025, 0.975)
	for _, i := range idx {
		assert.True(t, Within(xs[i], lo, hi))
	}
}

func TestFilterBandDegenerate(t *testing.T) {
	assert.Empty(t, FilterBand(nil, 0.025, 0.975))
	assert.Equal(t, []int{0, 1, 2}, FilterBand([]float64{5, 5, 5}, 0.025, 0.975))
	assert.Equal(t, []int{0}, FilterBand([]float64{5}, 0.025, 0.975))
}
