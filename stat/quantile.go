// Package stat provides the column statistics used to clean and
// summarize data before plotting.
package stat

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile of xs, 0 <= p <= 1, interpolating
// linearly between the two closest ranks: for sorted values s the
// result is s[h] at the (possibly fractional) position h = (n-1)*p.
// This is the default method of numpy and pandas.
//
// NaN values are ignored. An empty input yields NaN.
func Quantile(xs []float64, p float64) float64 {
	s := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			s = append(s, x)
		}
	}
	if len(s) == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	sort.Float64s(s)
	return quantileSorted(s, p)
}

func quantileSorted(s []float64, p float64) float64 {
	switch {
	case p <= 0:
		return s[0]
	case p >= 1:
		return s[len(s)-1]
	}
	h := float64(len(s)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(s) {
		return s[i]
	}
	return s[i] + (h-lo)*(s[i+1]-s[i])
}

// Band returns the lower and upper quantile of xs.
func Band(xs []float64, lower, upper float64) (lo, hi float64) {
	return Quantile(xs, lower), Quantile(xs, upper)
}

// Within reports whether lo <= x <= hi. NaN bounds contain nothing.
func Within(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// FilterBand returns the indices of the values of xs which lie inside
// the [lower, upper] quantile band of xs itself. The bounds are computed
// once over the whole input.
func FilterBand(xs []float64, lower, upper float64) []int {
	lo, hi := Band(xs, lower, upper)
	idx := make([]int, 0, len(xs))
	for i, x := range xs {
		if Within(x, lo, hi) {
			idx = append(idx, i)
		}
	}
	return idx
}
