package stat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	gstat "gonum.org/v1/gonum/stat"
)

// ErrTooFewRows is returned when a statistic needs more observations.
var ErrTooFewRows = errors.New("too few rows")

// CorrelationMatrix holds the pairwise Pearson correlation of named columns.
type CorrelationMatrix struct {
	Names  []string
	Values *mat.SymDense
}

// Correlation computes the Pearson correlation matrix of the given
// columns, all of the same length. The diagonal is exactly 1; the
// correlation with a constant column is NaN. With fewer than two rows
// nothing can be correlated and every entry is NaN.
func Correlation(names []string, columns [][]float64) (CorrelationMatrix, error) {
	if len(names) != len(columns) {
		return CorrelationMatrix{}, fmt.Errorf("got %d names for %d columns", len(names), len(columns))
	}
	if len(columns) == 0 {
		return CorrelationMatrix{}, errors.New("no columns to correlate")
	}
	n := len(columns[0])
	for j, c := range columns {
		if len(c) != n {
			return CorrelationMatrix{}, fmt.Errorf("column %s has %d rows, want %d", names[j], len(c), n)
		}
	}
	k := len(columns)
	if n < 2 {
		nan := make([]float64, k*k)
		for i := range nan {
			nan[i] = math.NaN()
		}
		return CorrelationMatrix{
			Names:  append([]string(nil), names...),
			Values: mat.NewSymDense(k, nan),
		}, nil
	}

	x := mat.NewDense(n, k, nil)
	for j, c := range columns {
		x.SetCol(j, c)
	}
	var corr mat.SymDense
	gstat.CorrelationMatrix(&corr, x, nil)

	return CorrelationMatrix{
		Names:  append([]string(nil), names...),
		Values: &corr,
	}, nil
}

// Dim returns the number of rows (and columns) of c.
func (c CorrelationMatrix) Dim() int { return len(c.Names) }

// At returns the correlation of column i and column j.
func (c CorrelationMatrix) At(i, j int) float64 { return c.Values.At(i, j) }

// Mask returns the cells hidden when displaying c: mask[i][j] is true
// for j >= i, the upper triangle including the diagonal.
func (c CorrelationMatrix) Mask() [][]bool {
	n := c.Dim()
	mask := make([][]bool, n)
	for i := range mask {
		mask[i] = make([]bool, n)
		for j := i; j < n; j++ {
			mask[i][j] = true
		}
	}
	return mask
}

// Lower returns c as a dense row major grid with all masked cells set
// to NaN, leaving only the strict lower triangle.
func (c CorrelationMatrix) Lower() [][]float64 {
	mask := c.Mask()
	n := c.Dim()
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, n)
		for j := range grid[i] {
			if mask[i][j] {
				grid[i][j] = math.NaN()
				continue
			}
			grid[i][j] = c.At(i, j)
		}
	}
	return grid
}
