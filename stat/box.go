package stat

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// BoxSummary is the five number summary of a sample.
type BoxSummary struct {
	N                        int
	Min, Q1, Median, Q3, Max float64
}

func (b BoxSummary) String() string {
	return fmt.Sprintf("n=%d min=%.1f q1=%.1f median=%.1f q3=%.1f max=%.1f",
		b.N, b.Min, b.Q1, b.Median, b.Q3, b.Max)
}

// Summarize computes the five number summary of xs.
func Summarize(xs []float64) (BoxSummary, error) {
	b := BoxSummary{N: len(xs)}
	if len(xs) == 0 {
		return b, fmt.Errorf("%w: empty sample", ErrTooFewRows)
	}
	var err error
	if b.Min, err = stats.Min(xs); err != nil {
		return b, err
	}
	if b.Max, err = stats.Max(xs); err != nil {
		return b, err
	}
	if b.Median, err = stats.Median(xs); err != nil {
		return b, err
	}
	if len(xs) == 1 {
		b.Q1, b.Q3 = xs[0], xs[0]
		return b, nil
	}
	q, err := stats.Quartile(xs)
	if err != nil {
		return b, err
	}
	b.Q1, b.Q3 = q.Q1, q.Q3
	return b, nil
}
