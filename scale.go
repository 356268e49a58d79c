package visualizer

import (
	"math"
)

// Scale collects the domain of an aesthetic over several data frames,
// e.g. to give all panels of a faceted plot the same y range.
type Scale struct {
	Discrete  bool
	Aesthetic string

	DomainMin    float64
	DomainMax    float64
	DomainLevels FloatSet
}

// NewScale sets up an untrained scale for the given aesthetic.
func NewScale(aesthetic string, discrete bool) *Scale {
	return &Scale{
		Discrete:     discrete,
		Aesthetic:    aesthetic,
		DomainMin:    math.Inf(+1),
		DomainMax:    math.Inf(-1),
		DomainLevels: NewFloatSet(),
	}
}

// Train updates the domain of s according to the data found in f.
func (s *Scale) Train(f Field) {
	if s.Discrete {
		s.DomainLevels.Join(f.Levels())
		return
	}
	min, max, mini, maxi := f.MinMax()
	if mini != -1 {
		s.TrainByValue(min)
	}
	if maxi != -1 {
		s.TrainByValue(max)
	}
}

// TrainByValue extends the continuous domain of s to include xs.
// NaN and infinite values are ignored.
func (s *Scale) TrainByValue(xs ...float64) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// Trained reports whether s has seen at least one value.
func (s *Scale) Trained() bool {
	if s.Discrete {
		return len(s.DomainLevels) > 0
	}
	return s.DomainMin <= s.DomainMax
}
