package visualizer

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Stat is the interface of statistical transform.
//
// Statistical transform take a data frame and produce an other data frame.
// This is typically done by "summarizing", "modeling" or "transforming"
// the data in a statistically significant way.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply this statistic to data.
	Apply(data *DataFrame) (*DataFrame, error)

	// Info returns the StatInfo which describes how this
	// statistic can be used.
	Info() StatInfo
}

// StatInfo contains information about how a stat can be used.
type StatInfo struct {
	// NeededFields must be present in the data frame.
	NeededFields []string

	// Discrete lists those of NeededFields which must be Int or String.
	Discrete []string
}

// checkInfo makes sure data satisfies the requirements of s.
func checkInfo(s Stat, data *DataFrame) error {
	info := s.Info()
	for _, name := range info.NeededFields {
		if _, err := data.Column(name); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	for _, name := range info.Discrete {
		if !data.Columns[name].Discrete() {
			return fmt.Errorf("%s: %w: cannot group by continuous field %s",
				s.Name(), ErrFieldType, name)
		}
	}
	return nil
}

// group sorts data by the fields in by and returns the sorted frame
// together with the [start,end) row ranges of each group.
func group(data *DataFrame, by []string) (*DataFrame, [][2]int, error) {
	sorted, err := SortBy(data, by...)
	if err != nil {
		return nil, nil, err
	}
	var ranges [][2]int
	start := 0
	for i := 1; i <= sorted.N; i++ {
		if i < sorted.N && sameKey(sorted, by, i, start) {
			continue
		}
		ranges = append(ranges, [2]int{start, i})
		start = i
	}
	if sorted.N == 0 {
		ranges = nil
	}
	return sorted, ranges, nil
}

func sameKey(df *DataFrame, by []string, i, j int) bool {
	for _, name := range by {
		d := df.Columns[name].Data
		if d[i] != d[j] {
			return false
		}
	}
	return true
}

// keyFrame returns a frame holding the key fields of the first row of each group.
func keyFrame(name string, sorted *DataFrame, by []string, ranges [][2]int) *DataFrame {
	result := NewDataFrame(name, sorted.Pool)
	result.N = len(ranges)
	for _, b := range by {
		src := sorted.Columns[b]
		f := NewField(len(ranges), src.Type, sorted.Pool)
		for g, r := range ranges {
			f.Data[g] = src.Data[r[0]]
		}
		result.Add(b, f)
	}
	return result
}

// -------------------------------------------------------------------------
// StatCount

// StatCount counts the rows of each combination of the By fields.
// The result has the By fields and an Int column As (default "count"),
// sorted ascending by the By fields.
type StatCount struct {
	By []string
	As string
}

var _ Stat = StatCount{}

func (StatCount) Name() string { return "StatCount" }

func (s StatCount) Info() StatInfo {
	return StatInfo{
		NeededFields: s.By,
		Discrete:     s.By,
	}
}

func (s StatCount) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkInfo(s, data); err != nil {
		return nil, err
	}
	as := s.As
	if as == "" {
		as = "count"
	}
	sorted, ranges, err := group(data, s.By)
	if err != nil {
		return nil, err
	}
	result := keyFrame(fmt.Sprintf("%s counted by %s", data.Name, fieldList(s.By)), sorted, s.By, ranges)
	counts := NewField(len(ranges), Int, data.Pool)
	for g, r := range ranges {
		counts.Data[g] = float64(r[1] - r[0])
	}
	result.Add(as, counts)
	return result, nil
}

// -------------------------------------------------------------------------
// StatMean

// StatMean computes the arithmetic mean of field Of for each
// combination of the By fields. Groups are sorted ascending; combinations
// without rows do not appear. The mean is stored in As (default Of).
type StatMean struct {
	By []string
	Of string
	As string
}

var _ Stat = StatMean{}

func (StatMean) Name() string { return "StatMean" }

func (s StatMean) Info() StatInfo {
	return StatInfo{
		NeededFields: append(append([]string{}, s.By...), s.Of),
		Discrete:     s.By,
	}
}

func (s StatMean) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkInfo(s, data); err != nil {
		return nil, err
	}
	if t := data.Columns[s.Of].Type; t == String {
		return nil, fmt.Errorf("%s: %w: cannot average String field %s", s.Name(), ErrFieldType, s.Of)
	}
	as := s.As
	if as == "" {
		as = s.Of
	}
	sorted, ranges, err := group(data, s.By)
	if err != nil {
		return nil, err
	}
	result := keyFrame(fmt.Sprintf("mean %s of %s by %s", s.Of, data.Name, fieldList(s.By)), sorted, s.By, ranges)
	means := NewField(len(ranges), Float, data.Pool)
	values := sorted.Columns[s.Of].Data
	for g, r := range ranges {
		m, err := stats.Mean(values[r[0]:r[1]])
		if err != nil {
			return nil, fmt.Errorf("%s: group %d: %w", s.Name(), g, err)
		}
		means.Data[g] = m
	}
	result.Add(as, means)
	return result, nil
}

// -------------------------------------------------------------------------
// Grouped values

// GroupValues collects the values of field of for each level of the
// discrete field by. Levels are returned in ascending order.
func GroupValues(data *DataFrame, by, of string) ([]float64, [][]float64, error) {
	bf, err := data.Column(by)
	if err != nil {
		return nil, nil, err
	}
	if !bf.Discrete() {
		return nil, nil, fmt.Errorf("%w: cannot group by continuous field %s", ErrFieldType, by)
	}
	vf, err := data.Column(of)
	if err != nil {
		return nil, nil, err
	}
	levels := bf.SortedLevels()
	pos := make(map[float64]int, len(levels))
	for i, l := range levels {
		pos[l] = i
	}
	groups := make([][]float64, len(levels))
	for i, x := range bf.Data {
		p := pos[x]
		groups[p] = append(groups[p], vf.Data[i])
	}
	return levels, groups, nil
}
