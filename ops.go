package visualizer

import (
	"sort"
)

// Levels returns the distinct values of field in df.
// A missing field yields an empty set.
func Levels(df *DataFrame, field string) FloatSet {
	f, ok := df.Columns[field]
	if !ok {
		return NewFloatSet()
	}
	return f.Levels()
}

// Filter extracts all rows from df where field == value.
// An empty field name returns df itself.
func Filter(df *DataFrame, field string, value float64) *DataFrame {
	if field == "" {
		return df
	}
	f, ok := df.Columns[field]
	if !ok {
		panic("No such field " + field + " in " + df.Name)
	}
	return FilterFunc(df, func(i int) bool { return f.Data[i] == value })
}

// FilterFunc returns the rows i of df for which keep(i) is true.
func FilterFunc(df *DataFrame, keep func(i int) bool) *DataFrame {
	idx := make([]int, 0, df.N)
	for i := 0; i < df.N; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return df.Take(idx)
}

// Partition splits df into one data frame per level of field.
func Partition(df *DataFrame, field string, levels []float64) []*DataFrame {
	f, ok := df.Columns[field]
	if !ok {
		panic("No such field " + field + " in " + df.Name)
	}
	pos := make(map[float64]int, len(levels))
	for i, l := range levels {
		pos[l] = i
	}
	idx := make([][]int, len(levels))
	for i, x := range f.Data {
		if p, ok := pos[x]; ok {
			idx[p] = append(idx[p], i)
		}
	}
	parts := make([]*DataFrame, len(levels))
	for p := range levels {
		parts[p] = df.Take(idx[p])
		parts[p].Name = df.Name + " where " + field + "=" + f.String(levels[p])
	}
	return parts
}

// MinMax determines minimum and maximum value of field in df and
// the row indices where they occur.
func MinMax(df *DataFrame, field string) (min, max float64, mini, maxi int) {
	return df.Columns[field].MinMax()
}

// SortBy returns a copy of df sorted ascending by the given fields,
// earlier fields taking precedence. The sort is stable.
func SortBy(df *DataFrame, fields ...string) (*DataFrame, error) {
	keys := make([]Field, len(fields))
	for i, name := range fields {
		f, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		keys[i] = f
	}
	idx := make([]int, df.N)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		for _, k := range keys {
			x, y := k.Data[idx[a]], k.Data[idx[b]]
			if k.Less(x, y) {
				return true
			}
			if k.Less(y, x) {
				return false
			}
		}
		return false
	})
	return df.Take(idx), nil
}
