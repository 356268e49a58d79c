package visualizer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"
)

var (
	// ErrNoSuchField is returned when a data frame lacks a requested column.
	ErrNoSuchField = errors.New("no such field")

	// ErrFieldType is returned when a column has the wrong type for an operation.
	ErrFieldType = errors.New("incompatible field type")
)

// DataFrame is a column oriented table. All columns have the same
// length N. String values are interned in Pool which is shared by
// all data frames derived from this one.
type DataFrame struct {
	Name    string
	N       int
	Columns map[string]Field
	Pool    *StringPool

	order []string
}

// NewDataFrame returns an empty data frame. A nil pool allocates a new one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// Has reports whether df contains the named column.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.Columns[name]
	return ok
}

// Column returns the named column or ErrNoSuchField.
func (df *DataFrame) Column(name string) (Field, error) {
	f, ok := df.Columns[name]
	if !ok {
		return Field{}, fmt.Errorf("%w %q in %s", ErrNoSuchField, name, df.Name)
	}
	return f, nil
}

// Add stores f under name. A new column is appended after the existing
// ones, an existing column keeps its position.
func (df *DataFrame) Add(name string, f Field) {
	if len(f.Data) != df.N {
		panic(fmt.Sprintf("field %s has %d values, data frame %s has %d rows",
			name, len(f.Data), df.Name, df.N))
	}
	if !df.Has(name) {
		df.order = append(df.order, name)
	}
	f.Pool = df.Pool
	df.Columns[name] = f
}

// Delete removes the named column if present.
func (df *DataFrame) Delete(name string) {
	delete(df.Columns, name)
	for i, n := range df.order {
		if n == name {
			df.order = append(df.order[:i:i], df.order[i+1:]...)
			break
		}
	}
}

// Rename renames column old to new. Renaming a missing column is a no-op.
func (df *DataFrame) Rename(old, new string) {
	f, ok := df.Columns[old]
	if !ok || old == new {
		return
	}
	delete(df.Columns, old)
	df.Columns[new] = f
	for i, n := range df.order {
		if n == old {
			df.order[i] = new
		}
	}
}

// FieldNames returns the column names in insertion order. Columns put
// directly into Columns come last, sorted by name.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, 0, len(df.Columns))
	seen := NewStringSet()
	for _, n := range df.order {
		if _, ok := df.Columns[n]; ok && !seen.Contains(n) {
			names = append(names, n)
			seen.Add(n)
		}
	}
	var rest []string
	for n := range df.Columns {
		if !seen.Contains(n) {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Copy returns a deep copy of df sharing the string pool.
func (df *DataFrame) Copy() *DataFrame {
	c := NewDataFrame(df.Name, df.Pool)
	c.N = df.N
	for _, n := range df.FieldNames() {
		c.Add(n, df.Columns[n].Copy())
	}
	return c
}

// Append adds the rows of other to df. Both must have the same columns.
func (df *DataFrame) Append(other *DataFrame) error {
	if len(df.Columns) != len(other.Columns) {
		return fmt.Errorf("cannot append %s to %s: different columns", other.Name, df.Name)
	}
	for n, f := range df.Columns {
		of, ok := other.Columns[n]
		if !ok {
			return fmt.Errorf("%w %q in %s", ErrNoSuchField, n, other.Name)
		}
		if of.Type != f.Type {
			return fmt.Errorf("%w: column %s is %s in %s and %s in %s",
				ErrFieldType, n, f.Type, df.Name, of.Type, other.Name)
		}
	}
	for n, f := range df.Columns {
		f.Data = append(f.Data, other.Columns[n].Data...)
		df.Columns[n] = f
	}
	df.N += other.N
	return nil
}

// Take returns a new data frame made of the rows idx of df, in that order.
func (df *DataFrame) Take(idx []int) *DataFrame {
	result := NewDataFrame(df.Name, df.Pool)
	result.N = len(idx)
	for _, n := range df.FieldNames() {
		f := df.Columns[n]
		nf := NewField(len(idx), f.Type, df.Pool)
		for i, j := range idx {
			nf.Data[i] = f.Data[j]
		}
		result.Add(n, nf)
	}
	return result
}

// Print dumps df in a tabular form to w.
func (df *DataFrame) Print(w io.Writer) {
	names := df.FieldNames()
	fmt.Fprintf(w, "Data Frame %q: %d rows\n", df.Name, df.N)
	fmt.Fprintf(w, "%5s", "")
	for _, n := range names {
		fmt.Fprintf(w, " %12s", n)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%5s", "")
	for _, n := range names {
		fmt.Fprintf(w, " %12s", df.Columns[n].Type)
	}
	fmt.Fprintln(w)
	for i := 0; i < df.N; i++ {
		fmt.Fprintf(w, "%5d", i)
		for _, n := range names {
			f := df.Columns[n]
			fmt.Fprintf(w, " %12s", f.String(f.Data[i]))
		}
		fmt.Fprintln(w)
	}
}

// -------------------------------------------------------------------------
// Field

// FieldType represents the basic type of a field.
type FieldType int

const (
	Int FieldType = iota
	Float
	String
	Time
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Time:
		return "Time"
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// Field is one column of a data frame. Every value is stored as a
// float64: Int and Float directly, String as the index into Pool and
// Time as seconds since the Unix epoch.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

// NewField allocates a zero valued field of length n.
func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{
		Type: t,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// Discrete reports whether f can be used for grouping.
func (f Field) Discrete() bool {
	return f.Type == Int || f.Type == String
}

// Copy returns a deep copy of f.
func (f Field) Copy() Field {
	c := f
	c.Data = make([]float64, len(f.Data))
	copy(c.Data, f.Data)
	return c
}

// Apply replaces each value x of f with fn(x).
func (f Field) Apply(fn func(float64) float64) {
	for i, x := range f.Data {
		f.Data[i] = fn(x)
	}
}

// String formats the value x according to the type of f.
func (f Field) String(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	switch f.Type {
	case Int:
		return fmt.Sprintf("%d", int64(x))
	case String:
		return f.Pool.Get(int(x))
	case Time:
		return f.Time(x).Format("2006-01-02")
	}
	return fmt.Sprintf("%g", x)
}

// Time converts x to a time. Only meaningful for Time fields.
func (f Field) Time(x float64) time.Time {
	return time.Unix(int64(x), 0).UTC()
}

// Levels returns the set of distinct values in f.
func (f Field) Levels() FloatSet {
	levels := NewFloatSet()
	for _, x := range f.Data {
		levels.Add(x)
	}
	return levels
}

// SortedLevels returns the distinct values of f in ascending order.
// String fields are ordered by their text, not their pool index.
func (f Field) SortedLevels() []float64 {
	levels := f.Levels().Elements()
	if f.Type == String {
		sort.SliceStable(levels, func(i, j int) bool {
			return f.Pool.Get(int(levels[i])) < f.Pool.Get(int(levels[j]))
		})
	}
	return levels
}

// Less compares two values of f.
func (f Field) Less(a, b float64) bool {
	if f.Type == String {
		return f.Pool.Get(int(a)) < f.Pool.Get(int(b))
	}
	return a < b
}

// MinMax returns the minimum and maximum of f together with their
// indices. NaN values are skipped; if all are NaN the indices are -1.
func (f Field) MinMax() (min, max float64, mini, maxi int) {
	min, max = math.NaN(), math.NaN()
	mini, maxi = -1, -1
	for i, x := range f.Data {
		if math.IsNaN(x) {
			continue
		}
		if mini == -1 || x < min {
			min, mini = x, i
		}
		if maxi == -1 || x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi
}

// Strings returns the formatted values of f.
func (f Field) Strings() []string {
	s := make([]string, len(f.Data))
	for i, x := range f.Data {
		s[i] = f.String(x)
	}
	return s
}

func fieldList(names []string) string {
	return strings.Join(names, ", ")
}
