package visualizer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Ops struct {
	Age     int
	Origin  string
	Weight  float64
	Height  float64
	Special []byte
}

func (o Ops) BMI() float64 {
	return o.Weight / (o.Height * o.Height)
}

func (o Ops) Group() int {
	return 10*(o.Age/10) + 5
}

func (o Ops) Country() string {
	o2c := map[string]string{
		"ch": "Schweiz",
		"de": "Deutschland",
		"uk": "England",
	}
	return o2c[o.Origin]
}

func (o Ops) Other() bool {
	return true
}

func (o Ops) Other2(a int) int {
	return 0
}

var measurement = []Ops{
	{Age: 20, Origin: "de", Weight: 80, Height: 1.88},
	{Age: 22, Origin: "de", Weight: 85, Height: 1.85},
	{Age: 20, Origin: "de", Weight: 90, Height: 1.95},
	{Age: 25, Origin: "de", Weight: 90, Height: 1.72},

	{Age: 20, Origin: "ch", Weight: 77, Height: 1.78},
	{Age: 20, Origin: "ch", Weight: 82, Height: 1.75},
	{Age: 28, Origin: "ch", Weight: 85, Height: 1.80},
	{Age: 20, Origin: "ch", Weight: 84, Height: 1.62},

	{Age: 31, Origin: "de", Weight: 85, Height: 1.88},
	{Age: 30, Origin: "de", Weight: 90, Height: 1.85},
	{Age: 30, Origin: "de", Weight: 99, Height: 1.95},
	{Age: 42, Origin: "de", Weight: 95, Height: 1.72},

	{Age: 30, Origin: "ch", Weight: 80, Height: 1.78},
	{Age: 30, Origin: "ch", Weight: 85, Height: 1.75},
	{Age: 37, Origin: "ch", Weight: 87, Height: 1.80},
	{Age: 47, Origin: "ch", Weight: 90, Height: 1.62},

	{Age: 42, Origin: "uk", Weight: 60, Height: 1.68},
	{Age: 42, Origin: "uk", Weight: 65, Height: 1.65},
	{Age: 44, Origin: "uk", Weight: 55, Height: 1.52},
	{Age: 44, Origin: "uk", Weight: 70, Height: 1.72},
}

func TestNewDataFrameFrom(t *testing.T) {
	df, err := NewDataFrameFrom(measurement)
	require.NoError(t, err)

	assert.Equal(t, 20, df.N)
	assert.Equal(t, []string{"Age", "Origin", "Weight", "Height", "BMI", "Country", "Group"},
		df.FieldNames())
	assert.Equal(t, Int, df.Columns["Age"].Type)
	assert.Equal(t, String, df.Columns["Country"].Type)
	assert.Equal(t, Float, df.Columns["BMI"].Type)
	assert.InDelta(t, 80/(1.88*1.88), df.Columns["BMI"].Data[0], 1e-12)
	assert.Equal(t, "England", df.Columns["Country"].String(df.Columns["Country"].Data[16]))

	_, err = NewDataFrameFrom(42)
	assert.Error(t, err)
	_, err = NewDataFrameFrom([]int{1, 2})
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)

	exactly20 := Filter(df, "Age", 20)
	assert.Equal(t, 5, exactly20.N)
	for i, a := range exactly20.Columns["Age"].Data {
		assert.Equal(t, 20.0, a, "element %d", i)
	}

	age30to39 := Filter(df, "Group", 35)
	assert.Equal(t, 6, age30to39.N)
	for i, a := range age30to39.Columns["Age"].Data {
		assert.True(t, a >= 30 && a <= 39, "element %d has age %v", i, a)
	}

	ukIdx := float64(df.Pool.Find("uk"))
	ukOnly := Filter(df, "Origin", ukIdx)
	assert.Equal(t, 4, ukOnly.N)

	assert.Same(t, df, Filter(df, "", 0))
}

func TestLevels(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)
	ageLevels := Levels(df, "Age").Elements()
	require.Len(t, ageLevels, 10)
	assert.Equal(t, 20.0, ageLevels[0])
	assert.Equal(t, 47.0, ageLevels[9])

	origin := df.Columns["Origin"]
	var names []string
	for _, l := range origin.SortedLevels() {
		names = append(names, origin.String(l))
	}
	assert.Equal(t, []string{"ch", "de", "uk"}, names)
}

func TestMinMax(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)

	min, max, a, b := MinMax(df, "Weight")
	assert.Equal(t, 55.0, min)
	assert.Equal(t, 18, a)
	assert.Equal(t, 99.0, max)
	assert.Equal(t, 10, b)
}

func TestPartition(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)
	levels := df.Columns["Origin"].SortedLevels()
	parts := Partition(df, "Origin", levels)
	require.Len(t, parts, 3)
	assert.Equal(t, 8, parts[0].N) // ch
	assert.Equal(t, 8, parts[1].N) // de
	assert.Equal(t, 4, parts[2].N) // uk
}

func TestSortBy(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)
	sorted, err := SortBy(df, "Origin", "Age")
	require.NoError(t, err)
	origin := sorted.Columns["Origin"]
	age := sorted.Columns["Age"].Data
	assert.Equal(t, "ch", origin.String(origin.Data[0]))
	assert.Equal(t, 20.0, age[0])
	assert.Equal(t, "uk", origin.String(origin.Data[19]))
	assert.Equal(t, 44.0, age[19])
	for i := 1; i < sorted.N; i++ {
		if origin.Data[i] == origin.Data[i-1] {
			assert.LessOrEqual(t, age[i-1], age[i])
		}
	}

	_, err = SortBy(df, "Nope")
	assert.ErrorIs(t, err, ErrNoSuchField)
}

func TestColumnManipulation(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)
	c := df.Copy()
	c.Columns["Age"].Data[0] = 99
	assert.Equal(t, 20.0, df.Columns["Age"].Data[0])

	c.Rename("Age", "Years")
	c.Delete("BMI")
	assert.Equal(t, []string{"Years", "Origin", "Weight", "Height", "Country", "Group"}, c.FieldNames())

	c.Add("Twice", c.Columns["Weight"].Copy())
	c.Columns["Twice"].Apply(func(x float64) float64 { return 2 * x })
	assert.Equal(t, 160.0, c.Columns["Twice"].Data[0])
	assert.Equal(t, "Twice", c.FieldNames()[len(c.FieldNames())-1])

	assert.Panics(t, func() { c.Add("Short", NewField(3, Int, c.Pool)) })

	_, err := c.Column("BMI")
	assert.ErrorIs(t, err, ErrNoSuchField)
}

func TestAppend(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement)
	a := Filter(df, "Age", 20)
	b := Filter(df, "Age", 30)
	require.NoError(t, a.Append(b))
	assert.Equal(t, 9, a.N)
	assert.Len(t, a.Columns["Weight"].Data, 9)

	b.Delete("BMI")
	assert.Error(t, a.Append(b))
}

func TestPrint(t *testing.T) {
	df, _ := NewDataFrameFrom(measurement[:2])
	var buf bytes.Buffer
	df.Print(&buf)
	assert.Contains(t, buf.String(), `Data Frame "Ops": 2 rows`)
	assert.Contains(t, buf.String(), "Deutschland")
}
