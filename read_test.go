package visualizer

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var readSchema = Schema{
	{Name: "date", Type: Time},
	{Name: "name", Type: String},
	{Name: "count", Type: Int},
	{Name: "weight", Type: Float},
}

const readCSV = `id,date,name,count,weight
1,2016-05-09,foo,3,71.5
2,2016-05-10,bar,4,80
3,2016-05-11, foo ,5,65.25
`

func TestReadCSV(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(readCSV), "test.csv", readSchema, ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, df.N)
	assert.Equal(t, []string{"date", "name", "count", "weight"}, df.FieldNames())
	assert.False(t, df.Has("id"))

	date := df.Columns["date"]
	assert.Equal(t, time.Date(2016, 5, 10, 0, 0, 0, 0, time.UTC), date.Time(date.Data[1]))

	name := df.Columns["name"]
	assert.Equal(t, name.Data[0], name.Data[2])
	assert.Equal(t, "bar", name.String(name.Data[1]))

	assert.Equal(t, []float64{3, 4, 5}, df.Columns["count"].Data)
	assert.Equal(t, []float64{71.5, 80, 65.25}, df.Columns["weight"].Data)
}

func TestReadCSVDelimiter(t *testing.T) {
	in := "count;weight\n1;2.5\n"
	schema := Schema{{Name: "count", Type: Int}, {Name: "weight", Type: Float}}
	df, err := ReadCSV(strings.NewReader(in), "semi", schema, ReadOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, 2.5, df.Columns["weight"].Data[0])
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), "empty", readSchema, ReadOptions{})
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = ReadCSV(strings.NewReader("date,count\n2016-01-01,1\n"), "short", readSchema, ReadOptions{})
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "name, weight")

	bad := "date,name,count,weight\n2016-01-01,x,1.5,2\n"
	_, err = ReadCSV(strings.NewReader(bad), "bad", readSchema, ReadOptions{})
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, "count", pe.Column)
	assert.Equal(t, "1.5", pe.Value)

	bad = "date,name,count,weight\n2016-01-01,x,1,heavy\n"
	_, err = ReadCSV(strings.NewReader(bad), "bad", readSchema, ReadOptions{})
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "weight", pe.Column)

	bad = "date,name,count,weight\n01.01.2016,x,1,2\n"
	_, err = ReadCSV(strings.NewReader(bad), "bad", readSchema, ReadOptions{})
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "date", pe.Column)

	df, err := ReadCSV(strings.NewReader(bad), "layout", readSchema, ReadOptions{DateLayout: "02.01.2006"})
	require.NoError(t, err)
	assert.Equal(t, 1, df.N)
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadTable(filepath.Join(dir, "data.json"), readSchema, ReadOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadTable(filepath.Join(dir, "missing.csv"), readSchema, ReadOptions{})
	assert.Error(t, err)

	path := filepath.Join(dir, "data.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"date", "name", "count", "weight"},
		{"2016-05-09", "foo", 3, 71.5},
		{"2016-05-10", "bar", 4, 80},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	df, err := ReadTable(path, readSchema, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, df.N)
	assert.Equal(t, []float64{3, 4}, df.Columns["count"].Data)
	assert.Equal(t, []float64{71.5, 80}, df.Columns["weight"].Data)
	assert.Equal(t, "data.xlsx", df.Name)

	_, err = ReadTable(path, readSchema, ReadOptions{Sheet: "NoSuchSheet"})
	assert.Error(t, err)
}
