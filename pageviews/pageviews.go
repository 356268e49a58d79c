// Package pageviews cleans a daily page view series and derives the
// views drawn from it: the series itself, monthly averages and the
// distribution per year and per month.
package pageviews

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vdobler/visualizer"
	"github.com/vdobler/visualizer/stat"
)

// ErrDuplicateDate is returned for series with two values on one day.
var ErrDuplicateDate = errors.New("duplicate date")

// Schema lists the columns of a page view table.
var Schema = visualizer.Schema{
	{Name: "date", Type: visualizer.Time},
	{Name: "value", Type: visualizer.Float},
}

// PageView is the number of page views on one day.
type PageView struct {
	Date  time.Time `frame:"date"`
	Value float64   `frame:"value"`
}

func (p PageView) Year() int          { return p.Date.Year() }
func (p PageView) Month() int         { return int(p.Date.Month()) }
func (p PageView) MonthName() string  { return monthAbbrev(p.Date.Month()) }
func monthAbbrev(m time.Month) string { return m.String()[:3] }

// Series is a sequence of page views ordered by date with at most one
// value per day.
type Series []PageView

// Load reads the page view table at path.
func Load(path string, opts visualizer.ReadOptions) (Series, error) {
	df, err := visualizer.ReadTable(path, Schema, opts)
	if err != nil {
		return nil, err
	}
	return FromFrame(df)
}

// FromFrame converts the date and value columns of df into a Series.
func FromFrame(df *visualizer.DataFrame) (Series, error) {
	date, err := df.Column("date")
	if err != nil {
		return nil, err
	}
	value, err := df.Column("value")
	if err != nil {
		return nil, err
	}
	if date.Type != visualizer.Time {
		return nil, fmt.Errorf("%w: date is %s", visualizer.ErrFieldType, date.Type)
	}

	s := make(Series, df.N)
	for i := range s {
		s[i] = PageView{Date: date.Time(date.Data[i]), Value: value.Data[i]}
	}
	sort.SliceStable(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
	for i := 1; i < len(s); i++ {
		if s[i].Date.Equal(s[i-1].Date) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, s[i].Date.Format("2006-01-02"))
		}
	}
	return s, nil
}

// Values returns the page view counts of s.
func (s Series) Values() []float64 {
	v := make([]float64, len(s))
	for i, pv := range s {
		v[i] = pv.Value
	}
	return v
}

// Clean keeps the days whose value lies within the [lower, upper]
// quantile band of all values of s.
func Clean(s Series, lower, upper float64) Series {
	idx := stat.FilterBand(s.Values(), lower, upper)
	cleaned := make(Series, len(idx))
	for i, j := range idx {
		cleaned[i] = s[j]
	}
	return cleaned
}

// LineView returns a copy of s.
func (s Series) LineView() Series {
	return append(Series(nil), s...)
}

// Frame turns s into a data frame with columns date, value, Month,
// MonthName and Year.
func (s Series) Frame() (*visualizer.DataFrame, error) {
	return visualizer.NewDataFrameFrom([]PageView(s))
}

// -------------------------------------------------------------------------
// Monthly averages

// MonthlyAverage is the mean daily page views of one month.
type MonthlyAverage struct {
	Year  int
	Month time.Month
	Mean  float64
}

// monthlyFrame returns the frame with columns Year, Month and value
// holding the monthly means.
func (s Series) monthlyFrame() (*visualizer.DataFrame, error) {
	df, err := s.Frame()
	if err != nil {
		return nil, err
	}
	return visualizer.StatMean{By: []string{"Year", "Month"}, Of: "value"}.Apply(df)
}

// MonthlyAverages returns the mean of each month with data, ordered
// by year and month.
func (s Series) MonthlyAverages() ([]MonthlyAverage, error) {
	mf, err := s.monthlyFrame()
	if err != nil {
		return nil, err
	}
	year, month, mean := mf.Columns["Year"].Data, mf.Columns["Month"].Data, mf.Columns["value"].Data
	avgs := make([]MonthlyAverage, mf.N)
	for i := range avgs {
		avgs[i] = MonthlyAverage{
			Year:  int(year[i]),
			Month: time.Month(month[i]),
			Mean:  mean[i],
		}
	}
	return avgs, nil
}

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlyTable arranges monthly averages by year and month. Months
// without data have no cell.
type MonthlyTable struct {
	Years []int
	cells map[yearMonth]float64
}

// MonthlyTable pivots the monthly averages of s.
func (s Series) MonthlyTable() (MonthlyTable, error) {
	avgs, err := s.MonthlyAverages()
	if err != nil {
		return MonthlyTable{}, err
	}
	t := MonthlyTable{cells: make(map[yearMonth]float64, len(avgs))}
	for _, a := range avgs {
		if len(t.Years) == 0 || t.Years[len(t.Years)-1] != a.Year {
			t.Years = append(t.Years, a.Year)
		}
		t.cells[yearMonth{a.Year, a.Month}] = a.Mean
	}
	return t, nil
}

// Get returns the average of the given month and whether there is one.
func (t MonthlyTable) Get(year int, month time.Month) (float64, bool) {
	v, ok := t.cells[yearMonth{year, month}]
	return v, ok
}

// -------------------------------------------------------------------------
// Box groups

// BoxGroup is the labeled distribution of page views of a year or month.
type BoxGroup struct {
	Label  string
	Values []float64
}

// YearBoxes returns one group per year, in ascending order.
func (s Series) YearBoxes() ([]BoxGroup, error) {
	df, err := s.Frame()
	if err != nil {
		return nil, err
	}
	years, values, err := visualizer.GroupValues(df, "Year", "value")
	if err != nil {
		return nil, err
	}
	groups := make([]BoxGroup, len(years))
	for i, y := range years {
		groups[i] = BoxGroup{Label: fmt.Sprintf("%d", int(y)), Values: values[i]}
	}
	return groups, nil
}

// MonthBoxes returns twelve groups labeled Jan to Dec in calendar order,
// pooling all years. Months without data have no values.
func (s Series) MonthBoxes() ([]BoxGroup, error) {
	df, err := s.Frame()
	if err != nil {
		return nil, err
	}
	months, values, err := visualizer.GroupValues(df, "Month", "value")
	if err != nil {
		return nil, err
	}
	groups := make([]BoxGroup, 12)
	for m := range groups {
		groups[m].Label = monthAbbrev(time.Month(m + 1))
	}
	for i, m := range months {
		groups[int(m)-1].Values = values[i]
	}
	return groups, nil
}
