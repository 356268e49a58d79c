// Package visualizer provides data frames and the grammar of graphics
// vocabulary used to turn tabular data into plots.
//
// # Data Representation: Data Frames
//
// A DataFrame is a set of equally long columns (Fields). Data frames
// are read from CSV or Excel tables with ReadTable or built from a
// "slice of measurements":
//
//	var data []Measurement
//	type Measurement struct {
//	    Height float64 `frame:"height"`
//	    Weight float64 `frame:"weight"`
//	    Age    int
//	}
//
// # Types of Data Elements
//
// Every value is stored as float64 and interpreted according to the
// FieldType of its column:
//
//	Int     discrete numbers
//	Float   continous data
//	String  index into the StringPool shared by the frame
//	Time    seconds since the Unix epoch
//
// # Calculated Values
//
// Your data frame need not contain all data you want to plot as a field.
// Methods without parameters on the measurement type are computed for
// each row and added as a column named like the method:
//
//	func(m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//
// # Statistics and Reshaping
//
// Melt converts wide frames into long form. Types implementing Stat,
// like StatCount and StatMean, summarize a frame per group of
// discrete fields and return a new frame.
package visualizer
