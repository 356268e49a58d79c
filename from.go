package visualizer

import (
	"fmt"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// NewDataFrameFrom constructs a data frame from a slice of structs, a
// "slice of measurements". Every exported field of type int, float,
// string or time.Time becomes a column named like the field, or like
// its `frame` struct tag. Methods without parameters returning one of
// these types become computed columns named like the method:
//
//	type Measurement struct {
//	    Height float64 `frame:"height"`
//	    Weight float64 `frame:"weight"`
//	}
//	func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//
// Fields and methods of other types are ignored.
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot convert %T to data frame", data)
	}
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot convert %T to data frame: elements are no structs", data)
	}

	n := v.Len()
	df := NewDataFrame(t.Name(), nil)
	df.N = n

	// Fields first.
	for j := 0; j < t.NumField(); j++ {
		sf := t.Field(j)
		if sf.PkgPath != "" {
			continue // unexported
		}
		ft, ok := fieldTypeOf(sf.Type)
		if !ok {
			continue
		}
		name := sf.Name
		if tag := sf.Tag.Get("frame"); tag != "" {
			name = tag
		}
		field := NewField(n, ft, df.Pool)
		for i := 0; i < n; i++ {
			field.Data[i] = toFloat(v.Index(i).Field(j), ft, df.Pool)
		}
		df.Add(name, field)
	}

	// The same for methods with signatures like "func(elemtype) [int,string,float,time]".
	for j := 0; j < t.NumMethod(); j++ {
		m := t.Method(j)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		ft, ok := fieldTypeOf(mt.Out(0))
		if !ok {
			continue
		}
		field := NewField(n, ft, df.Pool)
		for i := 0; i < n; i++ {
			out := m.Func.Call([]reflect.Value{v.Index(i)})[0]
			field.Data[i] = toFloat(out, ft, df.Pool)
		}
		df.Add(m.Name, field)
	}

	return df, nil
}

func fieldTypeOf(t reflect.Type) (FieldType, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Int, true
	case reflect.Float32, reflect.Float64:
		return Float, true
	case reflect.String:
		return String, true
	case reflect.Struct:
		if t == timeType {
			return Time, true
		}
	}
	return 0, false
}

func toFloat(v reflect.Value, ft FieldType, pool *StringPool) float64 {
	switch ft {
	case Int:
		if v.Kind() >= reflect.Uint && v.Kind() <= reflect.Uint64 {
			return float64(v.Uint())
		}
		return float64(v.Int())
	case Float:
		return v.Float()
	case String:
		return float64(pool.Add(v.String()))
	case Time:
		return float64(v.Interface().(time.Time).Unix())
	}
	panic("Ooops")
}
