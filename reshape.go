package visualizer

import "fmt"

// Melt converts the wide data frame df into long form: every row of df
// yields one row per column in valueVars carrying the id columns, the
// column name in varName and its value in valueName. Rows are ordered
// by value column first, then by the row order of df.
//
// The value column gets the common type of valueVars, or Float if they
// differ. valueVars must not contain String fields.
func Melt(df *DataFrame, idVars, valueVars []string, varName, valueName string) (*DataFrame, error) {
	if len(valueVars) == 0 {
		return nil, fmt.Errorf("melt %s: no value columns", df.Name)
	}
	idSet := NewStringSetFrom(idVars)
	for _, name := range valueVars {
		if idSet.Contains(name) {
			return nil, fmt.Errorf("melt %s: %s is both id and value column", df.Name, name)
		}
	}
	ids := make([]Field, len(idVars))
	for i, name := range idVars {
		f, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		ids[i] = f
	}
	values := make([]Field, len(valueVars))
	valueType := Int
	for i, name := range valueVars {
		f, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		if f.Type == String {
			return nil, fmt.Errorf("melt %s: %w: %s is a String field", df.Name, ErrFieldType, name)
		}
		if i == 0 {
			valueType = f.Type
		} else if f.Type != valueType {
			valueType = Float
		}
		values[i] = f
	}

	n := df.N * len(valueVars)
	result := NewDataFrame(fmt.Sprintf("%s melted", df.Name), df.Pool)
	result.N = n

	idFields := make([]Field, len(idVars))
	for i, f := range ids {
		idFields[i] = NewField(n, f.Type, df.Pool)
	}
	varField := NewField(n, String, df.Pool)
	valField := NewField(n, valueType, df.Pool)

	r := 0
	for v, vf := range values {
		name := float64(df.Pool.Add(valueVars[v]))
		for i := 0; i < df.N; i++ {
			for k, f := range ids {
				idFields[k].Data[r] = f.Data[i]
			}
			varField.Data[r] = name
			valField.Data[r] = vf.Data[i]
			r++
		}
	}

	for i, name := range idVars {
		result.Add(name, idFields[i])
	}
	result.Add(varName, varField)
	result.Add(valueName, valField)
	return result, nil
}
