package visualizer

import "fmt"

// AesMapping controlls the mapping of fields of a data frame to aesthetics
// like "x", "y" or "fill".
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, n := range m {
		c[a] = n
	}
	return c
}

// Combine merges set values in all the ams into m and returns the merged mapping.
// Later values in ams overwrite earlier ones or values in m; an empty
// field name clears the mapping.
func (m AesMapping) Combine(ams ...AesMapping) AesMapping {
	merged := m.Copy()
	for _, am := range ams {
		for aes, fname := range am {
			merged[aes] = fname
		}
	}
	for aes, fname := range merged {
		if fname == "" {
			delete(merged, aes)
		}
	}
	return merged
}

// Field returns the column of df mapped to aes.
func (m AesMapping) Field(df *DataFrame, aes string) (Field, error) {
	name, ok := m[aes]
	if !ok || name == "" {
		return Field{}, fmt.Errorf("aesthetic %s is not mapped", aes)
	}
	return df.Column(name)
}

// Faceting describes how a plot is split into panels.
type Faceting struct {
	// Columns is the discrete field whose levels form the panel
	// columns. An empty string means no faceting.
	Columns string

	// FreeScale is "" for a y scale shared by all panels and "y" for
	// panels scaled individually.
	FreeScale string
}

// -------------------------------------------------------------------------
// Position Adjustments

// PositionAdjust determines how bars sharing an x position are placed.
type PositionAdjust int

const (
	PosIdentity PositionAdjust = iota
	PosStack
	PosDodge
)
