package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	assert.Empty(t, a.Elements())

	a.Add(17)
	a.Add(-2)
	a.Add(17)
	assert.Equal(t, []float64{-2, 17}, a.Elements())
	assert.True(t, a.Contains(-2))
	assert.False(t, a.Contains(3))

	b := NewFloatSet()
	b.Add(0)
	b.Add(99)
	a.Join(b)
	assert.Equal(t, []float64{-2, 0, 17, 99}, a.Elements())
	assert.Equal(t, "[-2 0 17 99]", a.String())
}

func TestStringSet(t *testing.T) {
	a := NewStringSetFrom([]string{"fish", "cat", "dog", "dog"})
	assert.Len(t, a, 3)
	assert.Equal(t, []string{"cat", "dog", "fish"}, a.Elements())

	a.Add("bird")
	assert.Equal(t, []string{"bird", "cat", "dog", "fish"}, a.Elements())
	assert.True(t, a.Contains("cat"))
	assert.False(t, a.Contains("cow"))
}
