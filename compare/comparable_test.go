package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestString is a simple string wrapper that implements Comparable.
type TestString string

func (s TestString) Equals(other TestString) bool {
	return string(s) == string(other)
}

// TestStruct is a struct that implements Comparable with custom equality logic.
type TestStruct struct {
	ID   int
	Name string
}

func (t TestStruct) Equals(other TestStruct) bool {
	return t.ID == other.ID && t.Name == other.Name
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        TestString
		b        TestString
		expected bool
	}{
		{name: "equal strings", a: "hello", b: "hello", expected: true},
		{name: "different strings", a: "hello", b: "world", expected: false},
		{name: "empty strings", a: "", b: "", expected: true},
		{name: "case matters", a: "Hello", b: "hello", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals[TestString](tt.a, tt.b))
		})
	}
}

func TestEquals_Struct(t *testing.T) {
	t.Parallel()

	a := TestStruct{ID: 1, Name: "a"}

	assert.True(t, Equals[TestStruct](a, TestStruct{ID: 1, Name: "a"}))
	assert.False(t, Equals[TestStruct](a, TestStruct{ID: 1, Name: "b"}))
	assert.False(t, Equals[TestStruct](a, TestStruct{ID: 2, Name: "a"}))
}

func TestOrdering_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "not recognized", Ordering(7).String())
}

func TestOrdering_Reverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Less, Greater.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
}
