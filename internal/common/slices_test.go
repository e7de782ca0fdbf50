package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty([]string{}))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)

	got := AppendUnique([]string{"subject"}, "Nationality")
	got = AppendUnique(got, "subject")
	assert.Equal(t, []string{"subject", "Nationality"}, got)
}

func TestSplitTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		sep  string
		want []string
	}{
		{"first_name + last_name", "+", []string{"first_name", "last_name"}},
		{"Math, Physics ,, ", ",", []string{"Math", "Physics"}},
		{"  ", ",", nil},
		{"", "+", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTrim(tt.in, tt.sep))
		})
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t"))
	assert.False(t, IsBlank(" x "))
}
