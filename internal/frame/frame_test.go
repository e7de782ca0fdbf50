package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachreach/internal/record"
)

func TestFromRecords(t *testing.T) {
	t.Parallel()

	f := FromRecords([]record.Transformed{
		{"name": "Jane", "city": "Dubai"},
		{"name": "John", "bio": "Teacher"},
	})

	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []string{"city", "name", "bio"}, f.Columns())

	bio, ok := f.Column("bio")
	require.True(t, ok)
	assert.Equal(t, []any{nil, "Teacher"}, bio)
	assert.Equal(t, "John", f.Cell(1, "name"))
	assert.Nil(t, f.Cell(0, "missing"))
	assert.Nil(t, f.Cell(5, "name"))
}

func TestFromStrings(t *testing.T) {
	t.Parallel()

	f := FromStrings([]string{"a", "b", "a"}, [][]string{{"1", "2", "3"}, {"4"}})

	assert.Equal(t, []string{"a", "b"}, f.Columns())
	assert.Equal(t, []any{"1", "2"}, f.Row(0))
	assert.Equal(t, []any{"4", ""}, f.Row(1))
}

func TestFrame_SetFillSelect(t *testing.T) {
	t.Parallel()

	f := New(2)
	f.Fill("x", 0)
	f.Set("y", []any{"a", nil})

	cells, _ := f.Column("y")
	cells[0] = "changed"
	assert.Equal(t, "a", f.Cell(0, "y"), "Column returns a copy")

	sel := f.Select([]string{"y", "missing", "x"})
	assert.Equal(t, []string{"y", "x"}, sel.Columns())
	assert.Equal(t, []any{nil, 0}, sel.Row(1))

	assert.Panics(t, func() { f.Set("z", []any{1}) })
}

func TestAllNullAndBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, AllNull(nil))
	assert.True(t, AllNull([]any{nil, nil}))
	assert.False(t, AllNull([]any{nil, ""}))

	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(""))
	assert.False(t, IsBlank(0))
}
