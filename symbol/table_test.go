package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, ID(1), table.Intern("testing"))
	assert.Equal(t, ID(2), table.Intern("hello"))
	assert.Equal(t, ID(1), table.Intern("testing"))
	assert.Equal(t, 2, table.Len())
	id, ok := table.Peek("hello")
	assert.True(t, ok)
	assert.Equal(t, ID(2), id)
	_, ok = table.Peek("notfound")
	assert.False(t, ok)
	s, ok := table.Symbol(1)
	assert.True(t, ok)
	assert.Equal(t, "testing", s)
	_, ok = table.Symbol(3)
	assert.False(t, ok)
}

func TestTable_InternAll(t *testing.T) {
	table := NewTable()
	ids := table.InternAll("a", "b", "a")
	assert.Equal(t, []ID{1, 2, 1}, ids)
}

func TestTable_String(t *testing.T) {
	table := NewTable()
	hello := table.Intern("hello")
	assert.Equal(t, "hello", table.String(hello))
	assert.Equal(t, "#<SYMBOL 0x1234>", table.String(0x1234))
}
