// Package symbol implements the symbol intern table shared by the reader and
// the evaluator.  Interned symbols with equal names always receive the same
// ID so symbol comparison never needs to look at bytes.
package symbol

import "fmt"

// An ID is a unique handle for an interned symbol.  The zero ID is never
// assigned to a symbol.
type ID uint32

// MaxID is the largest ID a Table will hand out.
const MaxID = 0xFFFFFFFF

// Table maps symbol names to IDs and back.  A Table is not safe for
// concurrent use.
type Table struct {
	lastid ID
	i      map[ID]string
	s      map[string]ID
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		i: make(map[ID]string),
		s: make(map[string]ID),
	}
}

// Len returns the number of symbols interned in the table.
func (t *Table) Len() int {
	return len(t.s)
}

// Intern inserts s into the table if it is not present and returns its ID.
func (t *Table) Intern(s string) ID {
	if id, ok := t.s[s]; ok {
		return id
	}
	if t.lastid == MaxID {
		panic("too many symbols interned")
	}
	t.lastid++
	id := t.lastid
	t.s[s] = id
	t.i[id] = s
	return id
}

// InternAll interns each of symbols and returns their IDs in order.
func (t *Table) InternAll(symbols ...string) []ID {
	ids := make([]ID, 0, len(symbols))
	for _, s := range symbols {
		ids = append(ids, t.Intern(s))
	}
	return ids
}

// Peek retrieves the ID of a symbol without interning it.  Peek returns true
// iff the symbol has been interned into the table.
func (t *Table) Peek(s string) (ID, bool) {
	id, ok := t.s[s]
	return id, ok
}

// Symbol returns the name associated with id.
func (t *Table) Symbol(id ID) (string, bool) {
	s, ok := t.i[id]
	return s, ok
}

// String returns the name of id or a diagnostic string when id is unknown to
// t.
func (t *Table) String(id ID) string {
	if s, ok := t.i[id]; ok {
		return s
	}
	return fmt.Sprintf("#<SYMBOL %#x>", uint32(id))
}
