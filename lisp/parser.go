package lisp

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read parses src and returns a single form that evaluates every
	// top-level form of src in order, as if inside (last ...).  Syntax errors
	// are raised with FatalAt.  The returned form is not rooted.
	Read(rt *Runtime, name string, src []byte) Ref
}
