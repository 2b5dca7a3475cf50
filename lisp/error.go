package lisp

import "fmt"

// FatalError is raised for every unrecoverable condition: malformed syntax,
// type mismatches in native operations, calling a value that is not
// callable, dict capacity exhaustion and stale references.  A FatalError
// unwinds the whole evaluation; the language has no way to catch one.  The
// public entry points of a Runtime convert it into an ordinary error.
type FatalError struct {
	// Source is an optional source location, e.g. "test.lc:3:7".
	Source string
	Msg    string
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	if e.Source == "" {
		return e.Msg
	}
	return e.Source + ": " + e.Msg
}

// Fatalf raises a FatalError with a formatted message.
func Fatalf(format string, v ...interface{}) {
	panic(&FatalError{Msg: fmt.Sprintf(format, v...)})
}

// FatalAt raises a FatalError attributed to the given source location.
func FatalAt(source string, format string, v ...interface{}) {
	panic(&FatalError{Source: source, Msg: fmt.Sprintf(format, v...)})
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
