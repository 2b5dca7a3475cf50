package lisp

import (
	"fmt"
	"io"
	"log"
)

// Config is a function that configures a runtime before its global
// environment is built.
type Config func(rt *Runtime) error

// Foreign is the boundary to process-level capabilities the evaluator cannot
// express itself.  It backs the native-call and make-exec builtins.
type Foreign interface {
	// Call invokes the process symbol name with up to six integer arguments.
	Call(name string, args []int64) (int64, error)
	// MakeExecutable copies code into freshly allocated executable memory and
	// returns its address.
	MakeExecutable(code []byte) (uintptr, error)
}

// WithReader returns a Config that makes the runtime use r to parse source.
// There is no default Reader.
func WithReader(r Reader) Config {
	return func(rt *Runtime) error {
		rt.reader = r
		return nil
	}
}

// WithForeign returns a Config that enables the native-call and make-exec
// builtins through f.
func WithForeign(f Foreign) Config {
	return func(rt *Runtime) error {
		rt.foreign = f
		return nil
	}
}

// WithStdout returns a Config that makes the print builtin write to w instead
// of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) error {
		rt.stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes the runtime write diagnostic output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) error {
		rt.logger.SetOutput(w)
		return nil
	}
}

// WithLogger returns a Config that replaces the runtime's diagnostic logger.
func WithLogger(l *log.Logger) Config {
	return func(rt *Runtime) error {
		if l == nil {
			return fmt.Errorf("nil logger")
		}
		rt.logger = l
		return nil
	}
}

// WithGCTrace returns a Config that logs a line after every collection.
func WithGCTrace(on bool) Config {
	return func(rt *Runtime) error {
		rt.traceGC = on
		return nil
	}
}

// WithGCThreshold returns a Config that sets the live-object count which
// triggers the first collection.
func WithGCThreshold(n int) Config {
	return func(rt *Runtime) error {
		if n < MinGCThreshold {
			return fmt.Errorf("gc threshold %d is below the minimum %d", n, MinGCThreshold)
		}
		rt.heap.threshold = n
		return nil
	}
}

// WithGlobalCapacity returns a Config that sets the capacity lower bound of
// the global environment.  The global environment must hold every builtin.
func WithGlobalCapacity(n int) Config {
	return func(rt *Runtime) error {
		nops := len(langBuiltins) + len(langSpecialOps)
		if n < nops+2 {
			return fmt.Errorf("global capacity %d cannot hold the %d builtins", n, nops)
		}
		rt.globalCap = n
		return nil
	}
}

// WithDictCapacity returns a Config that sets the capacity lower bound of
// dicts created by the dict builtin.
func WithDictCapacity(n int) Config {
	return func(rt *Runtime) error {
		if n < 2 {
			return fmt.Errorf("invalid dict capacity: %d", n)
		}
		rt.dictCap = n
		return nil
	}
}

// WithEnvSlack returns a Config that sets how many local bindings a call
// frame can hold beyond its parameters.
func WithEnvSlack(n int) Config {
	return func(rt *Runtime) error {
		if n < 0 {
			return fmt.Errorf("invalid environment slack: %d", n)
		}
		rt.envSlack = n
		return nil
	}
}
