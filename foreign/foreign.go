// Package foreign implements lisp.Foreign for the host process.  Symbols
// callable through native-call are looked up in a registry: New populates it
// with the process-level calls the platform supports and Register adds more.
package foreign

import (
	"errors"
	"fmt"
	"sort"

	"github.com/luthersystems/lc/lisp"
)

// ErrUnsupported is returned for capabilities the platform does not provide.
var ErrUnsupported = errors.New("foreign: unsupported on this platform")

// Func is a registered foreign function taking exactly Arity arguments.
type Func struct {
	Arity int
	Fn    func(args []int64) (int64, error)
}

// Process is a lisp.Foreign backed by the calling process.  A Process is not
// safe for concurrent use.
type Process struct {
	funcs   map[string]Func
	regions [][]byte
}

var _ lisp.Foreign = (*Process)(nil)

// New returns a Process with the platform's default registry.
func New() *Process {
	p := &Process{funcs: make(map[string]Func)}
	for name, fn := range processFuncs() {
		p.funcs[name] = fn
	}
	return p
}

// Register makes fn callable as name, replacing any previous registration.
func (p *Process) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("foreign: empty function name")
	}
	if fn.Arity < 0 || fn.Arity > lisp.MaxNativeArgs {
		return fmt.Errorf("foreign: %s: invalid arity %d", name, fn.Arity)
	}
	if fn.Fn == nil {
		return fmt.Errorf("foreign: %s: nil function", name)
	}
	p.funcs[name] = fn
	return nil
}

// Names returns the sorted names of registered functions.
func (p *Process) Names() []string {
	names := make([]string, 0, len(p.funcs))
	for name := range p.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call implements lisp.Foreign.
func (p *Process) Call(name string, args []int64) (int64, error) {
	fn, ok := p.funcs[name]
	if !ok {
		return 0, fmt.Errorf("unknown symbol: %s", name)
	}
	if len(args) != fn.Arity {
		return 0, fmt.Errorf("%d arguments expected (got %d)", fn.Arity, len(args))
	}
	return fn.Fn(args)
}

// MakeExecutable implements lisp.Foreign.  The memory stays mapped until
// Close is called.
func (p *Process) MakeExecutable(code []byte) (uintptr, error) {
	if len(code) == 0 {
		return 0, fmt.Errorf("empty code")
	}
	b, err := mapExecutable(code)
	if err != nil {
		return 0, err
	}
	p.regions = append(p.regions, b)
	return regionAddr(b), nil
}

// Close unmaps every region returned by MakeExecutable.
func (p *Process) Close() error {
	var err error
	for _, b := range p.regions {
		if e := unmap(b); e != nil && err == nil {
			err = e
		}
	}
	p.regions = nil
	return err
}
