package lisp

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/luthersystems/lc/symbol"
)

// LBuiltin is a native function.  It receives the evaluated argument list,
// which is rooted for the duration of the call.
type LBuiltin func(rt *Runtime, args Ref) Ref

// LSpecialOp is a special form.  It receives the unevaluated argument list
// and the caller's environment and decides what to evaluate.
type LSpecialOp func(rt *Runtime, env Ref, args Ref) Ref

// operation is an entry in the runtime's operation table.  LNative and
// LSpecial objects refer to operations by index.
type operation struct {
	name    string
	native  LBuiltin
	special LSpecialOp
}

// Runtime is the complete state of an interpreter: the heap, the intern
// table, the global environment and the evaluator's active-object stack.  A
// Runtime is not safe for concurrent use.
type Runtime struct {
	heap     heap
	symbols  *symbol.Table
	interned map[symbol.ID]Ref
	stack    []Ref
	global   Ref
	lnil     Ref
	last     Ref
	ops      []operation

	symParent Ref
	symArgs   Ref
	symQuote  Ref
	symLast   Ref

	reader  Reader
	foreign Foreign
	stdout  io.Writer
	logger  *log.Logger
	traceGC bool

	globalCap int
	dictCap   int
	envSlack  int
}

// New returns a Runtime whose global environment holds every builtin
// function and special form.
func New(configs ...Config) (*Runtime, error) {
	rt := &Runtime{
		symbols:   symbol.NewTable(),
		interned:  make(map[symbol.ID]Ref),
		stdout:    os.Stdout,
		logger:    log.New(os.Stderr, "", log.LstdFlags),
		globalCap: DefaultGlobalCapacity,
		dictCap:   DefaultDictCapacity,
		envSlack:  DefaultEnvSlack,
	}
	rt.heap.init(DefaultGCThreshold)
	for _, config := range configs {
		if err := config(rt); err != nil {
			return nil, err
		}
	}
	_, err := rt.Run(func() Ref {
		rt.bootstrap()
		return rt.lnil
	})
	if err != nil {
		return nil, fmt.Errorf("runtime initialization: %w", err)
	}
	return rt, nil
}

func (rt *Runtime) bootstrap() {
	prev := rt.DisableCollection()
	rt.lnil, _ = rt.alloc(LPair)
	rt.global = rt.NewDict(rt.globalCap)
	rt.RestoreCollection(prev)

	rt.symParent = rt.Symbol(ParentSymbol)
	rt.symArgs = rt.Symbol(ArgsSymbol)
	rt.symQuote = rt.Symbol("quote")
	rt.symLast = rt.Symbol("last")

	for _, op := range langSpecialOps {
		rt.register(LSpecial, operation{name: op.name, special: op.fn})
	}
	for _, fn := range langBuiltins {
		rt.register(LNative, operation{name: fn.name, native: fn.fn})
	}
}

// register appends op to the operation table and binds its name in the
// global environment.
func (rt *Runtime) register(t LType, op operation) {
	sym := rt.Symbol(op.name)
	if _, ok := rt.DictGetOrNull(rt.global, sym); ok {
		panicf("symbol already defined: %s", op.name)
	}
	id := len(rt.ops)
	rt.ops = append(rt.ops, op)
	v, o := rt.alloc(t)
	o.num = int64(id)
	rt.DictInsert(rt.global, sym, v)
}

// Run calls fn as a top-level evaluation.  A FatalError raised by fn is
// returned with the active-object stack and collection setting restored to
// their state before the call.  The result of fn stays rooted until the next
// call to Run.
func (rt *Runtime) Run(fn func() Ref) (result Ref, err error) {
	h := rt.StackHeight()
	enabled := rt.heap.enabled
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ferr, ok := r.(*FatalError)
		if !ok {
			panic(r)
		}
		rt.PopTo(h)
		rt.heap.enabled = enabled
		rt.last = rt.lnil
		result, err = rt.lnil, ferr
	}()
	result = fn()
	rt.last = result
	rt.PopTo(h)
	return result, nil
}

// Close releases the runtime's Foreign when it implements io.Closer.  Foreign
// builtins fail after Close as if they had never been enabled.
func (rt *Runtime) Close() error {
	f := rt.foreign
	rt.foreign = nil
	if c, ok := f.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Symbols returns the intern table of rt.
func (rt *Runtime) Symbols() *symbol.Table {
	return rt.symbols
}

// OpName returns the registered name of the native function or special form
// v.
func (rt *Runtime) OpName(v Ref) (string, bool) {
	o := rt.obj(v)
	if o.typ != LNative && o.typ != LSpecial {
		return "", false
	}
	return rt.ops[o.num].name, true
}
