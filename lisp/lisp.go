// Package lisp implements the lc object model, evaluator and garbage
// collector.
//
// Every object lives in the heap of a Runtime and is addressed by a Ref.  A
// Ref stays valid only while the object it names is reachable from the
// runtime's roots: the global environment, the symbol intern table and the
// evaluator's active-object stack.  Code that allocates while holding an
// unrooted Ref must either push the Ref with Push or bracket the allocations
// with DisableCollection and RestoreCollection.
package lisp

import (
	"fmt"

	"github.com/luthersystems/lc/symbol"
)

// LType is the type of an object.
type LType uint8

// Possible LType values
const (
	LInvalid LType = iota
	LInt
	LString
	LSymbol
	LPair
	LDict
	LNative
	LSpecial
	LMacro
	LClosure
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LInt:     "int",
	LString:  "string",
	LSymbol:  "symbol",
	LPair:    "pair",
	LDict:    "dict",
	LNative:  "native",
	LSpecial: "special",
	LMacro:   "macro",
	LClosure: "closure",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// Ref is a handle to an object in a Runtime heap.  The low 32 bits select a
// heap slot and the high 32 bits hold the slot generation at allocation time,
// so a Ref to a swept object is detected instead of silently aliasing the
// slot's next tenant.  The zero Ref names no object.
type Ref uint64

func makeRef(index, gen uint32) Ref {
	return Ref(uint64(gen)<<32 | uint64(index))
}

func (v Ref) index() uint32 {
	return uint32(v)
}

func (v Ref) gen() uint32 {
	return uint32(v >> 32)
}

func (v Ref) String() string {
	return fmt.Sprintf("#<ref %d/%d>", v.index(), v.gen())
}

// object is a heap slot.  Fields are interpreted according to typ:
//
//	LInt               num
//	LString, LSymbol   bytes (and sym for LSymbol)
//	LPair              a=head b=tail
//	LDict              dict
//	LNative, LSpecial  num=operation id
//	LMacro, LClosure   a=params b=body c=defining environment
type object struct {
	typ    LType
	marked bool
	gen    uint32
	next   uint32 // allocation list link
	num    int64
	bytes  []byte
	sym    symbol.ID
	a      Ref
	b      Ref
	c      Ref
	dict   *dict
}

func (o *object) release() {
	gen := o.gen + 1
	*o = object{gen: gen}
}
