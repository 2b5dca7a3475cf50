package lisp

// MinGCThreshold is the smallest allocation threshold a collection will
// leave behind.
const MinGCThreshold = 8

// DefaultGCThreshold is the live-object count that triggers the first
// collection unless WithGCThreshold is used.
const DefaultGCThreshold = 1024

// heap is an arena of objects.  Live objects are threaded through a single
// allocation list which is the only ownership record the collector consults.
// Slots released by a sweep are recycled through free.
type heap struct {
	slots       []*object // slots[0] is never allocated
	free        []uint32
	first       uint32 // head of the allocation list
	live        int
	threshold   int
	enabled     bool
	collections int
	freed       int
}

func (h *heap) init(threshold int) {
	h.slots = []*object{{}}
	h.threshold = threshold
	h.enabled = true
}

// Stats describes the state of a Runtime heap.
type Stats struct {
	// Live is the number of allocated objects not yet swept.
	Live int
	// Threshold is the live count at which the next collection runs.
	Threshold int
	// Collections is the number of completed collections.
	Collections int
	// Freed is the total number of objects swept across all collections.
	Freed int
}

// Stats returns heap statistics for rt.
func (rt *Runtime) Stats() Stats {
	return Stats{
		Live:        rt.heap.live,
		Threshold:   rt.heap.threshold,
		Collections: rt.heap.collections,
		Freed:       rt.heap.freed,
	}
}

// alloc returns a new object of type t.  If the live count has reached the
// threshold and collection is enabled a full collection runs first, so any
// Ref the caller holds must be rooted.  The returned pointer is stable for
// the lifetime of the slot.
func (rt *Runtime) alloc(t LType) (Ref, *object) {
	h := &rt.heap
	if h.live >= h.threshold && h.enabled {
		rt.collect()
	}
	var i uint32
	if n := len(h.free); n > 0 {
		i = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		i = uint32(len(h.slots))
		h.slots = append(h.slots, &object{})
	}
	o := h.slots[i]
	o.typ = t
	o.next = h.first
	h.first = i
	h.live++
	return makeRef(i, o.gen), o
}

// obj dereferences v.  A Ref to a swept slot is a fatal error.
func (rt *Runtime) obj(v Ref) *object {
	i := v.index()
	if i == 0 || int(i) >= len(rt.heap.slots) {
		Fatalf("invalid reference: %v", v)
	}
	o := rt.heap.slots[i]
	if o.gen != v.gen() || o.typ == LInvalid {
		Fatalf("stale reference: %v", v)
	}
	return o
}

// DisableCollection prevents collections until RestoreCollection is called
// and returns the previous setting.  Brackets nest:
//
//	prev := rt.DisableCollection()
//	defer rt.RestoreCollection(prev)
func (rt *Runtime) DisableCollection() bool {
	prev := rt.heap.enabled
	rt.heap.enabled = false
	return prev
}

// RestoreCollection restores a setting returned by DisableCollection.
func (rt *Runtime) RestoreCollection(prev bool) {
	rt.heap.enabled = prev
}

// CollectionEnabled returns true if allocation may currently trigger a
// collection.
func (rt *Runtime) CollectionEnabled() bool {
	return rt.heap.enabled
}

// Push adds v to the active-object stack, making it a root until the stack is
// popped below its position.
func (rt *Runtime) Push(v Ref) {
	rt.stack = append(rt.stack, v)
}

// StackHeight returns the height of the active-object stack.
func (rt *Runtime) StackHeight() int {
	return len(rt.stack)
}

// PopTo pops the active-object stack back to height n.
func (rt *Runtime) PopTo(n int) {
	if n > len(rt.stack) {
		panicf("active stack height %d is below %d", len(rt.stack), n)
	}
	for i := n; i < len(rt.stack); i++ {
		rt.stack[i] = 0
	}
	rt.stack = rt.stack[:n]
}

// Int returns a new LInt holding x.
func (rt *Runtime) Int(x int64) Ref {
	v, o := rt.alloc(LInt)
	o.num = x
	return v
}

// String returns a new LString holding a copy of s.
func (rt *Runtime) String(s string) Ref {
	v, o := rt.alloc(LString)
	o.bytes = []byte(s)
	return v
}

// Symbol returns the interned LSymbol named name, allocating it on first use.
// Interned symbols are roots and are never collected.
func (rt *Runtime) Symbol(name string) Ref {
	id := rt.symbols.Intern(name)
	if v, ok := rt.interned[id]; ok {
		return v
	}
	v, o := rt.alloc(LSymbol)
	o.bytes = []byte(name)
	o.sym = id
	rt.interned[id] = v
	return v
}

// Nil returns the canonical empty list.
func (rt *Runtime) Nil() Ref {
	return rt.lnil
}

// Bool returns Int 1 if ok and nil otherwise.
func (rt *Runtime) Bool(ok bool) Ref {
	if ok {
		return rt.Int(1)
	}
	return rt.lnil
}

// Cons returns a new pair.  tail must be a pair; improper lists do not exist.
func (rt *Runtime) Cons(head, tail Ref) Ref {
	rt.obj(head)
	if t := rt.obj(tail).typ; t != LPair {
		Fatalf("cons: tail is not a list: %v", t)
	}
	v, o := rt.alloc(LPair)
	o.a = head
	o.b = tail
	return v
}

func (rt *Runtime) newCallable(t LType, params, body, env Ref) Ref {
	v, o := rt.alloc(t)
	o.a = params
	o.b = body
	o.c = env
	return v
}

// Type returns the type of v.
func (rt *Runtime) Type(v Ref) LType {
	return rt.obj(v).typ
}

// IsNil returns true if v is an empty pair.
func (rt *Runtime) IsNil(v Ref) bool {
	o := rt.obj(v)
	return o.typ == LPair && o.a == 0
}

// GetInt returns the value of LInt v.
func (rt *Runtime) GetInt(v Ref) (int64, bool) {
	o := rt.obj(v)
	if o.typ != LInt {
		return 0, false
	}
	return o.num, true
}

// GetString returns the contents of LString v.
func (rt *Runtime) GetString(v Ref) (string, bool) {
	o := rt.obj(v)
	if o.typ != LString {
		return "", false
	}
	return string(o.bytes), true
}

// GetSymbol returns the name of LSymbol v.
func (rt *Runtime) GetSymbol(v Ref) (string, bool) {
	o := rt.obj(v)
	if o.typ != LSymbol {
		return "", false
	}
	return string(o.bytes), true
}

// Head returns the head of pair v.  The head of nil is nil.
func (rt *Runtime) Head(v Ref) Ref {
	o := rt.mustType(v, LPair)
	if o.a == 0 {
		return rt.lnil
	}
	return o.a
}

// Tail returns the tail of pair v.  The tail of nil is nil.
func (rt *Runtime) Tail(v Ref) Ref {
	o := rt.mustType(v, LPair)
	if o.a == 0 {
		return rt.lnil
	}
	return o.b
}

// Slice collects the elements of list v.
func (rt *Runtime) Slice(v Ref) []Ref {
	var s []Ref
	for o := rt.mustType(v, LPair); o.a != 0; o = rt.obj(o.b) {
		s = append(s, o.a)
	}
	return s
}

// Len returns the number of elements of list v.
func (rt *Runtime) Len(v Ref) int {
	n := 0
	for o := rt.mustType(v, LPair); o.a != 0; o = rt.obj(o.b) {
		n++
	}
	return n
}

func (rt *Runtime) mustType(v Ref, t LType) *object {
	o := rt.obj(v)
	if o.typ != t {
		Fatalf("expected %v but got %v", t, o.typ)
	}
	return o
}

// ListBuilder builds a list one element at a time.  The first cell is pushed
// onto the active-object stack so the partial list stays rooted; the caller
// is responsible for popping the stack back to where it was.
type ListBuilder struct {
	rt    *Runtime
	front Ref
	back  Ref
}

// NewListBuilder returns an empty ListBuilder.
func (rt *Runtime) NewListBuilder() *ListBuilder {
	return &ListBuilder{rt: rt}
}

// Append adds v to the end of the list.  v must be rooted or must have been
// returned by the most recent allocation.
func (b *ListBuilder) Append(v Ref) {
	rt := b.rt
	prev := rt.DisableCollection()
	cell := rt.Cons(v, rt.lnil)
	if b.front == 0 {
		b.front = cell
		rt.Push(cell)
	} else {
		rt.obj(b.back).b = cell
	}
	b.back = cell
	rt.RestoreCollection(prev)
}

// List returns the list built so far.
func (b *ListBuilder) List() Ref {
	if b.front == 0 {
		return b.rt.lnil
	}
	return b.front
}
