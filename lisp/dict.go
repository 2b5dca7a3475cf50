package lisp

import "bytes"

// DefaultDictCapacity is the capacity lower bound of dicts created by the
// dict builtin.
const DefaultDictCapacity = 31

// dict is a fixed-capacity chained hash table.  Each bucket holds one entry
// inline; colliding keys hang off the inline entry's overflow chain.  A dict
// never grows.
type dict struct {
	capacity int
	filled   int
	buckets  []dictEntry
}

// dictEntry is a bucket slot or chain node.  A zero key marks an unused
// inline slot.
type dictEntry struct {
	key   Ref
	value Ref
	next  *dictEntry
}

// each calls fn for every entry in bucket order, then chain order.
func (d *dict) each(fn func(k, v Ref)) {
	for i := range d.buckets {
		b := &d.buckets[i]
		if b.key == 0 {
			continue
		}
		for e := b; e != nil; e = e.next {
			fn(e.key, e.value)
		}
	}
}

// nextPrime returns the smallest prime not less than lower, found by trial
// division over odd candidates.
func nextPrime(lower int) int {
	if lower <= 3 {
		return 3
	}
	n := lower
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// djb2 is the 33-xor variant of Bernstein's hash.
func djb2(b []byte) uint64 {
	h := uint64(5381)
	for _, c := range b {
		h = h*33 ^ uint64(c)
	}
	return h
}

func (rt *Runtime) hash(k Ref) uint64 {
	o := rt.obj(k)
	switch o.typ {
	case LString, LSymbol:
		return djb2(o.bytes)
	case LInt:
		return uint64(o.num)
	default:
		Fatalf("unhashable type: %v", o.typ)
		return 0
	}
}

// keyEqual compares dict keys structurally.
func (rt *Runtime) keyEqual(a, b Ref) bool {
	if a == b {
		return true
	}
	x, y := rt.obj(a), rt.obj(b)
	if x.typ != y.typ {
		return false
	}
	switch x.typ {
	case LInt:
		return x.num == y.num
	case LSymbol:
		return x.sym == y.sym
	case LString:
		return bytes.Equal(x.bytes, y.bytes)
	default:
		return false
	}
}

// NewDict returns an empty dict whose capacity is the first prime not less
// than capacity.
func (rt *Runtime) NewDict(capacity int) Ref {
	c := nextPrime(capacity)
	v, o := rt.alloc(LDict)
	o.dict = &dict{
		capacity: c,
		buckets:  make([]dictEntry, c),
	}
	return v
}

// DictInsert binds k to v in dict d, overwriting an existing binding for an
// equal key.  Adding a key when filled+1 >= capacity is fatal; dicts do not
// grow.  DictInsert never allocates.
func (rt *Runtime) DictInsert(d, k, v Ref) {
	dd := rt.mustType(d, LDict).dict
	b := &dd.buckets[rt.hash(k)%uint64(dd.capacity)]
	if b.key == 0 {
		rt.checkFull(dd)
		b.key, b.value = k, v
		dd.filled++
		return
	}
	for e := b; ; e = e.next {
		if rt.keyEqual(e.key, k) {
			e.value = v
			return
		}
		if e.next == nil {
			rt.checkFull(dd)
			e.next = &dictEntry{key: k, value: v}
			dd.filled++
			return
		}
	}
}

func (rt *Runtime) checkFull(d *dict) {
	if d.filled+1 >= d.capacity {
		Fatalf("dict full: %d of capacity %d", d.filled, d.capacity)
	}
}

// DictGetOrNull returns the value bound to k in d and whether a binding
// exists.
func (rt *Runtime) DictGetOrNull(d, k Ref) (Ref, bool) {
	dd := rt.mustType(d, LDict).dict
	b := &dd.buckets[rt.hash(k)%uint64(dd.capacity)]
	if b.key == 0 {
		return 0, false
	}
	for e := b; e != nil; e = e.next {
		if rt.keyEqual(e.key, k) {
			return e.value, true
		}
	}
	return 0, false
}

// DictGet returns the value bound to k in d or nil when k is absent.
func (rt *Runtime) DictGet(d, k Ref) Ref {
	v, ok := rt.DictGetOrNull(d, k)
	if !ok {
		return rt.lnil
	}
	return v
}

// DictLen returns the number of entries in d.
func (rt *Runtime) DictLen(d Ref) int {
	return rt.mustType(d, LDict).dict.filled
}

// DictCapacity returns the fixed capacity of d.
func (rt *Runtime) DictCapacity(d Ref) int {
	return rt.mustType(d, LDict).dict.capacity
}

// DictEach calls fn for each entry of d in bucket-then-chain order.  fn must
// not insert into d.
func (rt *Runtime) DictEach(d Ref, fn func(k, v Ref)) {
	rt.mustType(d, LDict).dict.each(fn)
}
