package lisp

// Collect runs a full collection and returns the number of objects freed.
// Collect is a no-op returning 0 while collection is disabled.
func (rt *Runtime) Collect() int {
	return rt.collect()
}

func (rt *Runtime) collect() int {
	h := &rt.heap
	if !h.enabled {
		return 0
	}
	rt.markRoots()
	freed := rt.sweep()
	h.threshold = max(2*h.live, MinGCThreshold)
	h.collections++
	h.freed += freed
	if rt.traceGC {
		rt.logger.Printf("gc: collection %d freed %d live %d threshold %d",
			h.collections, freed, h.live, h.threshold)
	}
	return freed
}

func (rt *Runtime) markRoots() {
	rt.mark(rt.lnil)
	rt.mark(rt.global)
	rt.mark(rt.last)
	for _, v := range rt.interned {
		rt.mark(v)
	}
	for _, v := range rt.stack {
		rt.mark(v)
	}
}

// mark sets the mark bit on everything reachable from v.  Already marked
// objects return immediately, which also terminates cycles.  Pair tails,
// callable environments and $parent links are followed iteratively to bound
// recursion on long lists and deep scope chains.
func (rt *Runtime) mark(v Ref) {
	for v != 0 {
		o := rt.obj(v)
		if o.marked {
			return
		}
		o.marked = true
		switch o.typ {
		case LPair:
			rt.mark(o.a)
			v = o.b
		case LDict:
			var parent Ref
			o.dict.each(func(k, val Ref) {
				rt.mark(k)
				if k == rt.symParent {
					parent = val
					return
				}
				rt.mark(val)
			})
			v = parent
		case LMacro, LClosure:
			rt.mark(o.a)
			rt.mark(o.b)
			v = o.c
		default:
			return
		}
	}
}

// sweep makes one pass over the allocation list.  Unmarked objects are
// unlinked and their slots released for reuse; marked objects are unmarked
// for the next cycle.
func (rt *Runtime) sweep() int {
	h := &rt.heap
	freed := 0
	var prev *object
	for i := h.first; i != 0; {
		o := h.slots[i]
		next := o.next
		if o.marked {
			o.marked = false
			prev = o
			i = next
			continue
		}
		if prev == nil {
			h.first = next
		} else {
			prev.next = next
		}
		o.release()
		h.free = append(h.free, i)
		h.live--
		freed++
		i = next
	}
	return freed
}
