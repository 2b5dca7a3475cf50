package lisp

// Eval evaluates form in env.  Eval is the public entry point of the
// evaluator; a fatal error anywhere in the evaluation is returned as a
// *FatalError.  The result stays rooted until the next top-level call.
func (rt *Runtime) Eval(env, form Ref) (Ref, error) {
	return rt.Run(func() Ref {
		rt.Push(env)
		rt.Push(form)
		return rt.eval(env, form)
	})
}

// EvalSource parses src with the runtime's Reader and evaluates it in the
// global environment.
func (rt *Runtime) EvalSource(name string, src []byte) (Ref, error) {
	return rt.Run(func() Ref {
		form := rt.read(name, src)
		rt.Push(form)
		return rt.eval(rt.global, form)
	})
}

// Parse parses src with the runtime's Reader without evaluating it.
func (rt *Runtime) Parse(name string, src []byte) (Ref, error) {
	return rt.Run(func() Ref {
		return rt.read(name, src)
	})
}

func (rt *Runtime) read(name string, src []byte) Ref {
	if rt.reader == nil {
		Fatalf("runtime has no reader")
	}
	return rt.reader.Read(rt, name, src)
}

// eval evaluates v in env.  The returned Ref is not rooted: the caller must
// push it or link it into a rooted object before allocating.
func (rt *Runtime) eval(env, v Ref) Ref {
	o := rt.obj(v)
	switch o.typ {
	case LSymbol:
		return rt.Lookup(env, v)
	case LPair:
		if o.a == 0 {
			return v
		}
		return rt.evalCall(env, o.a, o.b)
	case LInt, LString, LDict, LClosure, LMacro, LNative, LSpecial:
		return v
	default:
		Fatalf("cannot evaluate object of type %v", o.typ)
		return 0
	}
}

// evalCall evaluates the call form (head . tail).  Everything the call
// allocates on the active-object stack is popped before returning.
func (rt *Runtime) evalCall(env, head, tail Ref) Ref {
	h := rt.StackHeight()
	fn := rt.eval(env, head)
	rt.Push(fn)

	var result Ref
	f := rt.obj(fn)
	switch f.typ {
	case LSpecial:
		result = rt.ops[f.num].special(rt, env, tail)
	case LNative:
		args := rt.evalArgs(env, tail)
		result = rt.ops[f.num].native(rt, args)
	case LClosure:
		params, body, defEnv := f.a, f.b, f.c
		args := rt.evalArgs(env, tail)
		child := rt.callEnv(defEnv, params, args)
		result = rt.evalBody(child, body)
	case LMacro:
		params, body, defEnv := f.a, f.b, f.c
		child := rt.callEnv(defEnv, params, tail)
		expansion := rt.evalBody(child, body)
		rt.Push(expansion)
		result = rt.eval(env, expansion)
	default:
		Fatalf("not callable: %s", rt.Sprint(fn))
	}
	rt.PopTo(h)
	return result
}

// evalArgs evaluates the elements of list strictly left to right.  The
// resulting list is left on the active-object stack.
func (rt *Runtime) evalArgs(env, list Ref) Ref {
	b := rt.NewListBuilder()
	for o := rt.obj(list); o.a != 0; o = rt.obj(o.b) {
		b.Append(rt.eval(env, o.a))
	}
	return b.List()
}

// evalBody evaluates each form of body in env and returns the value of the
// last one, or nil for an empty body.
func (rt *Runtime) evalBody(env, body Ref) Ref {
	result := rt.lnil
	for o := rt.obj(body); o.a != 0; o = rt.obj(o.b) {
		result = rt.eval(env, o.a)
	}
	return result
}

// IsTrue returns false only for nil.
func (rt *Runtime) IsTrue(v Ref) bool {
	return !rt.IsNil(v)
}
