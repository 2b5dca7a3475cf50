package lisp

type langSpecialOp struct {
	name string
	fn   LSpecialOp
}

var langSpecialOps = []*langSpecialOp{
	{"quote", opQuote},
	{"if", opIf},
	{"switch", opSwitch},
	{"or", opOr},
	{"and", opAnd},
	{"=", opAssign},
	{"~", opClosure},
	{"macro", opMacro},
}

// argSlice collects list and checks that it has between min and max
// elements.  A negative max means no upper bound.
func (rt *Runtime) argSlice(name string, list Ref, min, max int) []Ref {
	args := rt.Slice(list)
	n := len(args)
	switch {
	case n < min && min == max:
		Fatalf("%s: %d arguments expected (got %d)", name, min, n)
	case n < min:
		Fatalf("%s: at least %d arguments expected (got %d)", name, min, n)
	case max >= 0 && n > max:
		Fatalf("%s: at most %d arguments expected (got %d)", name, max, n)
	}
	return args
}

// (quote form)
func opQuote(rt *Runtime, env Ref, args Ref) Ref {
	return rt.argSlice("quote", args, 1, 1)[0]
}

// (if condition then [else])
func opIf(rt *Runtime, env Ref, args Ref) Ref {
	a := rt.argSlice("if", args, 2, 3)
	if rt.IsTrue(rt.eval(env, a[0])) {
		return rt.eval(env, a[1])
	}
	if len(a) == 3 {
		return rt.eval(env, a[2])
	}
	return rt.lnil
}

// (switch test1 expr1 test2 expr2 ... [default])
func opSwitch(rt *Runtime, env Ref, args Ref) Ref {
	a := rt.argSlice("switch", args, 0, -1)
	for len(a) >= 2 {
		if rt.IsTrue(rt.eval(env, a[0])) {
			return rt.eval(env, a[1])
		}
		a = a[2:]
	}
	if len(a) == 1 {
		return rt.eval(env, a[0])
	}
	return rt.lnil
}

// (or expr...) returns the first true value.
func opOr(rt *Runtime, env Ref, args Ref) Ref {
	for o := rt.obj(args); o.a != 0; o = rt.obj(o.b) {
		v := rt.eval(env, o.a)
		if rt.IsTrue(v) {
			return v
		}
	}
	return rt.lnil
}

// (and expr...) returns the last value if every value is true.
func opAnd(rt *Runtime, env Ref, args Ref) Ref {
	if rt.IsNil(args) {
		return rt.Int(1)
	}
	var v Ref
	for o := rt.obj(args); o.a != 0; o = rt.obj(o.b) {
		v = rt.eval(env, o.a)
		if !rt.IsTrue(v) {
			return rt.lnil
		}
	}
	return v
}

// (= name expr)
func opAssign(rt *Runtime, env Ref, args Ref) Ref {
	a := rt.argSlice("=", args, 2, 2)
	if rt.Type(a[0]) != LSymbol {
		Fatalf("=: first argument is not a symbol: %v", rt.Type(a[0]))
	}
	v := rt.eval(env, a[1])
	rt.Assign(env, a[0], v)
	return v
}

// (~ params body...)
func opClosure(rt *Runtime, env Ref, args Ref) Ref {
	params, body := rt.callableParts("~", args)
	return rt.newCallable(LClosure, params, body, env)
}

// (macro params body...)
func opMacro(rt *Runtime, env Ref, args Ref) Ref {
	params, body := rt.callableParts("macro", args)
	return rt.newCallable(LMacro, params, body, env)
}

func (rt *Runtime) callableParts(name string, args Ref) (params, body Ref) {
	if rt.IsNil(args) {
		Fatalf("%s: parameter list expected", name)
	}
	params = rt.Head(args)
	switch rt.Type(params) {
	case LSymbol:
	case LPair:
		for _, p := range rt.Slice(params) {
			if rt.Type(p) != LSymbol {
				Fatalf("%s: parameter is not a symbol: %v", name, rt.Type(p))
			}
		}
	default:
		Fatalf("%s: invalid parameter list: %v", name, rt.Type(params))
	}
	return params, rt.Tail(args)
}
