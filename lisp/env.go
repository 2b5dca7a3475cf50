package lisp

// Reserved environment keys.
const (
	// ParentSymbol is bound to the enclosing environment in every
	// environment except the global one.
	ParentSymbol = "$parent"
	// ArgsSymbol is bound to the argument list inside a call frame.
	ArgsSymbol = "$args"
)

// DefaultGlobalCapacity is the capacity lower bound of the global
// environment.
const DefaultGlobalCapacity = 1021

// DefaultEnvSlack is the number of bindings a call frame can hold in addition
// to its parameters and reserved keys.
const DefaultEnvSlack = 16

// Global returns the global environment of rt.
func (rt *Runtime) Global() Ref {
	return rt.global
}

// NewEnv returns an empty environment whose parent is parent.  parent must be
// rooted.
func (rt *Runtime) NewEnv(parent Ref) Ref {
	return rt.newEnv(parent, 0)
}

func (rt *Runtime) newEnv(parent Ref, nparams int) Ref {
	env := rt.NewDict(nparams + rt.envSlack + 2)
	if parent != 0 {
		rt.DictInsert(env, rt.symParent, parent)
	}
	return env
}

// Parent returns the enclosing environment of env and false if env is a root
// environment.
func (rt *Runtime) Parent(env Ref) (Ref, bool) {
	p, ok := rt.DictGetOrNull(env, rt.symParent)
	if !ok || rt.Type(p) != LDict {
		return 0, false
	}
	return p, true
}

// Lookup resolves sym starting at env and walking the parent chain.  An
// unbound symbol resolves to nil.
func (rt *Runtime) Lookup(env, sym Ref) Ref {
	for {
		if v, ok := rt.DictGetOrNull(env, sym); ok {
			return v
		}
		p, ok := rt.Parent(env)
		if !ok {
			return rt.DictGet(env, sym)
		}
		env = p
	}
}

// Assign rebinds sym in the nearest environment, starting at env, that
// already binds it.  If no environment binds sym it is bound in env itself.
func (rt *Runtime) Assign(env, sym, v Ref) {
	for e := env; ; {
		if _, ok := rt.DictGetOrNull(e, sym); ok {
			rt.DictInsert(e, sym, v)
			return
		}
		p, ok := rt.Parent(e)
		if !ok {
			break
		}
		e = p
	}
	rt.DictInsert(env, sym, v)
}

// Define binds sym to v in env without consulting parent environments.
func (rt *Runtime) Define(env, sym, v Ref) {
	rt.DictInsert(env, sym, v)
}

// callEnv creates the environment of a closure or macro call and binds params
// positionally to args.  Missing arguments bind to nil and extra arguments
// remain reachable through $args.  A symbol in place of a parameter list
// binds the entire argument list.
func (rt *Runtime) callEnv(parent, params, args Ref) Ref {
	n := 1
	if rt.Type(params) == LPair {
		n = rt.Len(params)
	}
	prev := rt.DisableCollection()
	env := rt.newEnv(parent, n)
	rt.Push(env)
	rt.RestoreCollection(prev)

	if rt.Type(params) == LSymbol {
		rt.DictInsert(env, params, args)
	} else {
		rest := args
		for _, p := range rt.Slice(params) {
			if rt.Type(p) != LSymbol {
				Fatalf("parameter is not a symbol: %v", rt.Type(p))
			}
			rt.DictInsert(env, p, rt.Head(rest))
			rest = rt.Tail(rest)
		}
	}
	rt.DictInsert(env, rt.symArgs, args)
	return env
}
