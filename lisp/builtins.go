package lisp

import (
	"bytes"
	"strings"
)

type langBuiltin struct {
	name string
	fn   LBuiltin
}

var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"%", builtinMod},
	{"<", builtinLT},
	{">", builtinGT},
	{"eq", builtinEq},
	{"not", builtinNot},
	{"list", builtinList},
	{"cons", builtinCons},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"nil?", builtinIsNil},
	{"len", builtinLen},
	{"last", builtinLast},
	{"dict", builtinDict},
	{"set", builtinSet},
	{"get", builtinGet},
	{"has", builtinHas},
	{"keys", builtinKeys},
	{"eval", builtinEval},
	{"read", builtinRead},
	{"print", builtinPrint},
	{"gc", builtinGC},
	{"native-call", builtinNativeCall},
	{"make-exec", builtinMakeExec},
}

// MaxNativeArgs is the number of integer arguments native-call can pass.
const MaxNativeArgs = 6

func (rt *Runtime) intArgs(name string, args []Ref) []int64 {
	xs := make([]int64, len(args))
	for i, v := range args {
		x, ok := rt.GetInt(v)
		if !ok {
			Fatalf("%s: argument %d is not an int: %v", name, i, rt.Type(v))
		}
		xs[i] = x
	}
	return xs
}

func builtinAdd(rt *Runtime, args Ref) Ref {
	var sum int64
	for _, x := range rt.intArgs("+", rt.Slice(args)) {
		sum += x
	}
	return rt.Int(sum)
}

func builtinSub(rt *Runtime, args Ref) Ref {
	xs := rt.intArgs("-", rt.Slice(args))
	switch len(xs) {
	case 0:
		return rt.Int(0)
	case 1:
		return rt.Int(-xs[0])
	}
	diff := xs[0]
	for _, x := range xs[1:] {
		diff -= x
	}
	return rt.Int(diff)
}

func builtinMul(rt *Runtime, args Ref) Ref {
	prod := int64(1)
	for _, x := range rt.intArgs("*", rt.Slice(args)) {
		prod *= x
	}
	return rt.Int(prod)
}

func builtinDiv(rt *Runtime, args Ref) Ref {
	xs := rt.intArgs("/", rt.argSlice("/", args, 2, -1))
	q := xs[0]
	for _, x := range xs[1:] {
		if x == 0 {
			Fatalf("/: division by zero")
		}
		q /= x
	}
	return rt.Int(q)
}

func builtinMod(rt *Runtime, args Ref) Ref {
	xs := rt.intArgs("%", rt.argSlice("%", args, 2, 2))
	if xs[1] == 0 {
		Fatalf("%%: division by zero")
	}
	return rt.Int(xs[0] % xs[1])
}

func builtinLT(rt *Runtime, args Ref) Ref {
	xs := rt.intArgs("<", rt.argSlice("<", args, 2, 2))
	return rt.Bool(xs[0] < xs[1])
}

func builtinGT(rt *Runtime, args Ref) Ref {
	xs := rt.intArgs(">", rt.argSlice(">", args, 2, 2))
	return rt.Bool(xs[0] > xs[1])
}

func builtinEq(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("eq", args, 2, 2)
	return rt.Bool(rt.Equal(a[0], a[1]))
}

func builtinNot(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("not", args, 1, 1)
	return rt.Bool(!rt.IsTrue(a[0]))
}

func builtinList(rt *Runtime, args Ref) Ref {
	return args
}

func builtinCons(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("cons", args, 2, 2)
	return rt.Cons(a[0], a[1])
}

func builtinHead(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("head", args, 1, 1)
	rt.mustArgType("head", a[0], LPair)
	return rt.Head(a[0])
}

func builtinTail(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("tail", args, 1, 1)
	rt.mustArgType("tail", a[0], LPair)
	return rt.Tail(a[0])
}

func builtinIsNil(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("nil?", args, 1, 1)
	return rt.Bool(rt.IsNil(a[0]))
}

func builtinLen(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("len", args, 1, 1)
	o := rt.obj(a[0])
	switch o.typ {
	case LPair:
		return rt.Int(int64(rt.Len(a[0])))
	case LString:
		return rt.Int(int64(len(o.bytes)))
	case LDict:
		return rt.Int(int64(o.dict.filled))
	default:
		Fatalf("len: argument has no length: %v", o.typ)
		return 0
	}
}

func builtinLast(rt *Runtime, args Ref) Ref {
	result := rt.lnil
	for o := rt.obj(args); o.a != 0; o = rt.obj(o.b) {
		result = o.a
	}
	return result
}

// (dict key1 value1 key2 value2 ...)
func builtinDict(rt *Runtime, args Ref) Ref {
	a := rt.Slice(args)
	if len(a)%2 != 0 {
		Fatalf("dict: odd number of arguments: %d", len(a))
	}
	d := rt.NewDict(max(rt.dictCap, len(a)/2+2))
	for i := 0; i < len(a); i += 2 {
		rt.DictInsert(d, a[i], a[i+1])
	}
	return d
}

// (set dict key value) stores value in dict and returns dict.
func builtinSet(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("set", args, 3, 3)
	rt.mustArgType("set", a[0], LDict)
	rt.DictInsert(a[0], a[1], a[2])
	return a[0]
}

func builtinGet(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("get", args, 2, 2)
	rt.mustArgType("get", a[0], LDict)
	return rt.DictGet(a[0], a[1])
}

func builtinHas(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("has", args, 2, 2)
	rt.mustArgType("has", a[0], LDict)
	_, ok := rt.DictGetOrNull(a[0], a[1])
	return rt.Bool(ok)
}

func builtinKeys(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("keys", args, 1, 1)
	rt.mustArgType("keys", a[0], LDict)
	b := rt.NewListBuilder()
	rt.DictEach(a[0], func(k, _ Ref) {
		b.Append(k)
	})
	return b.List()
}

// (eval form [env])
func builtinEval(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("eval", args, 1, 2)
	env := rt.global
	if len(a) == 2 {
		rt.mustArgType("eval", a[1], LDict)
		env = a[1]
	}
	return rt.eval(env, a[0])
}

func builtinRead(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("read", args, 1, 1)
	src, ok := rt.GetString(a[0])
	if !ok {
		Fatalf("read: argument is not a string: %v", rt.Type(a[0]))
	}
	return rt.read("read", []byte(src))
}

// (print value...) writes the values separated by spaces and returns the
// last one.
func builtinPrint(rt *Runtime, args Ref) Ref {
	a := rt.Slice(args)
	var buf bytes.Buffer
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(' ')
		}
		rt.format(&buf, v)
	}
	buf.WriteByte('\n')
	if _, err := rt.stdout.Write(buf.Bytes()); err != nil {
		Fatalf("print: %v", err)
	}
	if len(a) == 0 {
		return rt.lnil
	}
	return a[len(a)-1]
}

func builtinGC(rt *Runtime, args Ref) Ref {
	rt.argSlice("gc", args, 0, 0)
	return rt.Int(int64(rt.Collect()))
}

// (native-call symbol arg...)
func builtinNativeCall(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("native-call", args, 1, 1+MaxNativeArgs)
	if rt.foreign == nil {
		Fatalf("native-call: foreign calls are not enabled")
	}
	name, ok := rt.GetSymbol(a[0])
	if !ok {
		name, ok = rt.GetString(a[0])
	}
	if !ok || strings.TrimSpace(name) == "" {
		Fatalf("native-call: invalid symbol: %s", rt.Sprint(a[0]))
	}
	x, err := rt.foreign.Call(name, rt.intArgs("native-call", a[1:]))
	if err != nil {
		Fatalf("native-call: %s: %v", name, err)
	}
	return rt.Int(x)
}

// (make-exec code) copies the bytes of string code into executable memory and
// returns the address.
func builtinMakeExec(rt *Runtime, args Ref) Ref {
	a := rt.argSlice("make-exec", args, 1, 1)
	if rt.foreign == nil {
		Fatalf("make-exec: foreign calls are not enabled")
	}
	code, ok := rt.GetString(a[0])
	if !ok {
		Fatalf("make-exec: argument is not a string: %v", rt.Type(a[0]))
	}
	addr, err := rt.foreign.MakeExecutable([]byte(code))
	if err != nil {
		Fatalf("make-exec: %v", err)
	}
	return rt.Int(int64(addr))
}

func (rt *Runtime) mustArgType(name string, v Ref, t LType) {
	if typ := rt.Type(v); typ != t {
		Fatalf("%s: expected %v but got %v", name, t, typ)
	}
}

// Equal compares a and b structurally.  Dicts and callables are equal only
// to themselves.
func (rt *Runtime) Equal(a, b Ref) bool {
	for {
		if a == b {
			return true
		}
		x, y := rt.obj(a), rt.obj(b)
		if x.typ != y.typ {
			return false
		}
		if x.typ != LPair {
			return rt.keyEqual(a, b)
		}
		if x.a == 0 || y.a == 0 {
			return x.a == y.a
		}
		if !rt.Equal(x.a, y.a) {
			return false
		}
		a, b = x.b, y.b
	}
}
