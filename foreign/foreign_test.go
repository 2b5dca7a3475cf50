package foreign_test

import (
	"os"
	"runtime"
	"strconv"
	"testing"
	"unsafe"

	"github.com/luthersystems/lc/foreign"
	"github.com/luthersystems/lc/lisp"
	"github.com/luthersystems/lc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipUnsupported(t *testing.T) {
	if _, err := foreign.New().Call("getpid", nil); err != nil {
		t.Skipf("foreign calls unsupported on %s", runtime.GOOS)
	}
}

func TestProcess_Call(t *testing.T) {
	skipUnsupported(t)
	p := foreign.New()
	pid, err := p.Call("getpid", nil)
	require.NoError(t, err)
	assert.EqualValues(t, os.Getpid(), pid)

	ppid, err := p.Call("getppid", nil)
	require.NoError(t, err)
	assert.EqualValues(t, os.Getppid(), ppid)

	pagesize, err := p.Call("getpagesize", nil)
	require.NoError(t, err)
	assert.EqualValues(t, os.Getpagesize(), pagesize)

	_, err = p.Call("getpid", []int64{1})
	assert.EqualError(t, err, "0 arguments expected (got 1)")
	_, err = p.Call("nosuchsymbol", nil)
	assert.EqualError(t, err, "unknown symbol: nosuchsymbol")
	assert.Contains(t, p.Names(), "getuid")
}

func TestProcess_Register(t *testing.T) {
	p := foreign.New()
	err := p.Register("add3", foreign.Func{Arity: 3, Fn: func(args []int64) (int64, error) {
		return args[0] + args[1] + args[2], nil
	}})
	require.NoError(t, err)
	x, err := p.Call("add3", []int64{1, 2, 3})
	require.NoError(t, err)
	assert.EqualValues(t, 6, x)

	assert.Error(t, p.Register("", foreign.Func{Fn: func([]int64) (int64, error) { return 0, nil }}))
	assert.Error(t, p.Register("big", foreign.Func{Arity: lisp.MaxNativeArgs + 1, Fn: func([]int64) (int64, error) { return 0, nil }}))
	assert.Error(t, p.Register("nil", foreign.Func{}))
}

func TestProcess_MakeExecutable(t *testing.T) {
	skipUnsupported(t)
	p := foreign.New()
	defer p.Close()
	code := []byte{0xc3, 0x90, 0x90}
	addr, err := p.MakeExecutable(code)
	require.NoError(t, err)
	require.NotZero(t, addr)
	mem := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(code))
	assert.Equal(t, code, mem)

	_, err = p.MakeExecutable(nil)
	assert.Error(t, err)
	assert.NoError(t, p.Close())
}

func TestNativeCall(t *testing.T) {
	skipUnsupported(t)
	rt, err := lisp.New(lisp.WithReader(parser.NewReader()), lisp.WithForeign(foreign.New()))
	require.NoError(t, err)
	v, err := rt.EvalSource("test", []byte(`(native-call 'getpid)`))
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), rt.Sprint(v))

	_, err = rt.EvalSource("test", []byte(`(native-call 'getpid 1)`))
	assert.EqualError(t, err, "native-call: getpid: 0 arguments expected (got 1)")
}
