package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPrime(t *testing.T) {
	for _, test := range []struct{ lower, prime int }{
		{0, 3},
		{3, 3},
		{4, 5},
		{9, 11},
		{18, 19},
		{24, 29},
		{31, 31},
		{1000, 1009},
		{1021, 1021},
	} {
		assert.Equal(t, test.prime, nextPrime(test.lower), "lower=%d", test.lower)
	}
}

func TestDJB2(t *testing.T) {
	assert.EqualValues(t, 5381, djb2(nil))
	assert.EqualValues(t, 177604, djb2([]byte("a")))
	assert.EqualValues(t, 5860902, djb2([]byte("ab")))
	assert.EqualValues(t, uint64(210631454183), djb2([]byte("hello")))
}

func TestDict(t *testing.T) {
	rt := newTestRuntime(t)
	prev := rt.DisableCollection()
	defer rt.RestoreCollection(prev)

	d := rt.NewDict(4)
	assert.Equal(t, 5, rt.DictCapacity(d))
	assert.Equal(t, 0, rt.DictLen(d))

	// 1 and 6 share a bucket
	rt.DictInsert(d, rt.Int(1), rt.String("one"))
	rt.DictInsert(d, rt.Int(6), rt.String("six"))
	rt.DictInsert(d, rt.String("k"), rt.Symbol("v"))
	assert.Equal(t, 3, rt.DictLen(d))

	s, _ := rt.GetString(rt.DictGet(d, rt.Int(6)))
	assert.Equal(t, "six", s)
	s, _ = rt.GetString(rt.DictGet(d, rt.Int(1)))
	assert.Equal(t, "one", s)
	sym, _ := rt.GetSymbol(rt.DictGet(d, rt.String("k")))
	assert.Equal(t, "v", sym)

	_, ok := rt.DictGetOrNull(d, rt.Int(11))
	assert.False(t, ok)
	assert.True(t, rt.IsNil(rt.DictGet(d, rt.Symbol("k"))), "symbol and string keys are distinct")

	rt.DictInsert(d, rt.Int(6), rt.String("SIX"))
	assert.Equal(t, 3, rt.DictLen(d))
	s, _ = rt.GetString(rt.DictGet(d, rt.Int(6)))
	assert.Equal(t, "SIX", s)

	var keys []int64
	rt.DictEach(d, func(k, _ Ref) {
		if x, ok := rt.GetInt(k); ok {
			keys = append(keys, x)
		}
	})
	assert.Equal(t, []int64{1, 6}, keys)
}

func TestDict_full(t *testing.T) {
	rt := newTestRuntime(t)
	d := rt.NewDict(5)
	rt.Push(d)
	for i := 0; i < 4; i++ {
		rt.DictInsert(d, rt.Int(int64(i)), rt.Nil())
	}
	_, err := rt.Run(func() Ref {
		rt.DictInsert(d, rt.Int(4), rt.Nil())
		return rt.Nil()
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dict full")

	// overwriting never fails
	_, err = rt.Run(func() Ref {
		rt.DictInsert(d, rt.Int(3), rt.Int(3))
		return rt.Nil()
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, rt.DictLen(d))
}

func TestDict_unhashable(t *testing.T) {
	rt := newTestRuntime(t)
	_, err := rt.Run(func() Ref {
		d := rt.NewDict(5)
		rt.Push(d)
		rt.DictInsert(d, rt.Nil(), rt.Nil())
		return d
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unhashable type: pair")
}
