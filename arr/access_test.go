package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-utils/arr"
	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

func TestIndex_Map(t *testing.T) {
	m := map[string]int{"zero": 0, "one": 1, "two": 2}

	assert.Equal(t, 1, arr.Index(m, "one"), "literal key")
	// positional keys address the sorted key set: one, two, zero
	assert.Equal(t, "one", arr.Index(m, 0))
	assert.Equal(t, "zero", arr.Index(m, 2))
	assert.Equal(t, m, arr.Index(m, 3), "past the end")
	assert.Equal(t, m, arr.Index(m, "missing"))
}

func TestIndex_MapLiteralKeyWinsOverPosition(t *testing.T) {
	m := map[int]string{0: "a", 5: "b"}
	assert.Equal(t, "b", arr.Index(m, 5))
	assert.Equal(t, "a", arr.Index(m, 0))

	// 1 is not a key, so it addresses the second sorted key
	assert.Equal(t, 5, arr.Index(m, 1))
}

func TestIndex_MapNilKey(t *testing.T) {
	m := map[any]string{nil: "none", "k": "v"}
	assert.Equal(t, "none", arr.Index(m, nil))
}

func TestIndex_Sequences(t *testing.T) {
	list := []string{"a", "b", "c"}
	array := [3]int{7, 8, 9}

	tests := []struct {
		name string
		obj  any
		key  any
		want any
	}{
		{name: "slice", obj: list, key: 2, want: "c"},
		{name: "slice uint key", obj: list, key: uint8(1), want: "b"},
		{name: "array", obj: array, key: 0, want: 7},
		{name: "array pointer", obj: &array, key: 1, want: 8},
		{name: "slice out of range", obj: list, key: 3, want: list},
		{name: "negative key", obj: list, key: -1, want: list},
		{name: "string key", obj: list, key: "1", want: list},
		{name: "scalar", obj: 42, key: 0, want: 42},
		{name: "nil", obj: nil, key: 0, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, arr.Index(tt.obj, tt.key))
		})
	}
}

func TestIndex_IteratorConsumesPrefix(t *testing.T) {
	it := iterators.FromSlice([]string{"a", "b", "c", "d"})
	assert.Equal(t, "b", arr.Index(it, 1))

	// the first two elements were consumed
	next, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "c", next)
}

func TestIndex_Enumeration(t *testing.T) {
	e := iterators.EnumerationOf(10, 20, 30)
	assert.Equal(t, 30, arr.Index(e, 2))

	exhausted := iterators.EnumerationOf(1)
	assert.Equal(t, exhausted, arr.Index(exhausted, 5))
}

func TestIndex_Iterable(t *testing.T) {
	list := collections.New("x", "y", "z")
	assert.Equal(t, "y", arr.Index(list, 1))
	assert.Same(t, list, arr.Index(list, 9))
}

func TestLookup(t *testing.T) {
	v, ok := arr.Lookup([]int{5, 6}, 1)
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	src := []int{5, 6}
	v, ok = arr.Lookup(src, -1)
	assert.False(t, ok)
	assert.Equal(t, src, v)
}

func TestIterator(t *testing.T) {
	tests := []struct {
		name string
		obj  any
		want []any
	}{
		{name: "slice", obj: []int{1, 2, 3}, want: []any{1, 2, 3}},
		{name: "array", obj: [2]string{"a", "b"}, want: []any{"a", "b"}},
		{name: "map values by sorted key", obj: map[string]int{"b": 2, "a": 1, "c": 3}, want: []any{1, 2, 3}},
		{name: "typed iterator", obj: iterators.FromSlice([]int{4, 5}), want: []any{4, 5}},
		{name: "enumeration", obj: iterators.EnumerationOf("p", "q"), want: []any{"p", "q"}},
		{name: "collection", obj: collections.New(1.5, 2.5), want: []any{1.5, 2.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := arr.Iterator(tt.obj)
			require.True(t, ok)
			assert.Equal(t, tt.want, iterators.Drain(it))

			_, err := it.Next()
			assert.ErrorIs(t, err, iterators.ErrNoSuchElement)
		})
	}
}

func TestIterator_PassesThroughUntypedIterator(t *testing.T) {
	src := iterators.FromSlice([]any{1, "two"})
	it, ok := arr.Iterator(src)
	require.True(t, ok)
	assert.Same(t, src, it)
}

func TestIterator_Unsupported(t *testing.T) {
	for _, obj := range []any{nil, 42, "text", struct{}{}, (*[2]int)(nil)} {
		it, ok := arr.Iterator(obj)
		assert.False(t, ok, "%#v", obj)
		assert.Nil(t, it)
	}
}

func TestIterator_RemoveDelegates(t *testing.T) {
	list := collections.New(1, 2, 3)
	it, ok := arr.Iterator(list)
	require.True(t, ok)

	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	assert.Equal(t, []int{2, 3}, list.All())

	sliceIt, _ := arr.Iterator([]int{1})
	assert.ErrorIs(t, sliceIt.Remove(), iterators.ErrUnsupportedOperation)

	enumIt, _ := arr.Iterator(iterators.EnumerationOf(1))
	assert.ErrorIs(t, enumIt.Remove(), iterators.ErrUnsupportedOperation)
}
