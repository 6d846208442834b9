package collections_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// sliceSource is an Iterable whose elements are not comparable.
type sliceSource [][]int

func (s sliceSource) Iterator() iterators.Iterator[[]int] { return iterators.FromSlice(s) }

// failingSink accepts limit elements and rejects the rest.
type failingSink struct {
	got   []string
	limit int
}

var errSinkFull = errors.New("sink full")

func (s *failingSink) Add(item string) (bool, error) {
	if len(s.got) >= s.limit {
		return false, errSinkFull
	}
	s.got = append(s.got, item)
	return true, nil
}

func isLong(s string) bool { return len(s) > 3 }

func TestFind(t *testing.T) {
	words := collections.New("go", "rust", "zig", "python")

	v, ok := collections.Find(words, isLong)
	assert.True(t, ok)
	assert.Equal(t, "rust", v)

	_, ok = collections.Find(words, func(s string) bool { return s == "c" })
	assert.False(t, ok, "no match")

	_, ok = collections.Find[string](nil, isLong)
	assert.False(t, ok, "nil collection")

	_, ok = collections.Find(words, nil)
	assert.False(t, ok, "nil predicate")

	assert.True(t, collections.Exists(words, isLong))
	assert.Equal(t, 2, collections.CountMatches(words, isLong))
	assert.Equal(t, 0, collections.CountMatches(words, nil))
}

func TestFind_NonComparableElements(t *testing.T) {
	src := sliceSource{{1}, {2, 3}, {4, 5, 6}}
	v, ok := collections.Find[[]int](src, func(s []int) bool { return len(s) == 2 })
	require.True(t, ok)
	assert.Equal(t, []int{2, 3}, v)
}

func TestForAllDo(t *testing.T) {
	var seen []int
	collections.ForAllDo(collections.New(3, 1, 2), func(n int) { seen = append(seen, n) })
	assert.Equal(t, []int{3, 1, 2}, seen)

	collections.ForAllDo[int](nil, func(int) { t.Fatal("nil collection must not be visited") })
	collections.ForAllDo(collections.New(1), nil)
}

func TestSelect(t *testing.T) {
	words := collections.New("go", "rust", "zig", "python")
	assert.Equal(t, []string{"rust", "python"}, collections.Select(words, isLong))
	assert.Equal(t, []string{"go", "zig"}, collections.SelectRejected(words, isLong))
	assert.Empty(t, collections.Select[string](nil, isLong))
	assert.Empty(t, collections.Select(words, nil))
	assert.Equal(t, words.All(), collections.SelectRejected(words, nil))
}

func TestSelectInto(t *testing.T) {
	words := collections.New("go", "rust", "zig", "python")
	out := collections.New("existing")

	require.NoError(t, collections.SelectInto(words, isLong, out))
	assert.Equal(t, []string{"existing", "rust", "python"}, out.All())

	err := collections.SelectInto[string](words, isLong, nil)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	require.NoError(t, collections.SelectInto(nil, isLong, out))
	assert.Equal(t, 3, out.Size())
}

func TestSelectInto_StopsAtFirstSinkError(t *testing.T) {
	sink := &failingSink{limit: 1}
	err := collections.SelectInto(collections.New("aaaa", "bbbb", "cccc"), isLong, sink)
	assert.ErrorIs(t, err, errSinkFull)
	assert.Equal(t, []string{"aaaa"}, sink.got)
}

func TestCollect(t *testing.T) {
	nums := collections.New(1, 2, 3)
	assert.Equal(t, []string{"1", "2", "3"}, collections.Collect(nums, strconv.Itoa))
	assert.Empty(t, collections.Collect[int, string](nil, strconv.Itoa))

	it := iterators.FromSlice([]string{"a", "b"})
	assert.Equal(t, []string{"A", "B"}, collections.CollectIterator(it, strings.ToUpper))
	assert.False(t, it.HasNext(), "iterator is consumed")

	assert.Empty(t, collections.CollectIterator[int, int](nil, func(n int) int { return n }))
	assert.Empty(t, collections.CollectIterator[int, int](iterators.FromSlice([]int{1}), nil))
}

func TestCollectInto(t *testing.T) {
	out := collections.New(0)
	require.NoError(t, collections.CollectInto(collections.New("a", "bb"), func(s string) int { return len(s) }, out))
	assert.Equal(t, []int{0, 1, 2}, out.All())

	require.NoError(t, collections.CollectIteratorInto(iterators.FromSlice([]int{5}), func(n int) int { return n * 10 }, out))
	assert.Equal(t, []int{0, 1, 2, 50}, out.All())

	err := collections.CollectInto[string, int](nil, func(s string) int { return 0 }, nil)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	err = collections.CollectIteratorInto[int, int](nil, nil, nil)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestAddAllFrom(t *testing.T) {
	target := collections.New("start")

	require.NoError(t, collections.AddAllFromIterator(target, iterators.FromSlice([]string{"a", "b"})))
	require.NoError(t, collections.AddAllFromEnumeration(target, iterators.EnumerationOf("c")))
	require.NoError(t, collections.AddAllFromSlice(target, "d", "e"))
	require.NoError(t, collections.AddAllFromIterator[string](target, nil))
	require.NoError(t, collections.AddAllFromEnumeration[string](target, nil))

	assert.Equal(t, []string{"start", "a", "b", "c", "d", "e"}, target.All())

	err := collections.AddAllFromSlice[string](nil, "x")
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestAddAllFrom_PropagatesTargetError(t *testing.T) {
	sink := &failingSink{limit: 2}
	err := collections.AddAllFromSlice[string](sink, "a", "b", "c", "d")
	assert.ErrorIs(t, err, errSinkFull)
	assert.Equal(t, []string{"a", "b"}, sink.got)
}
