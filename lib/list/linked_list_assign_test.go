package list

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xcontainer/lib/xlog"
)

func TestLinkedList_Merge(t *testing.T) {
	a, err := NewLinkedListFromValues([]int{1, 3, 5, 7, 9, 12})
	require.NoError(t, err)
	b, err := NewLinkedListFromValues([]int{0, 2, 4, 6, 8, 10, 11, 13})
	require.NoError(t, err)

	require.True(t, MergeOrdered(a, b))
	checkItems(t, a, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13})
	checkItems(t, b, []int{})

	// Merging an empty list changes nothing.
	require.True(t, MergeOrdered(a, b))
	require.Equal(t, int64(14), a.Len())

	// Merging into an empty list takes everything.
	require.True(t, MergeOrdered(b, a))
	checkItems(t, a, []int{})
	require.Equal(t, int64(14), b.Len())
	require.NoError(t, b.Validate())
}

func TestLinkedList_MergeStable(t *testing.T) {
	type item struct {
		key  int
		from string
	}
	less := func(x, y item) bool {
		return x.key < y.key
	}
	a, err := NewLinkedListFromValues([]item{{1, "a"}, {2, "a"}, {2, "a2"}, {4, "a"}})
	require.NoError(t, err)
	b, err := NewLinkedListFromValues([]item{{2, "b"}, {3, "b"}, {4, "b"}, {5, "b"}})
	require.NoError(t, err)

	require.True(t, a.Merge(b, less))
	checkItems(t, a, []item{
		{1, "a"}, {2, "a"}, {2, "a2"}, {2, "b"}, {3, "b"}, {4, "a"}, {4, "b"}, {5, "b"},
	})
	require.True(t, b.Empty())
}

func TestLinkedList_MergeRefused(t *testing.T) {
	a, err := NewLinkedListFromValues([]int{1, 2})
	require.NoError(t, err)
	require.False(t, MergeOrdered(a, a))
	checkItems(t, a, []int{1, 2})

	arena := NewArenaAllocator[int]()
	b, err := NewLinkedListFromValues([]int{0, 3}, WithLinkedListAllocator[int](arena))
	require.NoError(t, err)
	require.False(t, MergeOrdered(a, b))
	checkItems(t, a, []int{1, 2})
	checkItems(t, b, []int{0, 3})

	require.Panics(t, func() {
		a.Merge(NewLinkedList[int](), nil)
	})
}

func TestLinkedList_Swap(t *testing.T) {
	a, err := NewLinkedListFromValues([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := NewLinkedListFromValues([]int{9})
	require.NoError(t, err)
	aBegin := a.Begin()

	require.True(t, a.Swap(b))
	checkItems(t, a, []int{9})
	checkItems(t, b, []int{1, 2, 3})
	// Iterators follow their elements.
	require.True(t, aBegin.Equal(b.Begin()))

	empty := NewLinkedList[int]()
	require.True(t, b.Swap(empty))
	checkItems(t, b, []int{})
	checkItems(t, empty, []int{1, 2, 3})

	require.True(t, empty.Swap(empty))
	checkItems(t, empty, []int{1, 2, 3})

	arena := NewArenaAllocator[int]()
	c, err := NewLinkedListFromValues([]int{7}, WithLinkedListAllocator[int](arena))
	require.NoError(t, err)
	require.False(t, c.Swap(empty))
	checkItems(t, c, []int{7})
}

func TestLinkedList_SwapPropagation(t *testing.T) {
	shared := NewPoolAllocator[int](WithAllocatorPropagation(false, false, true))
	other := shared.Share()
	a, err := NewLinkedListFromValues([]int{1}, WithLinkedListAllocator[int](shared))
	require.NoError(t, err)
	b, err := NewLinkedListFromValues([]int{2}, WithLinkedListAllocator[int](other))
	require.NoError(t, err)

	require.True(t, a.Swap(b))
	require.Same(t, other, a.Allocator())
	require.Same(t, shared, b.Allocator())

	c, err := NewLinkedListFromValues([]int{3}, WithLinkedListAllocator[int](NewPoolAllocator[int]()))
	require.NoError(t, err)
	require.False(t, a.Swap(c))
}

func TestLinkedList_CopyAssign(t *testing.T) {
	testcases := []struct {
		name string
		dst  []int
		src  []int
	}{
		{name: "longer source", dst: []int{1, 2}, src: []int{5, 6, 7, 8}},
		{name: "shorter source", dst: []int{1, 2, 3, 4}, src: []int{9}},
		{name: "same length", dst: []int{1, 2, 3}, src: []int{4, 5, 6}},
		{name: "empty source", dst: []int{1, 2, 3}, src: []int{}},
		{name: "empty destination", dst: []int{}, src: []int{1, 2}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			dst, err := NewLinkedListFromValues(tc.dst)
			require.NoError(tt, err)
			src, err := NewLinkedListFromValues(tc.src)
			require.NoError(tt, err)
			begin := dst.Begin()

			require.NoError(tt, dst.CopyAssign(src))
			checkItems(tt, dst, tc.src)
			checkItems(tt, src, tc.src)
			if len(tc.dst) > 0 && len(tc.src) > 0 {
				// The first node is reused, not reallocated.
				require.True(tt, begin.Equal(dst.Begin()))
			}
		})
	}

	self, err := NewLinkedListFromValues([]int{1, 2})
	require.NoError(t, err)
	require.NoError(t, self.CopyAssign(self))
	checkItems(t, self, []int{1, 2})
}

func TestLinkedList_CopyAssignPropagation(t *testing.T) {
	arenaA := NewArenaAllocator[int](WithAllocatorPropagation(true, false, false))
	arenaB := NewArenaAllocator[int]()
	dst, err := NewLinkedListFromValues([]int{1, 2, 3}, WithLinkedListAllocator[int](arenaA))
	require.NoError(t, err)
	src, err := NewLinkedListFromValues([]int{4, 5}, WithLinkedListAllocator[int](arenaB))
	require.NoError(t, err)

	require.NoError(t, dst.CopyAssign(src))
	checkItems(t, dst, []int{4, 5})
	require.Same(t, arenaB, dst.Allocator())
	require.Equal(t, 0, arenaA.Live())
	require.Equal(t, 4, arenaB.Live())
}

func TestLinkedList_CopyConstruct(t *testing.T) {
	arena := NewArenaAllocator[int]()
	src, err := NewLinkedListFromValues([]int{1, 2, 3}, WithLinkedListAllocator[int](arena))
	require.NoError(t, err)

	cp, err := NewLinkedListFromCopy(src)
	require.NoError(t, err)
	checkItems(t, cp, []int{1, 2, 3})
	checkItems(t, src, []int{1, 2, 3})
	require.Same(t, arena, cp.Allocator())
	require.Equal(t, 6, arena.Live())

	cp.Begin().Set(10)
	require.Equal(t, 1, src.Front())

	heap, err := NewLinkedListFromCopy(src, WithLinkedListAllocator[int](NewHeapAllocator[int]()))
	require.NoError(t, err)
	checkItems(t, heap, []int{1, 2, 3})
	require.Equal(t, 6, arena.Live())
}

func TestLinkedList_MoveConstruct(t *testing.T) {
	src, err := NewLinkedListFromValues([]int{1, 2, 3})
	require.NoError(t, err)
	begin := src.Begin()

	moved, err := NewLinkedListFromMove(src)
	require.NoError(t, err)
	checkItems(t, moved, []int{1, 2, 3})
	checkItems(t, src, []int{})
	require.True(t, begin.Equal(moved.Begin()))

	// Moving an empty list yields an empty list.
	again, err := NewLinkedListFromMove(src)
	require.NoError(t, err)
	checkItems(t, again, []int{})
	checkItems(t, src, []int{})

	// A foreign allocator forces an element-wise transfer.
	arena := NewArenaAllocator[int]()
	copied, err := NewLinkedListFromMove(moved, WithLinkedListAllocator[int](arena))
	require.NoError(t, err)
	checkItems(t, copied, []int{1, 2, 3})
	checkItems(t, moved, []int{})
	require.False(t, begin.Equal(copied.Begin()))
	require.Equal(t, 3, arena.Live())
}

func TestLinkedList_MoveAssign(t *testing.T) {
	dst, err := NewLinkedListFromValues([]int{7, 8})
	require.NoError(t, err)
	src, err := NewLinkedListFromValues([]int{1, 2, 3})
	require.NoError(t, err)
	begin := src.Begin()

	require.NoError(t, dst.MoveAssign(src))
	checkItems(t, dst, []int{1, 2, 3})
	checkItems(t, src, []int{})
	require.True(t, begin.Equal(dst.Begin()))

	require.NoError(t, dst.MoveAssign(dst))
	checkItems(t, dst, []int{1, 2, 3})
}

func TestLinkedList_MoveAssignElementWise(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)
	arenaA, arenaB := NewArenaAllocator[int](), NewArenaAllocator[int]()
	dst, err := NewLinkedListFromValues([]int{7, 8, 9, 10},
		WithLinkedListAllocator[int](arenaA),
		WithLinkedListLogger[int](logger),
	)
	require.NoError(t, err)
	src, err := NewLinkedListFromValues([]int{1, 2}, WithLinkedListAllocator[int](arenaB))
	require.NoError(t, err)

	require.NoError(t, dst.MoveAssign(src))
	checkItems(t, dst, []int{1, 2})
	checkItems(t, src, []int{})
	require.Same(t, arenaA, dst.Allocator())
	require.Equal(t, 2, arenaA.Live())
	require.Equal(t, 0, arenaB.Live())
	require.NoError(t, logger.Sync())
	require.Contains(t, buf.String(), "move assign degraded to element-wise")
}

func TestLinkedList_MoveAssignPropagation(t *testing.T) {
	arenaA := NewArenaAllocator[int](WithAllocatorPropagation(false, true, false))
	arenaB := NewArenaAllocator[int]()
	dst, err := NewLinkedListFromValues([]int{7}, WithLinkedListAllocator[int](arenaA))
	require.NoError(t, err)
	src, err := NewLinkedListFromValues([]int{1, 2}, WithLinkedListAllocator[int](arenaB))
	require.NoError(t, err)
	begin := src.Begin()

	require.NoError(t, dst.MoveAssign(src))
	checkItems(t, dst, []int{1, 2})
	require.Same(t, arenaB, dst.Allocator())
	require.True(t, begin.Equal(dst.Begin()))
	require.Equal(t, 0, arenaA.Live())
	require.Equal(t, 2, arenaB.Live())
}
