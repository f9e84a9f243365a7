package list

import (
	"fmt"

	"github.com/benz9527/xcontainer/lib/infra"
)

const defaultArenaSlabSize = 64

var _ Allocator[struct{}] = (*ArenaAllocator[struct{}])(nil)

// ArenaAllocator carves nodes out of slabs that never move once
// allocated, so node addresses stay stable for the lifetime of the arena.
// Released nodes are chained into a free list through their next link
// and handed out again before a new slab is touched.
// It is not safe for concurrent use.
type ArenaAllocator[T any] struct {
	slabs    [][]Node[T]
	recycled *Node[T]
	used     int // offset into the last slab
	reserved int // nodes carved out of all slabs
	live     int
	slabSize int
	capacity int
	traits   AllocatorTraits
	stats    *allocatorStats
}

func NewArenaAllocator[T any](opts ...AllocatorOption) *ArenaAllocator[T] {
	o := applyAllocatorOptions(opts...)
	traits := o.traitsOr(AllocatorTraits{})
	traits.AlwaysEqual = false
	slabSize := o.slabSize
	if slabSize <= 0 {
		slabSize = defaultArenaSlabSize
	}
	if o.capacity > 0 && slabSize > o.capacity {
		slabSize = o.capacity
	}
	return &ArenaAllocator[T]{
		slabs:    make([][]Node[T], 0, 8),
		slabSize: slabSize,
		capacity: o.capacity,
		traits:   traits,
		stats:    o.stats(),
	}
}

// Live is the number of nodes currently handed out.
func (a *ArenaAllocator[T]) Live() int {
	return a.live
}

// Reserved is the number of nodes carved out of the slabs so far.
func (a *ArenaAllocator[T]) Reserved() int {
	return a.reserved
}

func (a *ArenaAllocator[T]) SlabCount() int {
	return len(a.slabs)
}

func (a *ArenaAllocator[T]) Allocate() (*Node[T], error) {
	if n := a.recycled; n != nil {
		a.recycled = n.next
		n.next = nil
		a.live++
		a.stats.recordAllocate()
		return n, nil
	}

	if a.capacity > 0 && a.reserved >= a.capacity {
		a.stats.recordFailure()
		return nil, infra.WrapErrorStackWithMessage(ErrAllocatorExhausted,
			fmt.Sprintf("arena capacity %d", a.capacity))
	}

	if len(a.slabs) == 0 || a.used >= len(a.slabs[len(a.slabs)-1]) {
		size := a.slabSize
		if a.capacity > 0 {
			size = min(size, a.capacity-a.reserved)
		}
		a.slabs = append(a.slabs, make([]Node[T], size))
		a.used = 0
	}
	n := &a.slabs[len(a.slabs)-1][a.used]
	a.used++
	a.reserved++
	a.live++
	a.stats.recordAllocate()
	return n, nil
}

func (a *ArenaAllocator[T]) Deallocate(n *Node[T]) {
	destroySlot(n)
	n.prev = nil
	n.next = a.recycled
	a.recycled = n
	a.live--
	a.stats.recordDeallocate()
}

func (a *ArenaAllocator[T]) Construct(n *Node[T], ctor Constructor[T]) error {
	return constructSlot(n, ctor)
}

func (a *ArenaAllocator[T]) Destroy(n *Node[T]) {
	destroySlot(n)
}

func (a *ArenaAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*ArenaAllocator[T])
	return ok && o == a
}

func (a *ArenaAllocator[T]) Traits() AllocatorTraits {
	return a.traits
}

// Reset drops every slab. It refuses while nodes are still handed out.
func (a *ArenaAllocator[T]) Reset() error {
	if a.live > 0 {
		return infra.WrapErrorStackWithMessage(ErrAllocatorBusy,
			fmt.Sprintf("%d live nodes", a.live))
	}
	a.slabs = a.slabs[:0]
	a.recycled = nil
	a.used = 0
	a.reserved = 0
	return nil
}
