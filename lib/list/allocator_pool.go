package list

import (
	"sync"
)

var _ Allocator[struct{}] = (*PoolAllocator[struct{}])(nil)

// PoolAllocator recycles released nodes through a sync.Pool.
// Instances are interchangeable only when they share the pool.
type PoolAllocator[T any] struct {
	pool   *sync.Pool
	traits AllocatorTraits
	stats  *allocatorStats
}

func NewPoolAllocator[T any](opts ...AllocatorOption) *PoolAllocator[T] {
	o := applyAllocatorOptions(opts...)
	traits := o.traitsOr(AllocatorTraits{})
	traits.AlwaysEqual = false
	return &PoolAllocator[T]{
		pool: &sync.Pool{
			New: func() any {
				return new(Node[T])
			},
		},
		traits: traits,
		stats:  o.stats(),
	}
}

// Share returns an allocator bound to the same pool, equal to p.
func (p *PoolAllocator[T]) Share() *PoolAllocator[T] {
	return &PoolAllocator[T]{
		pool:   p.pool,
		traits: p.traits,
		stats:  p.stats,
	}
}

func (p *PoolAllocator[T]) Allocate() (*Node[T], error) {
	p.stats.recordAllocate()
	return p.pool.Get().(*Node[T]), nil
}

func (p *PoolAllocator[T]) Deallocate(n *Node[T]) {
	// Override only
	n.prev, n.next = nil, nil
	destroySlot(n)
	p.pool.Put(n)
	p.stats.recordDeallocate()
}

func (p *PoolAllocator[T]) Construct(n *Node[T], ctor Constructor[T]) error {
	return constructSlot(n, ctor)
}

func (p *PoolAllocator[T]) Destroy(n *Node[T]) {
	destroySlot(n)
}

func (p *PoolAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*PoolAllocator[T])
	return ok && o.pool == p.pool
}

func (p *PoolAllocator[T]) Traits() AllocatorTraits {
	return p.traits
}
