package list

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/metric"
)

var (
	ErrAllocatorExhausted = errors.New("[allocator] exhausted")
	ErrAllocatorBusy      = errors.New("[allocator] nodes still in use")
)

// AllocatorTraits are the type level policies a list consults to decide
// between O(1) ownership transfer and element-wise transfer.
type AllocatorTraits struct {
	// PropagateOnCopyAssignment replaces the destination allocator on copy assignment.
	PropagateOnCopyAssignment bool
	// PropagateOnMoveAssignment replaces the destination allocator on move assignment.
	PropagateOnMoveAssignment bool
	// PropagateOnSwap exchanges the allocators on swap.
	PropagateOnSwap bool
	// AlwaysEqual means any two instances of the same kind may free each
	// other's nodes.
	AlwaysEqual bool
}

// Constructor builds an element in place. A nil Constructor leaves the
// zero value.
type Constructor[T any] func(slot *T) error

// Value returns a Constructor that copies v into the slot.
func Value[T any](v T) Constructor[T] {
	return func(slot *T) error {
		*slot = v
		return nil
	}
}

// Allocator supplies node storage and element lifecycle for a list.
// Nodes returned by Allocate are raw, the list resets their links.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Deallocate(n *Node[T])
	// Construct builds the element of n. On error the slot content is
	// unspecified and the node must be deallocated without Destroy.
	Construct(n *Node[T], ctor Constructor[T]) error
	Destroy(n *Node[T])
	// Equal reports whether nodes allocated by one instance may be
	// released by the other.
	Equal(other Allocator[T]) bool
	Traits() AllocatorTraits
}

func constructSlot[T any](n *Node[T], ctor Constructor[T]) error {
	var zero T
	n.value = zero
	if ctor == nil {
		return nil
	}
	return ctor(&n.value)
}

// destroySlot drops the references held by the element.
func destroySlot[T any](n *Node[T]) {
	var zero T
	n.value = zero
}

// interchangeable asks the allocator itself, an AlwaysEqual kind answers
// true for any instance of the same kind.
func interchangeable[T any](a, b Allocator[T]) bool {
	return a.Equal(b)
}

type allocatorOptions struct {
	traits        *AllocatorTraits
	statsName     string
	meterProvider metric.MeterProvider
	enableStats   bool
	slabSize      int
	capacity      int
}

func (opts *allocatorOptions) stats() *allocatorStats {
	if !opts.enableStats {
		return nil
	}
	return newAllocatorStats(opts.statsName, opts.meterProvider)
}

func (opts *allocatorOptions) traitsOr(def AllocatorTraits) AllocatorTraits {
	if opts.traits == nil {
		return def
	}
	return *opts.traits
}

type AllocatorOption func(opts *allocatorOptions)

func applyAllocatorOptions(opts ...AllocatorOption) *allocatorOptions {
	o := &allocatorOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAllocatorPropagation overrides the propagation policies.
// AlwaysEqual stays a property of the allocator kind.
func WithAllocatorPropagation(onCopy, onMove, onSwap bool) AllocatorOption {
	return func(opts *allocatorOptions) {
		opts.traits = &AllocatorTraits{
			PropagateOnCopyAssignment: onCopy,
			PropagateOnMoveAssignment: onMove,
			PropagateOnSwap:           onSwap,
		}
	}
}

// WithAllocatorStats records node counts on the meter provider.
// A nil provider falls back to the global one.
func WithAllocatorStats(name string, mp metric.MeterProvider) AllocatorOption {
	return func(opts *allocatorOptions) {
		if len(strings.TrimSpace(name)) <= 0 {
			panic("allocator stats name must not be empty or blank")
		}
		opts.enableStats = true
		opts.statsName = name
		opts.meterProvider = mp
	}
}

// WithArenaSlabSize sets how many nodes one arena slab holds.
func WithArenaSlabSize(size int) AllocatorOption {
	return func(opts *allocatorOptions) {
		if size < 1 {
			panic(fmt.Sprintf("arena slab size must be greater than 0, got %d", size))
		}
		opts.slabSize = size
	}
}

// WithArenaCapacity bounds the number of nodes an arena hands out.
// Zero means unbounded.
func WithArenaCapacity(capacity int) AllocatorOption {
	return func(opts *allocatorOptions) {
		if capacity < 0 {
			panic(fmt.Sprintf("arena capacity must not be negative, got %d", capacity))
		}
		opts.capacity = capacity
	}
}

var _ Allocator[struct{}] = (*HeapAllocator[struct{}])(nil)

// HeapAllocator takes nodes from the Go heap. Every instance is
// interchangeable with every other one.
type HeapAllocator[T any] struct {
	traits AllocatorTraits
	stats  *allocatorStats
}

func NewHeapAllocator[T any](opts ...AllocatorOption) *HeapAllocator[T] {
	o := applyAllocatorOptions(opts...)
	traits := o.traitsOr(AllocatorTraits{PropagateOnMoveAssignment: true})
	traits.AlwaysEqual = true
	return &HeapAllocator[T]{
		traits: traits,
		stats:  o.stats(),
	}
}

func (a *HeapAllocator[T]) Allocate() (*Node[T], error) {
	a.stats.recordAllocate()
	return new(Node[T]), nil
}

func (a *HeapAllocator[T]) Deallocate(n *Node[T]) {
	n.prev, n.next = nil, nil
	destroySlot(n)
	a.stats.recordDeallocate()
}

func (a *HeapAllocator[T]) Construct(n *Node[T], ctor Constructor[T]) error {
	return constructSlot(n, ctor)
}

func (a *HeapAllocator[T]) Destroy(n *Node[T]) {
	destroySlot(n)
}

func (a *HeapAllocator[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(*HeapAllocator[T])
	return ok
}

func (a *HeapAllocator[T]) Traits() AllocatorTraits {
	return a.traits
}
