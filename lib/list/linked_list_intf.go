package list

// Note that the doubly linked list is not thread safe.
// Callers synchronize externally when sharing a list between goroutines.

// LinkedList is the doubly linked list interface.
//
// Positions are accepted as Position[T], so either iterator flavor may be
// passed. A position must belong to the list it is passed to; this is not
// checked.
type LinkedList[T any] interface {
	Len() int64
	Empty() bool
	// Allocator returns the allocator owning the nodes of the list.
	Allocator() Allocator[T]

	Begin() Iterator[T]
	End() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]
	RBegin() ReverseIterator[T, Iterator[T]]
	REnd() ReverseIterator[T, Iterator[T]]
	CRBegin() ReverseIterator[T, ConstIterator[T]]
	CREnd() ReverseIterator[T, ConstIterator[T]]

	// Front returns the first element, the zero value if the list is empty.
	Front() T
	// Back returns the last element, the zero value if the list is empty.
	Back() T
	// FrontRef must not be called on an empty list.
	FrontRef() *T
	// BackRef must not be called on an empty list.
	BackRef() *T

	// Emplace constructs an element in a new node linked right before pos
	// and returns an iterator to it. On error the list is unchanged.
	Emplace(pos Position[T], ctor Constructor[T]) (Iterator[T], error)
	// Insert inserts a copy of v before pos.
	Insert(pos Position[T], v T) (Iterator[T], error)
	// InsertN inserts count copies of v before pos and returns an iterator
	// to the first inserted one, or pos if count is 0.
	InsertN(pos Position[T], count int64, v T) (Iterator[T], error)
	// InsertRange inserts copies of [first, last) before pos in source order.
	// The range may belong to any list, this one included.
	InsertRange(pos Position[T], first, last Position[T]) (Iterator[T], error)
	// InsertValues inserts values before pos in order.
	InsertValues(pos Position[T], values ...T) (Iterator[T], error)

	// Erase removes the element at pos and returns the iterator following
	// it. Erasing End() is a no-op returning End().
	Erase(pos Position[T]) Iterator[T]
	// EraseRange removes [first, last) and returns last.
	EraseRange(first, last Position[T]) Iterator[T]
	Clear()

	PushBack(v T) error
	PushFront(v T) error
	EmplaceBack(ctor Constructor[T]) (*T, error)
	EmplaceFront(ctor Constructor[T]) (*T, error)
	// PopBack is a no-op on an empty list.
	PopBack()
	// PopFront is a no-op on an empty list.
	PopFront()

	// Resize grows with zero values or shrinks from the back.
	Resize(count int64) error
	// ResizeWith grows with copies of v or shrinks from the back.
	ResizeWith(count int64, v T) error

	// Swap exchanges the contents in O(1). It refuses and returns false
	// when the allocators are not interchangeable.
	Swap(other LinkedList[T]) bool
	// Merge splices every element of other into this list. Both lists are
	// assumed ordered by less; the result is then ordered too, and equal
	// elements of this list precede those of other. Other is left empty.
	// It refuses and returns false for a self merge or when the allocators
	// are not interchangeable.
	Merge(other LinkedList[T], less func(a, b T) bool) bool
	// CopyAssign replaces the contents with copies of the elements of other,
	// reusing the existing nodes.
	CopyAssign(other LinkedList[T]) error
	// MoveAssign takes the contents of other, leaving it empty. The chain is
	// transferred in O(1) unless the allocators are not interchangeable.
	MoveAssign(other LinkedList[T]) error
	// Release clears the list and returns every node to the allocator.
	Release()

	// Foreach traverses the list and stops at the first error returned by fn.
	// fn may erase the element it receives.
	Foreach(fn func(idx int64, it Iterator[T]) error) error
	// ReverseForeach traverses the list from the back.
	ReverseForeach(fn func(idx int64, it Iterator[T]))
	// Values copies the elements in order.
	Values() []T
	// Validate walks the chain in both directions and reports every broken
	// link and size mismatch.
	Validate() error
}
