package list

// References:
// https://en.cppreference.com/w/cpp/container/list
// https://github.com/golang/go/blob/master/src/container/list/list.go
//
// The chain is circular and anchored at a sentinel (root) that is embedded
// in the list and never holds an element.
//
//         +------+      +------+      +------+
//   +---->| root |----->|  e1  |----->|  e2  |----+
//   |     +------+<-----+------+<-----+------+    |
//   +---------------------------------------------+
//
// root.next is the logical begin, root itself the logical end. An empty
// list is exactly a root pointing to itself.

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/array"
	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/xlog"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

var (
	ErrLinkedListBrokenChain   = errors.New("[doubly-list] broken chain")
	ErrLinkedListSizeMismatch  = errors.New("[doubly-list] size mismatch")
	ErrLinkedListNegativeCount = errors.New("[doubly-list] negative count")
	ErrLinkedListTypeMismatch  = errors.New("[doubly-list] unsupported linked list implementation")
)

type doublyLinkedList[T any] struct {
	_      noCopy
	alloc  Allocator[T]
	logger xlog.XLogger
	root   Node[T]
	len    int64
}

type linkedListOptions[T any] struct {
	alloc  Allocator[T]
	logger xlog.XLogger
}

type LinkedListOption[T any] func(opts *linkedListOptions[T])

func WithLinkedListAllocator[T any](alloc Allocator[T]) LinkedListOption[T] {
	return func(opts *linkedListOptions[T]) {
		if alloc == nil {
			panic("doubly linked list allocator must not be nil")
		}
		opts.alloc = alloc
	}
}

// WithLinkedListLogger enables the debug and warn entries of the list.
// The list is silent by default.
func WithLinkedListLogger[T any](logger xlog.XLogger) LinkedListOption[T] {
	return func(opts *linkedListOptions[T]) {
		if logger == nil {
			panic("doubly linked list logger must not be nil")
		}
		opts.logger = logger
	}
}

func applyLinkedListOptions[T any](opts ...LinkedListOption[T]) *linkedListOptions[T] {
	o := &linkedListOptions[T]{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (opts *linkedListOptions[T]) build(defaultAlloc Allocator[T], defaultLogger xlog.XLogger) *doublyLinkedList[T] {
	alloc, logger := opts.alloc, opts.logger
	if alloc == nil {
		alloc = defaultAlloc
	}
	if alloc == nil {
		alloc = NewHeapAllocator[T]()
	}
	if logger == nil {
		logger = defaultLogger
	}
	if logger == nil {
		logger = xlog.NopXLogger()
	}
	return new(doublyLinkedList[T]).init(alloc, logger)
}

func (l *doublyLinkedList[T]) init(alloc Allocator[T], logger xlog.XLogger) *doublyLinkedList[T] {
	l.alloc = alloc
	l.logger = logger
	l.root.reset()
	l.len = 0
	return l
}

// NewLinkedList returns an empty list backed by a HeapAllocator unless
// another allocator is given.
func NewLinkedList[T any](opts ...LinkedListOption[T]) LinkedList[T] {
	return applyLinkedListOptions(opts...).build(nil, nil)
}

// NewLinkedListWithCount returns a list of count zero values.
func NewLinkedListWithCount[T any](count int64, opts ...LinkedListOption[T]) (LinkedList[T], error) {
	l := applyLinkedListOptions(opts...).build(nil, nil)
	if err := l.Resize(count); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLinkedListFilled returns a list of count copies of v.
func NewLinkedListFilled[T any](count int64, v T, opts ...LinkedListOption[T]) (LinkedList[T], error) {
	l := applyLinkedListOptions(opts...).build(nil, nil)
	if _, err := l.InsertN(l.End(), count, v); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLinkedListFromValues returns a list holding copies of values in order.
func NewLinkedListFromValues[T any](values []T, opts ...LinkedListOption[T]) (LinkedList[T], error) {
	l := applyLinkedListOptions(opts...).build(nil, nil)
	if _, err := l.InsertValues(l.End(), values...); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLinkedListFromArray copies the elements of arr in order.
func NewLinkedListFromArray[T any](arr *array.Array[T], opts ...LinkedListOption[T]) (LinkedList[T], error) {
	return NewLinkedListFromValues(arr.Data(), opts...)
}

// NewLinkedListFromArrayMove consumes the elements of arr in order and
// leaves zero values behind.
func NewLinkedListFromArrayMove[T any](arr *array.Array[T], opts ...LinkedListOption[T]) (LinkedList[T], error) {
	l, err := NewLinkedListFromValues(arr.Data(), opts...)
	if err != nil {
		return nil, err
	}
	arr.Fill(*new(T))
	return l, nil
}

func asDoublyLinkedList[T any](other LinkedList[T]) (*doublyLinkedList[T], error) {
	if dl, ok := other.(*doublyLinkedList[T]); ok && dl != nil {
		return dl, nil
	}
	return nil, infra.WrapErrorStackWithMessage(ErrLinkedListTypeMismatch, fmt.Sprintf("%T", other))
}

// NewLinkedListFromCopy deep copies other. Without an allocator option the
// copy shares the allocator of other.
func NewLinkedListFromCopy[T any](other LinkedList[T], opts ...LinkedListOption[T]) (LinkedList[T], error) {
	o, err := asDoublyLinkedList(other)
	if err != nil {
		return nil, err
	}
	l := applyLinkedListOptions(opts...).build(o.alloc, o.logger)
	if _, err = l.InsertRange(l.End(), o.CBegin(), o.CEnd()); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLinkedListFromMove takes the contents of other, leaving it empty.
// Without an allocator option the allocator moves along with the chain.
// With an allocator that is not interchangeable with the one of other,
// the elements are transferred one by one.
func NewLinkedListFromMove[T any](other LinkedList[T], opts ...LinkedListOption[T]) (LinkedList[T], error) {
	o, err := asDoublyLinkedList(other)
	if err != nil {
		return nil, err
	}
	l := applyLinkedListOptions(opts...).build(o.alloc, o.logger)
	if interchangeable(l.alloc, o.alloc) {
		l.takeChain(o)
		return l, nil
	}
	l.logger.Debug("[doubly-list] allocators not interchangeable, moving element-wise",
		zap.Int64("len", o.len),
	)
	if _, err = l.InsertRange(l.End(), o.CBegin(), o.CEnd()); err != nil {
		return nil, err
	}
	o.Clear()
	return l, nil
}

// takeChain relinks the sentinel of other into l. l must be empty.
func (l *doublyLinkedList[T]) takeChain(other *doublyLinkedList[T]) {
	l.root.takeOver(&other.root)
	l.len = other.len
	other.len = 0
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) Empty() bool {
	return l.len == 0
}

func (l *doublyLinkedList[T]) Allocator() Allocator[T] {
	return l.alloc
}

func (l *doublyLinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.root.next}
}

func (l *doublyLinkedList[T]) End() Iterator[T] {
	return Iterator[T]{n: &l.root}
}

func (l *doublyLinkedList[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.root.next}
}

func (l *doublyLinkedList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{n: &l.root}
}

func (l *doublyLinkedList[T]) RBegin() ReverseIterator[T, Iterator[T]] {
	return NewReverseIterator[T](l.End())
}

func (l *doublyLinkedList[T]) REnd() ReverseIterator[T, Iterator[T]] {
	return NewReverseIterator[T](l.Begin())
}

func (l *doublyLinkedList[T]) CRBegin() ReverseIterator[T, ConstIterator[T]] {
	return NewReverseIterator[T](l.CEnd())
}

func (l *doublyLinkedList[T]) CREnd() ReverseIterator[T, ConstIterator[T]] {
	return NewReverseIterator[T](l.CBegin())
}

func (l *doublyLinkedList[T]) Front() T {
	return l.root.next.value
}

func (l *doublyLinkedList[T]) Back() T {
	return l.root.prev.value
}

func (l *doublyLinkedList[T]) FrontRef() *T {
	return &l.root.next.value
}

func (l *doublyLinkedList[T]) BackRef() *T {
	return &l.root.prev.value
}

// constructNode allocates a node and builds its element. Nothing is
// linked yet, and on failure the node memory is already released.
func (l *doublyLinkedList[T]) constructNode(ctor Constructor[T]) (*Node[T], error) {
	n, err := l.alloc.Allocate()
	if err != nil {
		l.logger.ErrorStack(err, "[doubly-list] allocate node failed", zap.Int64("len", l.len))
		return nil, err
	}
	n.reset()
	if err = l.alloc.Construct(n, ctor); err != nil {
		l.alloc.Deallocate(n)
		return nil, err
	}
	return n, nil
}

func (l *doublyLinkedList[T]) destructNode(n *Node[T]) {
	l.alloc.Destroy(n)
	l.alloc.Deallocate(n)
}

func (l *doublyLinkedList[T]) Emplace(pos Position[T], ctor Constructor[T]) (Iterator[T], error) {
	n, err := l.constructNode(ctor)
	if err != nil {
		return Iterator[T]{}, err
	}
	at := pos.node()
	n.connect(at.prev, at)
	l.len++
	return Iterator[T]{n: n}, nil
}

func (l *doublyLinkedList[T]) Insert(pos Position[T], v T) (Iterator[T], error) {
	return l.Emplace(pos, Value(v))
}

// stage builds count elements in a detached list sharing the allocator, so
// a failure halfway leaves l untouched.
func (l *doublyLinkedList[T]) stage(count int64, ctor func(idx int64) Constructor[T]) (*doublyLinkedList[T], error) {
	tmp := new(doublyLinkedList[T]).init(l.alloc, l.logger)
	for i := int64(0); i < count; i++ {
		if _, err := tmp.Emplace(tmp.End(), ctor(i)); err != nil {
			tmp.Clear()
			return nil, err
		}
	}
	return tmp, nil
}

// splice moves the whole chain of tmp right before pos.
func (l *doublyLinkedList[T]) splice(pos *Node[T], tmp *doublyLinkedList[T]) Iterator[T] {
	if tmp.len == 0 {
		return Iterator[T]{n: pos}
	}
	first := tmp.root.next
	pos.prev.connectSequence(first, tmp.root.prev)
	l.len += tmp.len
	tmp.len = 0
	return Iterator[T]{n: first}
}

func (l *doublyLinkedList[T]) InsertN(pos Position[T], count int64, v T) (Iterator[T], error) {
	if count < 0 {
		return Iterator[T]{}, infra.WrapErrorStackWithMessage(ErrLinkedListNegativeCount, fmt.Sprintf("count %d", count))
	}
	tmp, err := l.stage(count, func(int64) Constructor[T] {
		return Value(v)
	})
	if err != nil {
		return Iterator[T]{}, err
	}
	return l.splice(pos.node(), tmp), nil
}

func (l *doublyLinkedList[T]) InsertRange(pos Position[T], first, last Position[T]) (Iterator[T], error) {
	// Staged first so that a range inside l is read before l changes.
	src := first.node()
	tmp, err := l.stage(Distance(first, last), func(int64) Constructor[T] {
		v := src.value
		src = src.next
		return Value(v)
	})
	if err != nil {
		return Iterator[T]{}, err
	}
	return l.splice(pos.node(), tmp), nil
}

func (l *doublyLinkedList[T]) InsertValues(pos Position[T], values ...T) (Iterator[T], error) {
	tmp, err := l.stage(int64(len(values)), func(idx int64) Constructor[T] {
		return Value(values[idx])
	})
	if err != nil {
		return Iterator[T]{}, err
	}
	return l.splice(pos.node(), tmp), nil
}

func (l *doublyLinkedList[T]) Erase(pos Position[T]) Iterator[T] {
	n := pos.node()
	if n == &l.root {
		return Iterator[T]{n: n}
	}
	next := n.next
	n.detach()
	l.destructNode(n)
	l.len--
	return Iterator[T]{n: next}
}

func (l *doublyLinkedList[T]) EraseRange(first, last Position[T]) Iterator[T] {
	end := last.node()
	for n := first.node(); n != end; {
		if n == &l.root {
			// Erasing past the end, nothing after root belongs to the range.
			break
		}
		n = l.Erase(Iterator[T]{n: n}).n
	}
	return Iterator[T]{n: end}
}

func (l *doublyLinkedList[T]) Clear() {
	l.EraseRange(l.Begin(), l.End())
}

func (l *doublyLinkedList[T]) Release() {
	l.Clear()
}

func (l *doublyLinkedList[T]) PushBack(v T) error {
	_, err := l.Emplace(l.End(), Value(v))
	return err
}

func (l *doublyLinkedList[T]) PushFront(v T) error {
	_, err := l.Emplace(l.Begin(), Value(v))
	return err
}

func (l *doublyLinkedList[T]) EmplaceBack(ctor Constructor[T]) (*T, error) {
	it, err := l.Emplace(l.End(), ctor)
	if err != nil {
		return nil, err
	}
	return it.Ptr(), nil
}

func (l *doublyLinkedList[T]) EmplaceFront(ctor Constructor[T]) (*T, error) {
	it, err := l.Emplace(l.Begin(), ctor)
	if err != nil {
		return nil, err
	}
	return it.Ptr(), nil
}

func (l *doublyLinkedList[T]) PopBack() {
	l.Erase(l.End().Prev())
}

func (l *doublyLinkedList[T]) PopFront() {
	l.Erase(l.Begin())
}

func (l *doublyLinkedList[T]) resize(count int64, ctor Constructor[T]) error {
	if count < 0 {
		return infra.WrapErrorStackWithMessage(ErrLinkedListNegativeCount, fmt.Sprintf("count %d", count))
	}
	if count == l.len {
		return nil
	}
	if count < l.len {
		for i := l.len - count; i > 0; i-- {
			l.PopBack()
		}
		return nil
	}
	tmp, err := l.stage(count-l.len, func(int64) Constructor[T] {
		return ctor
	})
	if err != nil {
		return err
	}
	l.splice(&l.root, tmp)
	return nil
}

func (l *doublyLinkedList[T]) Resize(count int64) error {
	return l.resize(count, nil)
}

func (l *doublyLinkedList[T]) ResizeWith(count int64, v T) error {
	return l.resize(count, Value(v))
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, it Iterator[T]) error) error {
	var idx int64
	for n := l.root.next; n != &l.root; idx++ {
		next := n.next
		if err := fn(idx, Iterator[T]{n: n}); err != nil {
			return err
		}
		n = next
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, it Iterator[T])) {
	var idx int64
	for n := l.root.prev; n != &l.root; idx++ {
		prev := n.prev
		fn(idx, Iterator[T]{n: n})
		n = prev
	}
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for n := l.root.next; n != &l.root; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (l *doublyLinkedList[T]) Validate() error {
	var merr error
	walk := func(direction string, step func(n *Node[T]) *Node[T], back func(n *Node[T]) *Node[T]) {
		var count int64
		for cur := &l.root; ; {
			next := step(cur)
			if next == nil {
				merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrLinkedListBrokenChain,
					fmt.Sprintf("%s nil link after %d nodes", direction, count)))
				return
			}
			if back(next) != cur {
				merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrLinkedListBrokenChain,
					fmt.Sprintf("%s link at %d is not mirrored", direction, count)))
			}
			if next == &l.root {
				break
			}
			if count++; count > l.len {
				merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrLinkedListSizeMismatch,
					fmt.Sprintf("%s walk exceeds size %d", direction, l.len)))
				return
			}
			cur = next
		}
		if count != l.len {
			merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrLinkedListSizeMismatch,
				fmt.Sprintf("%s walk visits %d nodes, size %d", direction, count, l.len)))
		}
	}
	walk("forward",
		func(n *Node[T]) *Node[T] { return n.next },
		func(n *Node[T]) *Node[T] { return n.prev },
	)
	walk("backward",
		func(n *Node[T]) *Node[T] { return n.prev },
		func(n *Node[T]) *Node[T] { return n.next },
	)
	return merr
}
