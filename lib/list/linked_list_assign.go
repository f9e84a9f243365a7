package list

import (
	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
)

func (l *doublyLinkedList[T]) Swap(other LinkedList[T]) bool {
	o, err := asDoublyLinkedList(other)
	if err != nil {
		l.logger.ErrorStack(err, "[doubly-list] swap refused")
		return false
	}
	if o == l {
		return true
	}
	if !interchangeable(l.alloc, o.alloc) {
		l.logger.Debug("[doubly-list] swap refused, allocators not interchangeable")
		return false
	}
	l.root.swap(&o.root)
	l.len, o.len = o.len, l.len
	if l.alloc.Traits().PropagateOnSwap {
		l.alloc, o.alloc = o.alloc, l.alloc
	}
	return true
}

// assign overwrites the elements of l with [first, last) position by
// position, trims the surplus of l, then appends the surplus of the range.
func (l *doublyLinkedList[T]) assign(first, last *Node[T]) error {
	cur, end := l.root.next, &l.root
	for ; cur != end && first != last; cur, first = cur.next, first.next {
		cur.value = first.value
	}
	if first == last {
		l.EraseRange(Iterator[T]{n: cur}, Iterator[T]{n: end})
		return nil
	}
	_, err := l.InsertRange(l.End(), ConstIterator[T]{n: first}, ConstIterator[T]{n: last})
	return err
}

func (l *doublyLinkedList[T]) CopyAssign(other LinkedList[T]) error {
	o, err := asDoublyLinkedList(other)
	if err != nil {
		return err
	}
	if o == l {
		return nil
	}
	if traits := l.alloc.Traits(); traits.PropagateOnCopyAssignment {
		if !interchangeable(l.alloc, o.alloc) {
			// The current nodes cannot outlive the allocator that made them.
			l.Clear()
		}
		l.alloc = o.alloc
	}
	return l.assign(o.root.next, &o.root)
}

func (l *doublyLinkedList[T]) MoveAssign(other LinkedList[T]) error {
	o, err := asDoublyLinkedList(other)
	if err != nil {
		return err
	}
	if o == l {
		return nil
	}
	traits := l.alloc.Traits()
	if traits.PropagateOnMoveAssignment || interchangeable(l.alloc, o.alloc) {
		l.Clear()
		if traits.PropagateOnMoveAssignment {
			l.alloc = o.alloc
		}
		l.takeChain(o)
		return nil
	}
	l.logger.Debug("[doubly-list] move assign degraded to element-wise, allocators not interchangeable",
		zap.Int64("len", o.len),
	)
	if err = l.assign(o.root.next, &o.root); err != nil {
		return err
	}
	o.Clear()
	return nil
}

func (l *doublyLinkedList[T]) Merge(other LinkedList[T], less func(a, b T) bool) bool {
	o, err := asDoublyLinkedList(other)
	if err != nil {
		l.logger.ErrorStack(err, "[doubly-list] merge refused")
		return false
	}
	if o == l {
		return false
	}
	if less == nil {
		panic("doubly linked list merge requires an ordering")
	}
	if !interchangeable(l.alloc, o.alloc) {
		l.logger.Debug("[doubly-list] merge refused, allocators not interchangeable")
		return false
	}

	first1, last1 := l.root.next, &l.root
	first2, last2 := o.root.next, &o.root
	for first1 != last1 && first2 != last2 {
		if less(first2.value, first1.value) {
			next := first2.next
			first2.detach().connect(first1.prev, first1)
			first2 = next
		} else {
			first1 = first1.next
		}
	}
	if first2 != last2 {
		// The rest of other is one contiguous run, splice it at once.
		l.root.prev.connectSequence(first2, last2.prev)
	}
	l.len += o.len
	o.len = 0
	return true
}

// MergeOrdered merges src into dst with the ascending "<" ordering.
func MergeOrdered[T infra.OrderedKey](dst, src LinkedList[T]) bool {
	return dst.Merge(src, infra.Less[T])
}
