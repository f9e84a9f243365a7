package list

// Position is satisfied by both iterator flavors.
type Position[T any] interface {
	node() *Node[T]
}

// Bidirectional is the cursor contract the reverse adaptor builds on.
type Bidirectional[I any, T any] interface {
	comparable
	Next() I
	Prev() I
	Get() T
}

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)

// Iterator is a mutable cursor over a list node. It does not own the node
// and is invalidated when the node is erased.
// The zero Iterator points nowhere.
type Iterator[T any] struct {
	n *Node[T]
}

func (it Iterator[T]) node() *Node[T] {
	return it.n
}

// Valid reports whether the iterator points to a node. It does not tell
// whether that node is still linked.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Get must not be called on End().
func (it Iterator[T]) Get() T {
	return it.n.value
}

// Ptr must not be called on End().
func (it Iterator[T]) Ptr() *T {
	return &it.n.value
}

// Set must not be called on End().
func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}

// Equal compares against either flavor.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return other != nil && it.n == other.node()
}

// Const narrows the iterator to a read-only one over the same node.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is the read-only cursor. There is no way back to an
// Iterator from it.
type ConstIterator[T any] struct {
	n *Node[T]
}

func (it ConstIterator[T]) node() *Node[T] {
	return it.n
}

func (it ConstIterator[T]) Valid() bool {
	return it.n != nil
}

// Get must not be called on CEnd().
func (it ConstIterator[T]) Get() T {
	return it.n.value
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.prev}
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return other != nil && it.n == other.node()
}

// ReverseIterator walks a bidirectional cursor backwards. Its current
// element is the one right before the wrapped base cursor, so the reverse
// begin wraps End() and the reverse end wraps Begin().
type ReverseIterator[T any, I Bidirectional[I, T]] struct {
	base I
}

func NewReverseIterator[T any, I Bidirectional[I, T]](base I) ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: base}
}

// Base returns the wrapped cursor, one position after the current element.
func (r ReverseIterator[T, I]) Base() I {
	return r.base
}

func (r ReverseIterator[T, I]) Get() T {
	return r.base.Prev().Get()
}

func (r ReverseIterator[T, I]) Next() ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: r.base.Prev()}
}

func (r ReverseIterator[T, I]) Prev() ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: r.base.Next()}
}

func (r ReverseIterator[T, I]) Equal(other ReverseIterator[T, I]) bool {
	return r.base == other.base
}

// Advance moves it n steps, backwards for a negative n.
func Advance[I interface {
	Next() I
	Prev() I
}](it I, n int) I {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance counts the steps from first to last going forward.
// last must be reachable from first.
func Distance[T any](first, last Position[T]) int64 {
	var d int64
	for n, end := first.node(), last.node(); n != end; n = n.next {
		d++
	}
	return d
}
