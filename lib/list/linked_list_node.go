package list

// Node is the storage unit handed out by an Allocator.
// A data node carries one element in its slot. The list sentinel is a
// Node too, its slot is never constructed.
//
// Links never hold nil once a node is in use: a detached or fresh node
// points to itself in both directions.
type Node[T any] struct {
	prev, next *Node[T]
	value      T // Placed last to avoid padding between the links.
}

// Slot exposes the element storage to allocators.
func (n *Node[T]) Slot() *T {
	return &n.value
}

func (n *Node[T]) isolated() bool {
	return n.next == nil || n.next == n
}

// reset makes n a self-loop.
func (n *Node[T]) reset() *Node[T] {
	n.prev, n.next = n, n
	return n
}

// connect inserts n between prev and next.
// Callers guarantee prev.next == next and next.prev == prev.
func (n *Node[T]) connect(prev, next *Node[T]) *Node[T] {
	prev.next = n
	next.prev = n
	n.prev = prev
	n.next = next
	return n
}

// connectSequence cuts the closed run [first, last] out of its chain and
// splices it right after n.
//
//	before:  ... a <-> [first ... last] <-> b ...      n <-> c
//	after:   ... a <-> b ...      n <-> [first ... last] <-> c
func (n *Node[T]) connectSequence(first, last *Node[T]) *Node[T] {
	first.prev.next = last.next
	last.next.prev = first.prev
	last.next = n.next
	n.next.prev = last
	first.prev = n
	n.next = first
	return n
}

// detach makes the neighbours of n skip it.
// The links of n are left stale.
func (n *Node[T]) detach() *Node[T] {
	n.next.prev = n.prev
	n.prev.next = n.next
	return n
}

// swap exchanges the chain positions of n and other. They may belong to
// different chains or be neighbours in the same one.
func (n *Node[T]) swap(other *Node[T]) {
	tmp := other.prev
	other.prev = n.prev
	other.prev.next = other
	n.prev = tmp
	n.prev.next = n

	tmp = other.next
	other.next = n.next
	other.next.prev = other
	n.next = tmp
	n.next.prev = n
}

// takeOver moves the chain position of other to n. An isolated other
// leaves n isolated. Otherwise n takes the exact place of other and
// other is reset, so it can be dropped without touching the chain.
func (n *Node[T]) takeOver(other *Node[T]) *Node[T] {
	if other.isolated() {
		other.reset()
		return n.reset()
	}
	n.connect(other.prev, other.next)
	other.reset()
	return n
}

// noCopy lets go vet flag value copies of the list, whose sentinel
// points to itself.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
