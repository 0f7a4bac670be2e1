package stack

// node is a cell in an immutable chain. Neither value nor next ever
// changes after construction, so any number of stacks may share the same
// tail without coordination. A nil *node is the canonical empty chain.
type node[A comparable] struct {
	value A
	next  *node[A]
	count int
}

// length is nil-safe and O(1) via the cached count.
func (n *node[A]) length() int {
	if n == nil {
		return 0
	}
	return n.count
}

// push allocates exactly one cell with the receiver as the remainder.
func (n *node[A]) push(v A) *node[A] {
	return &node[A]{value: v, next: n, count: n.length() + 1}
}

// reverse produces a fresh chain with inverted order. The result shares
// no cells with the receiver.
func (n *node[A]) reverse() *node[A] {
	var out *node[A]
	for cur := n; cur != nil; cur = cur.next {
		out = out.push(cur.value)
	}
	return out
}

// fromSlice builds a chain whose top-to-bottom order matches the
// first-to-last order of items. An empty slice yields the empty chain.
func fromSlice[A comparable](items []A) *node[A] {
	var chain *node[A]
	for i := len(items) - 1; i >= 0; i-- {
		chain = chain.push(items[i])
	}
	return chain
}
