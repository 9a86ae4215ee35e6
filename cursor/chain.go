// SPDX-License-Identifier: MIT

package cursor

type chainNode[T any] struct {
	val  T
	next *chainNode[T]
}

// Chain is a singly linked sequence. It only supports forward traversal,
// which makes it the natural stand-in for input streams that cannot rewind.
type Chain[T any] struct {
	head *chainNode[T]
	n    int
}

// NewChain builds a Chain holding vals in order.
func NewChain[T any](vals ...T) *Chain[T] {
	ch := &Chain[T]{n: len(vals)}
	var tail *chainNode[T]
	for _, v := range vals {
		node := &chainNode[T]{val: v}
		if tail == nil {
			ch.head = node
		} else {
			tail.next = node
		}
		tail = node
	}

	return ch
}

// Len returns the number of elements.
func (ch *Chain[T]) Len() int { return ch.n }

// Bounds returns the begin and end cursors of ch.
func (ch *Chain[T]) Bounds() (begin, end ChainCursor[T]) {
	return ChainCursor[T]{ch: ch, node: ch.head}, ChainCursor[T]{ch: ch}
}

// Values copies the chain into a new slice.
func (ch *Chain[T]) Values() []T {
	out := make([]T, 0, ch.n)
	for node := ch.head; node != nil; node = node.next {
		out = append(out, node.val)
	}

	return out
}

// ChainCursor is a forward-only position in a Chain.
type ChainCursor[T any] struct {
	ch   *Chain[T]
	node *chainNode[T]
}

// Next implements Forward. Next of the end position stays at the end.
func (c ChainCursor[T]) Next() ChainCursor[T] {
	if c.node == nil {
		return c
	}

	return ChainCursor[T]{ch: c.ch, node: c.node.next}
}

// Distance implements Forward. A forward-only sequence cannot look back,
// so any target not met before the end yields -1.
func (c ChainCursor[T]) Distance(to ChainCursor[T]) int {
	if c.ch != to.ch {
		return -1
	}
	n := 0
	for node := c.node; ; node = node.next {
		if node == to.node {
			return n
		}
		if node == nil {
			return -1
		}
		n++
	}
}

// Value returns the element at c.
func (c ChainCursor[T]) Value() T { return c.node.val }

// Set overwrites the element at c.
func (c ChainCursor[T]) Set(v T) { c.node.val = v }
