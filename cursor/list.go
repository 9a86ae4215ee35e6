// SPDX-License-Identifier: MIT

package cursor

import "container/list"

// List is a bidirectional cursor over a *list.List whose element values
// all hold a T. The end position is represented by a nil element.
type List[T any] struct {
	l *list.List
	e *list.Element
}

// ListBounds returns the begin and end cursors of l.
func ListBounds[T any](l *list.List) (begin, end List[T]) {
	return List[T]{l: l, e: l.Front()}, List[T]{l: l}
}

// NewList builds a list holding vals in order.
func NewList[T any](vals ...T) *list.List {
	l := list.New()
	for _, v := range vals {
		l.PushBack(v)
	}

	return l
}

// Next implements Forward. Next of the end position stays at the end.
func (c List[T]) Next() List[T] {
	if c.e == nil {
		return c
	}

	return List[T]{l: c.l, e: c.e.Next()}
}

// Prev implements Bidirectional. Prev of the end position is the last
// element; Prev of the first element is the end position.
func (c List[T]) Prev() List[T] {
	if c.e == nil {
		return List[T]{l: c.l, e: c.l.Back()}
	}

	return List[T]{l: c.l, e: c.e.Prev()}
}

// Distance implements Forward.
// Complexity: O(n) in the list length.
func (c List[T]) Distance(to List[T]) int {
	if c.l != to.l {
		return -1
	}
	n := 0
	for e := c.e; ; e = e.Next() {
		if e == to.e {
			return n
		}
		if e == nil {
			break
		}
		n++
	}
	// to precedes c: report how far back it is.
	n = 0
	for e := to.e; e != nil; e = e.Next() {
		if e == c.e {
			return -n
		}
		n++
	}

	return -1
}

// Value returns the element at c.
func (c List[T]) Value() T { return c.e.Value.(T) }

// Set overwrites the element at c.
func (c List[T]) Set(v T) { c.e.Value = v }
