// SPDX-License-Identifier: MIT

package cursor

// sliceSeq pins the slice a family of Slice cursors walks over.
// Cursors compare by *sliceSeq identity plus index.
type sliceSeq[T any] struct {
	data []T
}

// Slice is a random-access cursor over a Go slice.
//
// Positions run from 0 (first element) to len(s) (one past the end).
// Prev/Next never panic on their own; only Value and Set on a position
// outside [0, len(s)) index out of range.
type Slice[T any] struct {
	seq *sliceSeq[T]
	i   int
}

// Bounds returns the begin and end cursors of s.
// Both cursors belong to the same sequence and may be compared with ==.
func Bounds[T any](s []T) (begin, end Slice[T]) {
	seq := &sliceSeq[T]{data: s}

	return Slice[T]{seq: seq, i: 0}, Slice[T]{seq: seq, i: len(s)}
}

// Next implements Forward.
func (c Slice[T]) Next() Slice[T] { return Slice[T]{seq: c.seq, i: c.i + 1} }

// Prev implements Bidirectional.
func (c Slice[T]) Prev() Slice[T] { return Slice[T]{seq: c.seq, i: c.i - 1} }

// Offset returns c moved by n positions in O(1).
func (c Slice[T]) Offset(n int) Slice[T] { return Slice[T]{seq: c.seq, i: c.i + n} }

// Distance implements Forward. Cursors of different slices are never
// reachable from each other and yield -1.
func (c Slice[T]) Distance(to Slice[T]) int {
	if c.seq != to.seq {
		return -1
	}

	return to.i - c.i
}

// Index returns the 0-based position of c within its slice.
func (c Slice[T]) Index() int { return c.i }

// Value returns the element at c.
func (c Slice[T]) Value() T { return c.seq.data[c.i] }

// Set overwrites the element at c in the underlying slice.
func (c Slice[T]) Set(v T) { c.seq.data[c.i] = v }
