// SPDX-License-Identifier: MIT

package cursor

// Forward is a position that can step toward the end of its sequence.
//
// Implementations must be comparable: c1 == c2 iff both denote the same
// position of the same sequence.
type Forward[C any] interface {
	comparable
	// Next returns the position one step further.
	Next() C
	// Distance returns the number of Next steps from the receiver to to,
	// or a negative number if to cannot be reached that way.
	Distance(to C) int
}

// Bidirectional is a Forward position that can also step backward.
type Bidirectional[C any] interface {
	Forward[C]
	// Prev returns the position one step back.
	Prev() C
}

// Reader is a Forward position with readable elements.
type Reader[C any, T any] interface {
	Forward[C]
	Value() T
}

// BidiReader is a Bidirectional position with readable elements.
type BidiReader[C any, T any] interface {
	Bidirectional[C]
	Value() T
}

// Writer is a Forward position with readable and settable elements.
type Writer[C any, T any] interface {
	Reader[C, T]
	Set(v T)
}

// Advance moves c by n unit steps: forward for n > 0, backward for n < 0.
// Complexity: O(|n|).
func Advance[C Bidirectional[C]](c C, n int) C {
	for ; n > 0; n-- {
		c = c.Next()
	}
	for ; n < 0; n++ {
		c = c.Prev()
	}

	return c
}

// Step moves a Forward position n steps ahead. n must not be negative.
func Step[C Forward[C]](c C, n int) C {
	for ; n > 0; n-- {
		c = c.Next()
	}

	return c
}
