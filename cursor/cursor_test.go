// SPDX-License-Identifier: MIT

package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdconv/cursor"
)

// TestSlice_WalkAndDistance walks a slice forward and backward and checks
// that Distance tracks the position exactly.
func TestSlice_WalkAndDistance(t *testing.T) {
	s := []int{10, 20, 30}
	begin, end := cursor.Bounds(s)

	assert.Equal(t, 3, begin.Distance(end), "full length")
	assert.Equal(t, -3, end.Distance(begin), "end precedes begin")
	assert.Equal(t, 0, begin.Distance(begin))

	c := begin.Next()
	assert.Equal(t, 20, c.Value())
	assert.Equal(t, end, c.Next().Next(), "two steps from index 1 reach end")
	assert.Equal(t, begin, c.Prev(), "Prev undoes Next")
	assert.Equal(t, 2, begin.Offset(2).Index())
}

// TestSlice_SetWritesThrough verifies Set mutates the caller's slice.
func TestSlice_SetWritesThrough(t *testing.T) {
	s := make([]float64, 2)
	begin, _ := cursor.Bounds(s)
	begin.Next().Set(4.5)
	assert.Equal(t, []float64{0, 4.5}, s)
}

// TestSlice_ForeignCursorUnreachable ensures cursors of distinct slices
// never report a non-negative distance.
func TestSlice_ForeignCursorUnreachable(t *testing.T) {
	a, _ := cursor.Bounds([]int{1, 2})
	_, bEnd := cursor.Bounds([]int{1, 2})
	assert.Negative(t, a.Distance(bEnd))
}

// TestList_Bidirectional covers stepping in both directions, including
// the wrap from end back to the last element.
func TestList_Bidirectional(t *testing.T) {
	l := cursor.NewList(1, 2, 3, 4)
	begin, end := cursor.ListBounds[int](l)

	require.Equal(t, 4, begin.Distance(end))
	assert.Equal(t, 4, end.Prev().Value(), "Prev of end is the last element")
	assert.Equal(t, end, begin.Prev(), "Prev of first element is end")

	mid := cursor.Advance(begin, 2)
	assert.Equal(t, 3, mid.Value())
	assert.Equal(t, 2, begin.Distance(mid))
	assert.Equal(t, -2, mid.Distance(begin), "backward distance is negative")
	assert.Equal(t, begin, cursor.Advance(mid, -2))
	assert.Equal(t, end, end.Next(), "Next of end stays at end")

	mid.Set(30)
	assert.Equal(t, 30, l.Front().Next().Next().Value)
}

// TestChain_ForwardOnly covers a forward-only sequence and the
// unreachable-end contract.
func TestChain_ForwardOnly(t *testing.T) {
	ch := cursor.NewChain(7, 8, 9)
	begin, end := ch.Bounds()

	assert.Equal(t, 3, ch.Len())
	assert.Equal(t, 3, begin.Distance(end))
	assert.Equal(t, -1, end.Distance(begin), "forward-only cursor cannot look back")

	second := cursor.Step(begin, 1)
	assert.Equal(t, 8, second.Value())
	second.Set(80)
	assert.Equal(t, []int{7, 80, 9}, ch.Values())

	_, otherEnd := cursor.NewChain(1).Bounds()
	assert.Equal(t, -1, begin.Distance(otherEnd), "end of another chain is unreachable")
}

// TestChain_Empty checks that an empty chain has begin == end.
func TestChain_Empty(t *testing.T) {
	begin, end := cursor.NewChain[int]().Bounds()
	assert.Equal(t, begin, end)
	assert.Equal(t, 0, begin.Distance(end))
}
