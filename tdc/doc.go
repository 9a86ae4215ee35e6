// Package tdc computes the full discrete linear convolution of two finite
// numeric sequences in the time domain, and reports which output lags are
// "valid", i.e. computed without implicit zero padding of either input.
//
// 🚀 What is it?
//
//	For inputs x (length X) and y (length Y) the output z has X+Y−1 samples:
//
//	  z[T] = Σ_t y[t]·x[T−t]
//
//	summing over every t for which both y[t] and x[T−t] exist. Lags
//	[min(X,Y)−1, max(X,Y)) use the full overlap of min(X,Y) terms; the lags
//	outside that range are still computed exactly, their support window
//	is simply truncated by a sequence boundary.
//
// ✨ Key features:
//   - cursor-based kernel: works over slices, linked lists and forward-only
//     chains (see package cursor) without recomputing lengths or positions
//   - no allocation: the caller owns and pre-sizes the output
//   - incremental window: each of the three kernel cursors moves at most one
//     step per output lag; cursor bookkeeping is O(X+Y), arithmetic Θ(X·Y)
//   - x needs forward and backward stepping, y and z only forward stepping
//   - commutative: (x, y) and (y, x) give identical outputs and valid ranges
//
// ⚙️ Usage:
//
//	x0, xX := cursor.Bounds(x)
//	y0, yY := cursor.Bounds(y)
//	z0, zZ := cursor.Bounds(z) // len(z) == len(x)+len(y)-1
//	lo, hi, err := tdc.Convolve[int, int, int](x0, xX, y0, yY, z0, zZ)
//
//	// or with plain slices:
//	z, span, err := tdc.Full(x, y)
//
// Errors:
//   - ErrEmptyInput      — an input sequence has length 0.
//   - ErrUnreachableEnd  — an end cursor is not forward-reachable from its begin.
//   - ErrLengthMismatch  — the output length is not X+Y−1.
//
// Every check runs before the output is touched.
//
// Performance:
//
//   - Time:   Θ(X·Y) multiply-adds, O(X+Y) cursor steps in the outer loop
//   - Memory: O(1) (Convolve, Slices), O(X+Y) (Full)
package tdc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tdconv'
func tracer() tracing.Trace {
	return tracing.Select("tdconv")
}
