// Package tdconv is a small toolkit for time-domain discrete convolution
// of finite numeric sequences.
//
// 🚀 What is in tdconv?
//
//	• cursor/ — position cursors over slices, linked lists and forward-only
//	            chains, with Forward / Bidirectional capability interfaces
//	• tdc/    — the convolution kernel: full X+Y−1 output written in place,
//	            valid-lag range returned as output cursors
//	• cmd/tdconv — command-line front end (run, sweep)
//	• examples/  — moving-average smoothing of a price series
//
// ✨ Why tdconv?
//
//   - Generic – any integer or float element type, any cursor type that
//     offers the required capability
//   - No allocation in the kernel – the caller owns the output
//   - Exact – verified against the double-loop definition on every
//     sub-range of the reference sequences
//
// Quick example:
//
//	x = [4, 7, -3, 5]
//	y = [6, -3, 0, 2, 4, 9]
//	z = [24, 30, -39, 47, 15, 58, 61, -7, 45]   valid lags [3,6)
//
//	go get github.com/katalvlaran/tdconv/tdc
package tdconv
