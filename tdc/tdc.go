package tdc

import "github.com/katalvlaran/tdconv/cursor"

// Convolve — full discrete convolution over cursor ranges
//
// Description:
//
//	Convolve writes into [z0, zZ) the convolution of [x0, xX) and [y0, yY)
//	and returns the output positions [validStart, validEnd) whose lags use
//	the full overlap of min(X,Y) terms.
//
// Algorithm Outline:
//  1. X, Y, Z = lengths of the three ranges; validate (see Errors).
//  2. Zero every output element.
//  3. Keep three moving cursors:
//     yL — y[L(T)], lower edge of the summation window (inclusive)
//     yH — y[H(T)], upper edge (exclusive)
//     xa — x[T−L(T)], the x partner of yL
//  4. For T = 0..Z−1:
//     z[T] = Σ y[t]·x[T−t] walking y forward from yL and x backward from xa
//     in lock-step, until y reaches yH.
//     Then: T ≥ X−1 ? advance yL : advance xa;  T < Y−1 ? advance yH.
//  5. Return z0+(min(X,Y)−1), z0+max(X,Y), captured while walking z.
//
// The window size at lag T is min(T+1, X, Y, X+Y−1−T): it grows from 1 to
// min(X,Y), plateaus, then shrinks back to 1. The x cursor steps back
// once between consecutive terms, never past x0.
//
// Arithmetic:
//
//	Each operand is converted to ZE before multiplying; products are summed
//	in ZE. No wider intermediate type is introduced. For an integer ZE the
//	conversion truncates fractional operands first, so a float 0.5 times 2
//	accumulates 0·2 = 0, not 1.
//
// Complexity:
//
//	Time   = Θ(X·Y) multiply-adds; O(X+Y) outer cursor steps
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput      — X == 0 or Y == 0.
//   - ErrUnreachableEnd  — X, Y or Z is negative.
//   - ErrLengthMismatch  — Z != X+Y−1.
//
// On error z is left untouched and the returned cursors are zero values.
//
// The element types must be spelled out; the cursor types are inferred:
//
//	lo, hi, err := Convolve[float64, float64, float64](x0, xX, y0, yY, z0, zZ)
func Convolve[XE, YE, ZE Number,
	XC cursor.BidiReader[XC, XE],
	YC cursor.Reader[YC, YE],
	ZC cursor.Writer[ZC, ZE]](
	x0, xX XC, y0, yY YC, z0, zZ ZC,
) (validStart, validEnd ZC, err error) {
	X := x0.Distance(xX)
	Y := y0.Distance(yY)
	Z := z0.Distance(zZ)

	if err = checkLengths(X, Y, Z); err != nil {
		tracer().Debugf("tdc.Convolve: rejected X=%d Y=%d Z=%d: %v", X, Y, Z, err)
		var zero ZC

		return zero, zero, tdcErrorf("Convolve", err)
	}

	// Zero the output before accumulating.
	var zero ZE
	for zt := z0; zt != zZ; zt = zt.Next() {
		zt.Set(zero)
	}

	// Initial window for T=0 is the single pair (y[0], x[0]).
	yL := y0
	yH := y0.Next()
	xa := x0

	lo, hi := min(X, Y)-1, max(X, Y)
	validEnd = zZ // hi == Z when one input has length 1
	zT := z0
	for T := 0; T < Z; T++ {
		switch T {
		case lo:
			validStart = zT
		case hi:
			validEnd = zT
		}
		acc := zT.Value()
		yt, xt := yL, xa
		for {
			acc += ZE(yt.Value()) * ZE(xt.Value())
			yt = yt.Next()
			if yt == yH {
				break
			}
			xt = xt.Prev()
		}
		zT.Set(acc)
		zT = zT.Next()

		// Shift the window for T+1.
		if T >= X-1 {
			yL = yL.Next()
		} else {
			xa = xa.Next()
		}
		if T < Y-1 {
			yH = yH.Next()
		}
	}

	tracer().Debugf("tdc.Convolve: X=%d Y=%d Z=%d", X, Y, Z)

	return validStart, validEnd, nil
}
