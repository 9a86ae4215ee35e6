package tdc

import "github.com/katalvlaran/tdconv/cursor"

// Slices convolves x and y into the caller-sized z (len(z) must be
// len(x)+len(y)−1) and returns the valid span as indices into z.
// It is Convolve over slice cursors.
//
// Complexity: Θ(len(x)·len(y)) time, O(1) extra memory.
func Slices[XE, YE, ZE Number](x []XE, y []YE, z []ZE) (Span, error) {
	x0, xX := cursor.Bounds(x)
	y0, yY := cursor.Bounds(y)
	z0, zZ := cursor.Bounds(z)

	lo, hi, err := Convolve[XE, YE, ZE](x0, xX, y0, yY, z0, zZ)
	if err != nil {
		return Span{}, tdcErrorf("Slices", err)
	}

	return Span{From: lo.Index(), To: hi.Index()}, nil
}

// Full allocates the output and returns the full convolution of x and y
// together with its valid span.
//
// Example:
//
//	z, span, _ := tdc.Full([]int{1, 2}, []int{1, 1, 1})
//	// z = [1 3 3 2], span = {1 2}
func Full[E Number](x, y []E) ([]E, Span, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, Span{}, tdcErrorf("Full", ErrEmptyInput)
	}
	z := make([]E, OutputLen(len(x), len(y)))
	span, err := Slices(x, y, z)
	if err != nil {
		return nil, Span{}, tdcErrorf("Full", err)
	}

	return z, span, nil
}

// Valid returns only the lags of the full convolution computed from the
// complete overlap of x and y: max(X,Y)−min(X,Y)+1 samples.
// The result shares storage with the full output.
func Valid[E Number](x, y []E) ([]E, error) {
	z, span, err := Full(x, y)
	if err != nil {
		return nil, tdcErrorf("Valid", err)
	}

	return z[span.From:span.To], nil
}

// Direct is the reference definition of the full convolution:
// z[i+j] += x[i]·y[j] over every pair (i, j), with products taken in ZE.
// It applies the same argument checks as Convolve and serves as the oracle
// the incremental kernel is verified against.
//
// Complexity: Θ(len(x)·len(y)) time, O(1) extra memory.
func Direct[XE, YE, ZE Number](x []XE, y []YE, z []ZE) error {
	if err := checkLengths(len(x), len(y), len(z)); err != nil {
		return tdcErrorf("Direct", err)
	}
	var zero ZE
	for i := range z {
		z[i] = zero
	}
	for i := range x {
		for j := range y {
			z[i+j] += ZE(y[j]) * ZE(x[i])
		}
	}

	return nil
}
