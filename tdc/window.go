package tdc

// OutputLen returns the full-convolution output length x+y−1, or 0 if
// either length is below 1.
func OutputLen(x, y int) int {
	if x < 1 || y < 1 {
		return 0
	}

	return x + y - 1
}

// WindowSize returns the number of multiply-add terms that contribute to
// output lag t of a convolution of lengths x and y:
//
//	min(t+1, x, y, x+y−1−t)
//
// Lags outside [0, x+y−1) have no terms and yield 0.
func WindowSize(t, x, y int) int {
	z := OutputLen(x, y)
	if t < 0 || t >= z {
		return 0
	}

	return min(t+1, x, y, z-t)
}

// ValidSpan returns the output lags [min(x,y)−1, max(x,y)) whose window
// holds all min(x,y) terms. The zero Span is returned if either length is
// below 1.
func ValidSpan(x, y int) Span {
	if x < 1 || y < 1 {
		return Span{}
	}

	return Span{From: min(x, y) - 1, To: max(x, y)}
}
