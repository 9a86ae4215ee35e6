package tdc

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every public operation returns one of these wrapped
// with its own call-site tag; match them with errors.Is.
var (
	// ErrEmptyInput indicates that one or both input sequences are empty.
	// Convolving with an empty sequence is rejected, not defined as zero.
	ErrEmptyInput = errors.New("tdc: input sequence has zero length")

	// ErrUnreachableEnd indicates that an end cursor cannot be reached from
	// its begin cursor by forward steps (a negative computed length).
	ErrUnreachableEnd = errors.New("tdc: end position unreachable from begin position")

	// ErrLengthMismatch indicates that the output length is not X+Y−1.
	ErrLengthMismatch = errors.New("tdc: output range has wrong length")
)

// tdcErrorf tags err with the operation that detected it.
func tdcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkLengths validates the three sequence lengths in a fixed order:
// empty input, unreachable end, output length.
func checkLengths(X, Y, Z int) error {
	if X == 0 || Y == 0 {
		return ErrEmptyInput
	}
	if X < 0 || Y < 0 || Z < 0 {
		return ErrUnreachableEnd
	}
	if Z != X+Y-1 {
		return ErrLengthMismatch
	}

	return nil
}
