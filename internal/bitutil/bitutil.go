// Package bitutil provides the integer bit-position queries used to build
// direction numbers and to pick the recurrence column for each step.
package bitutil

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidArgument is returned when a bit-position query receives a
// negative integer.
var ErrInvalidArgument = errors.New("sobol: invalid argument")

// HighBitPos returns the 1-based position of the most significant set bit
// of i, or 0 when i is zero.
func HighBitPos(i int) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: high bit of negative value %d", ErrInvalidArgument, i)
	}
	return bits.Len(uint(i)), nil
}

// LowBitPos returns the 1-based position of the lowest zero bit of i.
// This is the Gray-code column selector: successive Sobol' points differ by
// the direction number at LowBitPos(index)-1.
//
// LowBitPos(0) is 1. Callers special-case a zero index anyway.
func LowBitPos(i int) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: low bit of negative value %d", ErrInvalidArgument, i)
	}
	return bits.TrailingZeros(^uint(i)) + 1, nil
}
