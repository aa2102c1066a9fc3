package convbit

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidLength = fmt.Errorf("%w: length must be 8", ErrInvalidInput)
	ErrInvalidBit    = fmt.Errorf("%w: bit must be 0 or 1", ErrInvalidInput)
)

// ParseBits copies s into a Bits value.
// It fails when s does not hold exactly 8 elements or when an element is
// neither 0 nor 1.
func ParseBits(s []uint8) (Bits, error) {
	var b Bits
	if len(s) != len(b) {
		return b, fmt.Errorf("%w: got %d", ErrInvalidLength, len(s))
	}
	copy(b[:], s)
	if err := b.Validate(); err != nil {
		return Bits{}, err
	}
	return b, nil
}

// ParseBools copies s into a Bools value. It fails unless len(s) is 8.
func ParseBools(s []bool) (Bools, error) {
	var b Bools
	if len(s) != len(b) {
		return b, fmt.Errorf("%w: got %d", ErrInvalidLength, len(s))
	}
	copy(b[:], s)
	return b, nil
}
