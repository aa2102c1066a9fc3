// Package number pairs a uint32 with its grouped binary representation.
//
// The binary form is left-padded with zeros to 8, 16, 24 or 32 digits and
// split into groups of 4 digits by '_', counting from the least significant
// digit:
//
//	10    -> 0000_1010
//	48879 -> 1011_1110_1110_1111
package number

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Separator is inserted between digit groups.
	Separator = '_'
	// GroupSize is the number of digits in a group.
	GroupSize = 4
)

// Number holds a decimal value and its binary string.
// Binary is derived from Decimal once in New.
type Number struct {
	Decimal uint32
	Binary  string
}

func New(decimal uint32) Number {
	return Number{
		Decimal: decimal,
		Binary:  Format(decimal),
	}
}

func (n Number) String() string {
	return fmt.Sprintf("decimal: %d, binary: %s", n.Decimal, n.Binary)
}

// Format returns v as zero-padded, grouped binary digits.
func Format(v uint32) string {
	digits := strconv.FormatUint(uint64(v), 2)
	if w := Width(v); len(digits) < w {
		digits = strings.Repeat("0", w-len(digits)) + digits
	}
	return Group(digits)
}

// Width returns the padded digit count for v: 8, 16, 24 or 32.
func Width(v uint32) int {
	n := len(strconv.FormatUint(uint64(v), 2))
	switch {
	case n <= 8:
		return 8
	case n <= 16:
		return 16
	case n <= 24:
		return 24
	default:
		return 32
	}
}

// Group inserts Separator every GroupSize digits from the right of digits.
// It does not pad.
func Group(digits string) string {
	if len(digits) <= GroupSize {
		return digits
	}
	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/GroupSize)
	head := len(digits) % GroupSize
	if head == 0 {
		head = GroupSize
	}
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += GroupSize {
		sb.WriteByte(Separator)
		sb.WriteString(digits[i : i+GroupSize])
	}
	return sb.String()
}
