// Package convbit converts between boolean octets, 0/1 bit octets and bytes.
//
// An octet is always eight elements long and most significant bit first:
//
//	Bits{0, 1, 1, 0, 1, 0, 0, 1} <-> 105
package convbit

import "fmt"

type (
	// Bools is one byte as eight booleans, most significant bit first.
	Bools [8]bool
	// Bits is one byte as eight 0/1 values, most significant bit first.
	// Index 0 holds bit 7 of the byte.
	Bits [8]uint8
)

// BoolsToBits converts true to 1 and false to 0, keeping the order.
func BoolsToBits(in Bools) Bits {
	var out Bits
	for i, b := range in {
		if b {
			out[i] = 1
		}
	}
	return out
}

// BitsToBools reports each element as true only when it equals 1.
// Any other value, including values greater than 1, becomes false.
func BitsToBools(in Bits) Bools {
	var out Bools
	for i, b := range in {
		out[i] = b == 1
	}
	return out
}

// BitsToByte reads bits as a big-endian binary number.
// Only the low bit of each element is used.
func BitsToByte(bits Bits) uint8 {
	var v uint8
	for _, b := range bits {
		v <<= 1
		v |= b & 1
	}
	return v
}

// ByteToBits splits n into its eight bits, most significant bit first.
func ByteToBits(n uint8) Bits {
	var out Bits
	for i := range out {
		out[i] = (n >> uint(7-i)) & 1
	}
	return out
}

// BoolsToByte is BitsToByte(BoolsToBits(in)).
func BoolsToByte(in Bools) uint8 {
	return BitsToByte(BoolsToBits(in))
}

// ByteToBools is BitsToBools(ByteToBits(n)).
func ByteToBools(n uint8) Bools {
	return BitsToBools(ByteToBits(n))
}

func (b Bits) Byte() uint8 { return BitsToByte(b) }

func (b Bools) Byte() uint8 { return BoolsToByte(b) }

// String renders the octet as a Go binary literal, e.g. "0b01101001".
// Elements are masked to their low bit the same way BitsToByte does.
func (b Bits) String() string {
	return fmt.Sprintf("0b%08b", BitsToByte(b))
}

// Validate returns an error wrapping ErrInvalidBit for the first
// element outside {0,1}.
func (b Bits) Validate() error {
	for i, v := range b {
		if v > 1 {
			return fmt.Errorf("%w: bits[%d] = %d", ErrInvalidBit, i, v)
		}
	}
	return nil
}
