// Package strbits encodes strings as MSB-first bit sequences.
package strbits

import (
	"github.com/yyyoichi/convbit"
	"github.com/yyyoichi/convbit/internal/bitconv"
)

// Encode returns one octet per byte of src.
func Encode(src string) []convbit.Bits {
	return convbit.UnpackBits([]byte(src))
}

// Decode joins octets back into a string.
func Decode(octets []convbit.Bits) string {
	return string(convbit.PackBits(octets))
}

// EncodeBools encodes the input string into a slice of booleans representing bits.
func EncodeBools(src string) []bool {
	return bitconv.BytesToBools([]byte(src))
}

// DecodeBools decodes the input slice of booleans back into the original string.
// A trailing partial byte is padded with zero bits.
func DecodeBools(bits []bool) string {
	return string(bitconv.BoolsToBytes(bits))
}
