package convbit

import "github.com/yyyoichi/convbit/internal/bitconv"

// PackBools packs bits into bytes, most significant bit first.
// A trailing partial byte is padded with zero bits.
func PackBools(bits []bool) []byte {
	return bitconv.BoolsToBytes(bits)
}

// UnpackBools expands b into len(b)*8 bools.
func UnpackBools(b []byte) []bool {
	return bitconv.BytesToBools(b)
}

// PackBits converts each octet to its byte value.
func PackBits(octets []Bits) []byte {
	out := make([]byte, len(octets))
	for i, o := range octets {
		out[i] = BitsToByte(o)
	}
	return out
}

// UnpackBits converts each byte to its octet.
func UnpackBits(b []byte) []Bits {
	out := make([]Bits, len(b))
	for i, v := range b {
		out[i] = ByteToBits(v)
	}
	return out
}
