package bitconv

import "github.com/yyyoichi/bitstream-go"

// BytesToBools expands every byte into 8 bools, most significant bit first.
func BytesToBools(b []byte) []bool {
	bits := make([]bool, len(b)*8)
	if len(b) == 0 {
		return bits
	}
	r := bitstream.NewBitReader(b, 0, 0)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}

// BoolsToBytes packs bits into bytes, most significant bit first.
// A trailing partial byte is padded with zero bits.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	if len(bits) == 0 {
		return out
	}
	w := bitstream.NewBitWriter[uint8](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	copy(out, w.Data())
	return out
}
