// Package ecc transports byte payloads as bit sequences that survive flipped bits.
//
// With the default Golay option every 12 payload bits become a 24-bit
// codeword, and up to 3 flipped bits per codeword are corrected on Decode.
package ecc

import (
	"fmt"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/convbit"
)

var (
	ErrInvalidLength = fmt.Errorf("%w: encoded length mismatch", convbit.ErrInvalidInput)
)

// Codec encodes and decodes payloads. It is safe for concurrent use.
type Codec struct {
	cf codecFactory
}

// New returns a Codec.
// By default, it uses the Golay code with shuffle error correction algorithm.
func New(opts ...Option) *Codec {
	if len(opts) == 0 {
		opts = append(opts, WithGolay(DefaultShuffleSeed))
	}
	var cf codecFactory
	for _, opt := range opts {
		opt(&cf)
	}
	return &Codec{cf: cf}
}

// Encode returns the encoded bits of data. Payload bits are taken
// most significant bit first.
func (c *Codec) Encode(data []byte) []bool {
	size := len(data) * 8
	if size == 0 {
		return []bool{}
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range data {
		for _, bit := range convbit.ByteToBools(b) {
			w.WriteBool(bit)
		}
	}
	encoded, n := c.cf.f.encode(w.Data(), size)
	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, n)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}

// Decode recovers a payload of size bytes from bits.
// len(bits) must equal EncodedLen(size).
func (c *Codec) Decode(bits []bool, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidLength, size)
	}
	if exp := c.EncodedLen(size); len(bits) != exp {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidLength, len(bits), exp)
	}
	payload := c.cf.f.decode(bits, size*8)
	return convbit.PackBools(payload), nil
}

// EncodedLen returns the number of encoded bits for a payload of size bytes.
func (c *Codec) EncodedLen(size int) int {
	return c.cf.f.encodedLen(size * 8)
}
