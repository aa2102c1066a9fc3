package ecc

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option is a function for selecting the error correction algorithm.
	Option      func(*codecFactory)
	codecFactory struct {
		f factory
	}
	factory interface {
		encode(data []uint64, size int) ([]uint64, int)
		decode(data []bool, size int) []bool
		encodedLen(size int) int
	}
)

// WithoutECC is an option that does not use error correction codes.
// Payload bits are transported as-is.
func WithoutECC() Option {
	return func(cf *codecFactory) {
		cf.f = withoutecc{}
	}
}

// WithGolay is an option that uses the Golay(24,12) code for error correction.
// seed is the seed value for shuffling the encoded bits.
// Shuffling spreads a burst of adjacent flipped bits over many codewords,
// each of which corrects up to 3 errors.
func WithGolay(seed int64) Option {
	return func(cf *codecFactory) {
		cf.f = shuffledgolay(seed)
	}
}
