package bitplane

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/convbit"
	"gonum.org/v1/gonum/mat"
)

func TestTranspose(t *testing.T) {
	test := []struct {
		name string
		in   [8]uint8
		exp  [8]uint8
	}{
		{"zero", [8]uint8{}, [8]uint8{}},
		{"diagonal",
			[8]uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01},
			[8]uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}},
		{"first_row",
			[8]uint8{0xFF, 0, 0, 0, 0, 0, 0, 0},
			[8]uint8{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
		{"last_column",
			[8]uint8{1, 1, 1, 1, 1, 1, 1, 1},
			[8]uint8{0, 0, 0, 0, 0, 0, 0, 0xFF}},
		{"low_bit_of_105",
			[8]uint8{105, 0, 0, 0, 0, 0, 0, 0},
			[8]uint8{0, 0x80, 0x80, 0, 0x80, 0, 0, 0x80}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Transpose(FromBytes(tt.in)).Bytes())
		})
	}
}

func TestTransposeTwice(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	for range 100 {
		var in [8]uint8
		for i := range in {
			in[i] = uint8(rd.Intn(256))
		}
		b := FromBytes(in)
		require.Equal(t, b, Transpose(Transpose(b)))
		require.Equal(t, in, b.Bytes())
	}
}

func TestMatrix(t *testing.T) {
	b := FromBytes([8]uint8{105})
	m := Matrix(b)
	r, c := m.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 8, c)
	assert.Equal(t, []float64{0, 1, 1, 0, 1, 0, 0, 1}, mat.Row(nil, 0, m))
	assert.Equal(t, 4.0, mat.Sum(m))
}

func TestFromMatrix(t *testing.T) {
	_, err := FromMatrix(mat.NewDense(2, 8, nil))
	assert.ErrorIs(t, err, ErrInvalidShape)

	m := mat.NewDense(8, 8, nil)
	m.Set(3, 4, 2)
	_, err = FromMatrix(m)
	assert.ErrorIs(t, err, convbit.ErrInvalidBit)
	assert.ErrorIs(t, err, convbit.ErrInvalidInput)

	m.Set(3, 4, 1)
	b, err := FromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b00001000), b[3].Byte())
}
