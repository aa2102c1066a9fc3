// Package bitplane treats eight octets as an 8x8 bit matrix.
//
// Row i is octet i and column j is bit position j, most significant bit
// first. Transposing the matrix turns the i-th bit of every octet into the
// i-th octet, which is the basic step of bit slicing.
package bitplane

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/convbit"
	"gonum.org/v1/gonum/mat"
)

const size = 8

var (
	ErrInvalidShape = errors.New("matrix must be 8x8")
)

type Block [size]convbit.Bits

func FromBytes(b [size]uint8) Block {
	var blk Block
	for i, v := range b {
		blk[i] = convbit.ByteToBits(v)
	}
	return blk
}

func (b Block) Bytes() [size]uint8 {
	var out [size]uint8
	for i, o := range b {
		out[i] = convbit.BitsToByte(o)
	}
	return out
}

// Matrix returns b as an 8x8 dense matrix of 0 and 1.
// Elements are masked to their low bit.
func Matrix(b Block) *mat.Dense {
	data := make([]float64, size*size)
	for i, o := range b {
		for j, v := range o {
			data[i*size+j] = float64(v & 1)
		}
	}
	return mat.NewDense(size, size, data)
}

// FromMatrix reads an 8x8 matrix whose entries are exactly 0 or 1.
func FromMatrix(m mat.Matrix) (Block, error) {
	var blk Block
	if r, c := m.Dims(); r != size || c != size {
		return blk, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, r, c)
	}
	for i := range size {
		for j := range size {
			switch v := m.At(i, j); v {
			case 0:
			case 1:
				blk[i][j] = 1
			default:
				return Block{}, fmt.Errorf("%w: at (%d, %d) = %v", convbit.ErrInvalidBit, i, j, v)
			}
		}
	}
	return blk, nil
}

// Transpose swaps rows and columns of b.
func Transpose(b Block) Block {
	// entries of Matrix are always 0 or 1
	t, _ := FromMatrix(Matrix(b).T())
	return t
}
