// Package bitarray provides utilities for operating on densely-packed arrays of
// booleans.
package bitarray

import (
	"fmt"
	"math/bits"
	"strings"
)

// A Dense is a bit array where every bit is explicitly represented.
type Dense struct {
	bits []byte
	len  int
}

const blockSize = 8

// NewDense returns a new Dense whose data is a copy of data, and whose length
// is bitLen. If bitLen is longer than data, then trailing zeros are added. If
// bitLen is negative, then it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * blockSize
	}
	b := make([]byte, blocksFor(bitLen))
	copy(b, data)
	d := Dense{
		bits: b,
		len:  bitLen,
	}
	d.trim(d.bits)
	return d
}

// Empty returns an empty, dense bit array.
func Empty() Dense {
	return Dense{}
}

// Parse converts a string of '0' and '1' characters into a Dense, with the
// leftmost character occupying bit position zero.
func Parse(s string) (Dense, error) {
	var d Dense
	for i, c := range s {
		switch c {
		case '0':
			d.AppendBit(false)
		case '1':
			d.AppendBit(true)
		default:
			return Empty(), fmt.Errorf("bit string may contain only '0' and '1', got %q at position %d", c, i)
		}
	}
	return d, nil
}

// Size returns the number of bits in d.
func (d Dense) Size() int {
	return d.len
}

// ByteSize returns the number of bytes necessary to represent d.
func (d Dense) ByteSize() int {
	return blocksFor(d.len)
}

// Data returns a copy of the bytes data underlying d.
func (d Dense) Data() []byte {
	data := make([]byte, blocksFor(d.len))
	copy(data, d.bits)
	d.trim(data)
	return data
}

// Get returns the bit at idx. Out-of-range reads return false.
func (d Dense) Get(idx int) bool {
	if idx < 0 || idx >= d.len {
		return false
	}
	block := d.bits[idx/blockSize]
	pos := idx % blockSize
	return 0 < block&(1<<pos)
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	pos := d.len % blockSize
	d.len += 1
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[len(d.bits)-1] |= 1 << pos
	}
}

// XOr computes a bitwise XOR operation between d and other. If one of the two
// is shorter than the other, then trailing 0s are implicitly added to make the
// sizes match.
func (d Dense) XOr(other Dense) Dense {
	short, long := other, d
	if d.len < other.len {
		short, long = d, other
	}
	r := Dense{
		bits: make([]byte, 0, blocksFor(long.len)),
		len:  long.len,
	}
	for i := range long.bits {
		var s byte
		if i < len(short.bits) {
			s = short.bits[i]
		}
		r.bits = append(r.bits, s^long.bits[i])
	}
	r.trim(r.bits)
	return r
}

// CountOnes returns the total number of bits set in d.
func (d Dense) CountOnes() int {
	var sum int
	for _, b := range d.Data() {
		sum += bits.OnesCount8(b)
	}
	return sum
}

// Equal reports whether d and other have the same length and bits.
func (d Dense) Equal(other Dense) bool {
	if d.len != other.len {
		return false
	}
	for i := 0; i < d.len; i++ {
		if d.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}

// String renders d as a string of '0' and '1' characters, bit position zero
// leftmost. It inverts Parse.
func (d Dense) String() string {
	var sb strings.Builder
	sb.Grow(d.len)
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// trim zeroes any bits of the final block beyond len, so that equal arrays
// have equal Data.
func (d Dense) trim(data []byte) {
	if d.len%blockSize == 0 || len(data) == 0 {
		return
	}
	overdraw := blockSize - d.len%blockSize
	last := len(data) - 1
	data[last] = data[last] << overdraw >> overdraw
}

func blocksFor(bits int) int {
	return (bits + blockSize - 1) / blockSize
}
