package huffzip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// BitSeq represents a growable sequence of bits.  Bits are packed MSB-first
// within each byte: bit 0 of the sequence is the most significant bit of the
// first byte.  The zero value is an empty sequence ready for use.
type BitSeq struct {
	data []byte
	size int
}

// MakeBitSeq is a convenience function that constructs a BitSeq from a
// sequence of bits given as 0 and 1 values.
func MakeBitSeq(bits ...uint) BitSeq {
	var seq BitSeq
	for _, bit := range bits {
		seq.AppendBit(bit)
	}
	return seq
}

// BitSeqFromBytes constructs a BitSeq holding the first size bits of data,
// interpreted MSB-first.  The data is copied; later growth of the BitSeq
// does not affect the original slice.
func BitSeqFromBytes(data []byte, size int) BitSeq {
	assert.Assertf(size >= 0, "size %d < 0", size)
	assert.Assertf(size <= 8*len(data), "size %d > 8*len(data) %d", size, 8*len(data))
	numBytes := (size + 7) / 8
	dupe := make([]byte, numBytes)
	copy(dupe, data[:numBytes])
	seq := BitSeq{data: dupe, size: size}
	seq.clearPadding()
	return seq
}

// Len returns the number of bits in the sequence.
func (seq BitSeq) Len() int {
	return seq.size
}

// Bit returns the bit at index i, which must be in the range [0, Len()).
func (seq BitSeq) Bit(i int) uint {
	assert.Assertf(i >= 0, "bit index %d < 0", i)
	assert.Assertf(i < seq.size, "bit index %d >= Len() %d", i, seq.size)
	return uint(seq.data[i>>3]>>(7-uint(i&7))) & 1
}

// AppendBit appends a single bit, which must be 0 or 1.
func (seq *BitSeq) AppendBit(bit uint) {
	assert.Assertf(bit <= 1, "bit value %d is not 0 or 1", bit)
	if seq.size&7 == 0 {
		seq.data = append(seq.data, 0)
	}
	if bit != 0 {
		seq.data[seq.size>>3] |= 1 << (7 - uint(seq.size&7))
	}
	seq.size++
}

// Append appends every bit of that to the end of this sequence, preserving
// order.
func (seq *BitSeq) Append(that BitSeq) {
	for i := 0; i < that.size; i++ {
		seq.AppendBit(that.Bit(i))
	}
}

// Bytes returns a copy of the packed bits.  The final byte, if any, is
// zero-padded in its low-order bits when Len() is not a multiple of 8.
func (seq BitSeq) Bytes() []byte {
	dupe := make([]byte, len(seq.data))
	copy(dupe, seq.data)
	return dupe
}

// Clone returns a deep copy of this sequence.
func (seq BitSeq) Clone() BitSeq {
	return BitSeq{data: seq.Bytes(), size: seq.size}
}

// Equal reports whether both sequences hold the same bits in the same order.
func (seq BitSeq) Equal(that BitSeq) bool {
	if seq.size != that.size {
		return false
	}
	for i := 0; i < seq.size; i++ {
		if seq.Bit(i) != that.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this BitSeq.
func (seq BitSeq) String() string {
	if seq.size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(seq.size)
	for i := 0; i < seq.size; i++ {
		buf.WriteByte('0' + byte(seq.Bit(i)))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = BitSeq{}

// clearPadding zeroes any bits of the final byte beyond Len(), so that
// sequences with equal contents have equal packed forms.
func (seq *BitSeq) clearPadding() {
	if tail := seq.size & 7; tail != 0 {
		seq.data[len(seq.data)-1] &= ^byte(0) << (8 - uint(tail))
	}
}
