package bitset

import (
	"math/bits"

	"github.com/hupe1980/setcover/internal/simd"
)

// Vector is a fixed-length bit vector. It is not safe for concurrent mutation.
//
// Binary operations require both operands to have the same length; mixing
// lengths is a programming error and panics with an index out of range.
type Vector struct {
	words []uint64
	n     int
}

// New creates a zeroed vector of n bits.
func New(n int) *Vector {
	return &Vector{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

// NewFull creates a vector of n bits with every bit set.
func NewFull(n int) *Vector {
	v := New(n)
	v.SetAll()
	return v
}

// FromIDs creates a vector of n bits with the given ids set.
// Ids outside [0, n) are ignored.
func FromIDs(n int, ids ...uint32) *Vector {
	v := New(n)
	for _, id := range ids {
		v.Set(id)
	}
	return v
}

func wordsFor(n int) int {
	return (n + 63) / 64
}

// Set sets the bit at the given index.
func (v *Vector) Set(i uint32) {
	if int(i) >= v.n {
		return
	}
	v.words[i>>6] |= uint64(1) << (i & 63)
}

// SetAll sets every bit of the vector.
func (v *Vector) SetAll() {
	simd.FillWords(v.words, ^uint64(0))
	v.clearTail()
}

// clearTail zeroes the unused high bits of the last word.
func (v *Vector) clearTail() {
	if rem := v.n & 63; rem != 0 {
		v.words[len(v.words)-1] &= (uint64(1) << rem) - 1
	}
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	return simd.PopcountWords(v.words)
}

// AndNot performs v &= ^other.
func (v *Vector) AndNot(other *Vector) {
	simd.AndNotWords(v.words, other.words)
}

// AssignAnd overwrites v with a & b and returns the popcount of the result.
// This is the copy + AND + count step of candidate scoring in one pass.
func (v *Vector) AssignAnd(a, b *Vector) int {
	return simd.AndPopcountWords(v.words, a.words, b.words)
}

// ForEach calls fn for every set bit in ascending order until fn returns false.
func (v *Vector) ForEach(fn func(id uint32) bool) {
	for wordIdx, w := range v.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			if !fn(uint32(wordIdx<<6 + bit)) {
				return
			}
			w &= w - 1 // Clear lowest bit
		}
	}
}
