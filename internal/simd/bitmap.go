package simd

import "math/bits"

// ==============================================================================
// Bit-vector word operations
// ==============================================================================
//
// These operations back bitset.Vector. They operate on []uint64 representing
// bit arrays. All binary kernels require len(src) >= len(dst).

// Kernel function pointers. Counting kernels are swapped by useISA();
// logic kernels have a single implementation.
var (
	kernelAndNotWords      = andNotWordsGeneric
	kernelPopcountWords    = popcountWordsGeneric
	kernelAndPopcountWords = andPopcountWordsGeneric
)

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// AndPopcountWords performs dst[i] = a[i] & b[i] and returns the number of
// set bits written. It fuses copy, AND and popcount into a single pass.
// dst may alias a.
func AndPopcountWords(dst, a, b []uint64) int {
	return kernelAndPopcountWords(dst, a, b)
}

// FillWords sets every word of dst to v.
func FillWords(dst []uint64, v uint64) {
	for i := range dst {
		dst[i] = v
	}
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func andNotWordsGeneric(dst, src []uint64) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= ^src[i]
		dst[i+1] &= ^src[i+1]
		dst[i+2] &= ^src[i+2]
		dst[i+3] &= ^src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= ^src[i]
	}
}

// popcountWordsGeneric relies on the math/bits intrinsic (POPCNT / CNT).
func popcountWordsGeneric(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

func andPopcountWordsGeneric(dst, a, b []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		w0 := a[i] & b[i]
		w1 := a[i+1] & b[i+1]
		w2 := a[i+2] & b[i+2]
		w3 := a[i+3] & b[i+3]
		dst[i], dst[i+1], dst[i+2], dst[i+3] = w0, w1, w2, w3
		count += bits.OnesCount64(w0) + bits.OnesCount64(w1) + bits.OnesCount64(w2) + bits.OnesCount64(w3)
	}
	for ; i < len(dst); i++ {
		w := a[i] & b[i]
		dst[i] = w
		count += bits.OnesCount64(w)
	}
	return count
}

// ==============================================================================
// SWAR fallback (no hardware popcount)
// ==============================================================================

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

//go:nosplit
func swar64(x uint64) int {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

func popcountWordsSWAR(words []uint64) int {
	count := 0
	for _, w := range words {
		if w != 0 {
			count += swar64(w)
		}
	}
	return count
}

func andPopcountWordsSWAR(dst, a, b []uint64) int {
	count := 0
	for i := range dst {
		w := a[i] & b[i]
		dst[i] = w
		if w != 0 {
			count += swar64(w)
		}
	}
	return count
}
