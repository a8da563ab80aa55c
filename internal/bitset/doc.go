// Package bitset provides a fixed-length bit vector over a dense id range.
//
// Architecture:
//   - Contiguous []uint64 words, bit i lives in word i>>6
//   - Tail bits beyond the vector length are always zero, so counts never need masking
//   - Word-level logic and popcount delegate to internal/simd kernels
//
// Used internally for:
//   - Set membership encodings in the greedy cover engine
//   - The uncovered-elements vector and the per-candidate scratch buffer
package bitset
