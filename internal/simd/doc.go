// Package simd provides word-level kernels for fixed-length bit vectors.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: NEON (CNT)
//
// Runtime CPU feature detection selects the kernel set. Set SETCOVER_SIMD=generic
// to force the portable SWAR fallback.
//
// # Operations
//
//   - Logic: AndNotWords
//   - Counting: PopcountWords, AndPopcountWords
//   - Fill: FillWords
package simd
