// Package setcover computes approximate minimum set covers with the greedy heuristic.
//
// Given named sets drawn from a shared universe, the greedy heuristic repeatedly
// picks the set covering the most still-uncovered elements until the union of
// the picked sets equals the universe.
//
// # Quick Start
//
//	sets := map[string][]int{
//	    "A": {1, 2, 3},
//	    "B": {1, 2},
//	    "C": {2},
//	}
//	cover, err := setcover.Cover(sets, setcover.ModeBitset)
//	// cover == []string{"A"}
//
// # Modes
//
// Two functionally equivalent selectors are available:
//
//	// 1. NAIVE: exact hash-set intersections per candidate.
//	//    No preprocessing; cheap for small inputs or few rounds.
//	cover, _ := setcover.Cover(sets, setcover.ModeNaive)
//
//	// 2. BITSET: elements mapped to dense ids, sets encoded as bit vectors.
//	//    Scoring is AND + popcount; pays an encoding cost up front.
//	cover, _ := setcover.Cover(sets, setcover.ModeBitset)
//
//	// Sparse universes can use compressed roaring bitmaps instead.
//	cover, _ := setcover.Cover(sets, setcover.ModeBitset, setcover.WithBitmap(setcover.RoaringBitmap))
//
// # Tie-breaking
//
// Each round picks the first candidate with the strictly largest gain, in
// candidate order. Cover takes a Go map, whose iteration order is randomized,
// so covers may differ between runs when gains tie. Use CoverSets with an
// ordered collection (for example SortedSets) for reproducible output:
//
//	cover, _ := setcover.CoverSets(setcover.SortedSets(sets), setcover.ModeBitset)
//
// # Errors
//
// An unknown mode returns *ErrInvalidMode (errors.Is(err, ErrConfiguration)).
// Elements must equal themselves; a set holding a floating-point NaN is
// rejected with *ErrInvalidElement before any work is done.
// Failing to reach full coverage returns *ErrUncoverableInput
// (errors.Is(err, ErrUncoverable)) listing the elements left uncovered; this
// signals a broken internal invariant and does not happen for well-formed input.
package setcover
