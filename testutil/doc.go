// Package testutil provides testing utilities for setcover.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random set collections and
// checking cover results against a reference.
//
// # Random Sets
//
//	rng := testutil.NewRNG(seed)
//	sets := rng.IntSets(100, 1000, 20) // 100 sets, universe [0,1000), 20 draws each
//
// # Coverage
//
//	missing := testutil.Missing(sets, cover)
package testutil
