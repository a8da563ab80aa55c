// Package greedy implements the greedy set-cover loop once, parameterized over
// a Scorer strategy that knows how to measure and remove intersections.
//
// Strategies:
//   - HashScorer: exact intersections over hash sets of the raw elements
//   - BitScorer: dense ids + fixed-length bit vectors (AND + popcount)
//   - RoaringScorer: dense ids + roaring bitmaps (AndCardinality)
//
// All strategies pick the first candidate with the strictly largest gain in
// candidate order, so they return identical orders for identical input.
package greedy
