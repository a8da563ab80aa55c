package greedy

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/setcover/internal/dense"
)

// RoaringScorer scores candidates with compressed roaring bitmaps. Scoring
// uses AndCardinality and never materializes the intersection; only a new
// best is materialized.
type RoaringScorer struct {
	sets      []*roaring.Bitmap
	uncovered *roaring.Bitmap
	staged    int
	best      *roaring.Bitmap
	remaining int
}

// NewRoaringScorer creates a RoaringScorer over pre-encoded bitmaps whose ids
// lie in [0, universe).
func NewRoaringScorer(universe int, sets []*roaring.Bitmap) *RoaringScorer {
	uncovered := roaring.New()
	uncovered.AddRange(0, uint64(universe))
	return &RoaringScorer{
		sets:      sets,
		uncovered: uncovered,
		staged:    -1,
		remaining: universe,
	}
}

// EncodeRoaring maps the elements of sets to dense ids and encodes every set
// as a run-optimized roaring bitmap.
func EncodeRoaring[T comparable](sets [][]T) (*dense.Index[T], []*roaring.Bitmap) {
	idx, ids := indexSets(sets)
	bitmaps := make([]*roaring.Bitmap, len(ids))
	for i, members := range ids {
		rb := roaring.BitmapOf(members...)
		rb.RunOptimize()
		bitmaps[i] = rb
	}
	return idx, bitmaps
}

// Candidates implements Scorer.
func (s *RoaringScorer) Candidates() int { return len(s.sets) }

// Uncovered implements Scorer.
func (s *RoaringScorer) Uncovered() int { return s.remaining }

// UncoveredIDs returns the dense ids still uncovered, in ascending order.
func (s *RoaringScorer) UncoveredIDs() []uint32 {
	return s.uncovered.ToArray()
}

// Score implements Scorer.
func (s *RoaringScorer) Score(i int) int {
	s.staged = i
	return int(s.sets[i].AndCardinality(s.uncovered))
}

// Keep implements Scorer.
func (s *RoaringScorer) Keep() {
	s.best = roaring.And(s.sets[s.staged], s.uncovered)
}

// Commit implements Scorer.
func (s *RoaringScorer) Commit() {
	s.uncovered.AndNot(s.best)
	s.remaining -= int(s.best.GetCardinality())
	s.best = nil
}
