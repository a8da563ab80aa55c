package greedy

import (
	"iter"

	"github.com/hupe1980/setcover/internal/bitset"
	"github.com/hupe1980/setcover/internal/dense"
)

// BitScorer scores candidates with dense bit vectors: the staged intersection
// is computed by a fused copy+AND+popcount into a scratch vector.
type BitScorer struct {
	sets      []*bitset.Vector
	uncovered *bitset.Vector
	scratch   *bitset.Vector
	best      *bitset.Vector
}

// NewBitScorer creates a BitScorer over pre-encoded vectors of length universe.
func NewBitScorer(universe int, sets []*bitset.Vector) *BitScorer {
	return &BitScorer{
		sets:      sets,
		uncovered: bitset.NewFull(universe),
		scratch:   bitset.New(universe),
		best:      bitset.New(universe),
	}
}

// EncodeBits maps the elements of sets to dense ids and encodes every set as
// a bit vector. Ids are assigned in first-seen order over sets.
func EncodeBits[T comparable](sets [][]T) (*dense.Index[T], []*bitset.Vector) {
	idx, ids := indexSets(sets)
	n := idx.Len()
	vectors := make([]*bitset.Vector, len(ids))
	for i, members := range ids {
		vectors[i] = bitset.FromIDs(n, members...)
	}
	return idx, vectors
}

// Candidates implements Scorer.
func (s *BitScorer) Candidates() int { return len(s.sets) }

// Uncovered implements Scorer.
func (s *BitScorer) Uncovered() int { return s.uncovered.Count() }

// UncoveredIDs returns the dense ids still uncovered, in ascending order.
func (s *BitScorer) UncoveredIDs() []uint32 {
	var ids []uint32
	s.uncovered.ForEach(func(id uint32) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Score implements Scorer.
func (s *BitScorer) Score(i int) int {
	return s.scratch.AssignAnd(s.sets[i], s.uncovered)
}

// Keep implements Scorer. Scratch and best swap buffers: the next Score
// overwrites the previous best, which is no longer needed.
func (s *BitScorer) Keep() {
	s.scratch, s.best = s.best, s.scratch
}

// Commit implements Scorer.
func (s *BitScorer) Commit() {
	s.uncovered.AndNot(s.best)
}

// indexSets builds the dense mapping over sets and translates each set to ids.
func indexSets[T comparable](sets [][]T) (*dense.Index[T], [][]uint32) {
	idx := dense.Build(elements(sets))
	ids := make([][]uint32, len(sets))
	for i, set := range sets {
		members := make([]uint32, len(set))
		for j, e := range set {
			members[j], _ = idx.ID(e)
		}
		ids[i] = members
	}
	return idx, ids
}

// elements yields every element of sets in set order, duplicates included.
func elements[T any](sets [][]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, set := range sets {
			for _, e := range set {
				if !yield(e) {
					return
				}
			}
		}
	}
}
