package greedy

import "maps"

// HashScorer scores candidates by materializing exact intersections over the
// raw elements.
type HashScorer[T comparable] struct {
	sets      [][]T
	uncovered map[T]struct{}
	scratch   map[T]struct{}
	best      map[T]struct{}
}

// NewHashScorer creates a HashScorer whose uncovered elements start as the
// union of sets.
func NewHashScorer[T comparable](sets [][]T) *HashScorer[T] {
	uncovered := make(map[T]struct{})
	for _, set := range sets {
		for _, e := range set {
			uncovered[e] = struct{}{}
		}
	}
	return &HashScorer[T]{
		sets:      sets,
		uncovered: uncovered,
		scratch:   make(map[T]struct{}),
	}
}

// Candidates implements Scorer.
func (s *HashScorer[T]) Candidates() int { return len(s.sets) }

// Uncovered implements Scorer.
func (s *HashScorer[T]) Uncovered() int { return len(s.uncovered) }

// Score implements Scorer. Duplicate elements within a set count once.
func (s *HashScorer[T]) Score(i int) int {
	clear(s.scratch)
	for _, e := range s.sets[i] {
		if _, ok := s.uncovered[e]; ok {
			s.scratch[e] = struct{}{}
		}
	}
	return len(s.scratch)
}

// Keep implements Scorer. The scratch map is reused, so the best
// intersection is cloned.
func (s *HashScorer[T]) Keep() {
	s.best = maps.Clone(s.scratch)
}

// Leftover returns the uncovered elements in first-seen order over the sets.
func (s *HashScorer[T]) Leftover() []T {
	left := make([]T, 0, len(s.uncovered))
	seen := make(map[T]struct{}, len(s.uncovered))
	for _, set := range s.sets {
		for _, e := range set {
			if _, ok := s.uncovered[e]; !ok {
				continue
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			left = append(left, e)
		}
	}
	return left
}

// Commit implements Scorer.
func (s *HashScorer[T]) Commit() {
	for e := range s.best {
		delete(s.uncovered, e)
	}
	s.best = nil
}
