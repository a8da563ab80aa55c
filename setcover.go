package setcover

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"time"

	"github.com/hupe1980/setcover/internal/dense"
	"github.com/hupe1980/setcover/internal/greedy"
)

// Set is a named set of elements. Every element must equal itself.
type Set[K comparable, T comparable] struct {
	ID       K
	Elements []T
}

// Result describes a computed cover.
type Result[K comparable] struct {
	// Cover holds the chosen set IDs in selection order.
	Cover []K
	// Rounds is the number of greedy rounds that selected a set.
	Rounds int
	// UniverseSize is the number of distinct elements across all sets.
	UniverseSize int
	// Mode is the selector that produced the cover.
	Mode Mode
	// Elapsed is the wall time spent encoding and selecting.
	Elapsed time.Duration
}

// Cover computes a greedy set cover of sets using the given mode.
//
// Go map iteration order is randomized, so when several sets tie for the
// largest gain the chosen IDs may differ between calls. The cover always
// reaches the full universe.
func Cover[K comparable, T comparable](sets map[K][]T, mode Mode, opts ...Option) ([]K, error) {
	if !mode.Valid() {
		return nil, &ErrInvalidMode{Mode: mode}
	}

	ordered := make([]Set[K, T], 0, len(sets))
	for id, elements := range sets {
		ordered = append(ordered, Set[K, T]{ID: id, Elements: elements})
	}

	return CoverSets(ordered, mode, opts...)
}

// CoverSets computes a greedy set cover of an ordered collection. Ties are
// broken in favor of the set appearing first, so the result is deterministic
// and identical across modes.
func CoverSets[K comparable, T comparable](sets []Set[K, T], mode Mode, opts ...Option) ([]K, error) {
	res, err := Solve(sets, mode, opts...)
	if err != nil {
		return nil, err
	}
	return res.Cover, nil
}

// Naive computes a cover with ModeNaive.
func Naive[K comparable, T comparable](sets map[K][]T, opts ...Option) ([]K, error) {
	return Cover(sets, ModeNaive, opts...)
}

// Bitset computes a cover with ModeBitset.
func Bitset[K comparable, T comparable](sets map[K][]T, opts ...Option) ([]K, error) {
	return Cover(sets, ModeBitset, opts...)
}

// SortedSets returns the sets of m ordered by ID.
func SortedSets[K cmp.Ordered, T comparable](m map[K][]T) []Set[K, T] {
	ids := slices.Sorted(maps.Keys(m))
	sets := make([]Set[K, T], len(ids))
	for i, id := range ids {
		sets[i] = Set[K, T]{ID: id, Elements: m[id]}
	}
	return sets
}

// Solve computes a greedy set cover of an ordered collection and reports
// statistics about the run.
func Solve[K comparable, T comparable](sets []Set[K, T], mode Mode, opts ...Option) (*Result[K], error) {
	if !mode.Valid() {
		return nil, &ErrInvalidMode{Mode: mode}
	}

	o := applyOptions(opts)
	if mode == ModeBitset && o.bitmap != DenseBitmap && o.bitmap != RoaringBitmap {
		return nil, &ErrInvalidBitmap{Bitmap: o.bitmap}
	}

	seen := make(map[K]struct{}, len(sets))
	members := make([][]T, len(sets))
	for i, s := range sets {
		if _, dup := seen[s.ID]; dup {
			return nil, &ErrDuplicateSetID{ID: s.ID}
		}
		seen[s.ID] = struct{}{}
		for _, e := range s.Elements {
			if e != e { // NaN
				return nil, &ErrInvalidElement{ID: s.ID, Element: e}
			}
		}
		members[i] = s.Elements
	}

	ctx := context.Background()
	logger := o.logger.WithMode(mode)
	start := time.Now()

	scorer, leftover := newScorer(ctx, logger, mode, members, o.bitmap)
	universe := scorer.Uncovered()

	gr, err := greedy.Run(scorer)
	elapsed := time.Since(start)
	err = translateError(mode, err, leftover)

	logger.LogCover(ctx, len(sets), len(gr.Order), gr.Rounds, elapsed, err)
	o.metricsCollector.RecordCover(mode, len(sets), len(gr.Order), gr.Rounds, elapsed, err)

	if err != nil {
		return nil, err
	}

	cover := make([]K, len(gr.Order))
	for i, idx := range gr.Order {
		cover[i] = sets[idx].ID
	}

	return &Result[K]{
		Cover:        cover,
		Rounds:       gr.Rounds,
		UniverseSize: universe,
		Mode:         mode,
		Elapsed:      elapsed,
	}, nil
}

// newScorer builds the scorer for mode together with a function listing the
// elements it leaves uncovered.
func newScorer[T comparable](ctx context.Context, logger *Logger, mode Mode, members [][]T, bitmap Bitmap) (greedy.Scorer, func() []T) {
	if mode == ModeNaive {
		s := greedy.NewHashScorer(members)
		return s, s.Leftover
	}

	start := time.Now()
	switch bitmap {
	case RoaringBitmap:
		idx, bitmaps := greedy.EncodeRoaring(members)
		logger.LogEncode(ctx, bitmap, len(members), idx.Len(), time.Since(start))
		s := greedy.NewRoaringScorer(idx.Len(), bitmaps)
		return s, func() []T { return lookup(idx, s.UncoveredIDs()) }
	default:
		idx, vectors := greedy.EncodeBits(members)
		logger.LogEncode(ctx, bitmap, len(members), idx.Len(), time.Since(start))
		s := greedy.NewBitScorer(idx.Len(), vectors)
		return s, func() []T { return lookup(idx, s.UncoveredIDs()) }
	}
}

func lookup[T comparable](idx *dense.Index[T], ids []uint32) []T {
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = idx.Element(id)
	}
	return out
}
