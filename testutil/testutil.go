package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// IntSets generates n sets keyed 0..n-1. Each set draws draws elements
// uniformly from [0, universe); repeated draws collapse.
func (r *RNG) IntSets(n, universe, draws int) map[int][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		seen := make(map[int]struct{}, draws)
		set := make([]int, 0, draws)
		for j := 0; j < draws; j++ {
			e := r.rand.Intn(universe)
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			set = append(set, e)
		}
		sets[i] = set
	}
	return sets
}

// StringSets is like IntSets with keys "s0".."sN-1" and elements "e0"...
func (r *RNG) StringSets(n, universe, draws int) map[string][]string {
	ints := r.IntSets(n, universe, draws)
	sets := make(map[string][]string, len(ints))
	for k, set := range ints {
		elems := make([]string, len(set))
		for i, e := range set {
			elems[i] = fmt.Sprintf("e%d", e)
		}
		sets[fmt.Sprintf("s%d", k)] = elems
	}
	return sets
}

// Universe returns the number of distinct elements across sets.
func Universe[K comparable, T comparable](sets map[K][]T) int {
	u := make(map[T]struct{})
	for _, set := range sets {
		for _, e := range set {
			u[e] = struct{}{}
		}
	}
	return len(u)
}

// Missing returns the number of elements of the universe that the sets named
// by cover fail to cover.
func Missing[K comparable, T comparable](sets map[K][]T, cover []K) int {
	covered := make(map[T]struct{})
	for _, id := range cover {
		for _, e := range sets[id] {
			covered[e] = struct{}{}
		}
	}
	return Universe(sets) - len(covered)
}

// HasDuplicates reports whether ids repeats any value.
func HasDuplicates[K comparable](ids []K) bool {
	seen := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
