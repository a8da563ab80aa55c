package dataset

import (
	"fmt"
	"strconv"
)

// Source yields uniform random integers. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Params controls Random.
type Params struct {
	// Sets is the number of sets to generate.
	Sets int
	// Universe is the size of the element domain [0, Universe).
	Universe int
	// Draws is the number of uniform draws per set. Repeated draws collapse,
	// so sets may be smaller.
	Draws int
}

// Random generates a dataset with sets named s0..sN-1 whose elements are
// decimal integers drawn uniformly from [0, Universe).
func Random(rng Source, p Params) (*Dataset, error) {
	if p.Sets < 0 || p.Draws < 0 {
		return nil, fmt.Errorf("dataset: negative parameters: %+v", p)
	}
	if p.Draws > 0 && p.Universe <= 0 {
		return nil, fmt.Errorf("dataset: universe must be positive, got %d", p.Universe)
	}

	sets := make(map[string][]string, p.Sets)
	for i := 0; i < p.Sets; i++ {
		seen := make(map[int]struct{}, p.Draws)
		elems := make([]string, 0, p.Draws)
		for j := 0; j < p.Draws; j++ {
			e := rng.Intn(p.Universe)
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			elems = append(elems, strconv.Itoa(e))
		}
		sets["s"+strconv.Itoa(i)] = elems
	}

	return &Dataset{Name: "random", Sets: sets}, nil
}
