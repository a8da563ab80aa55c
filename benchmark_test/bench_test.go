package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/testutil"
)

type workload struct {
	sets, universe, draws int
}

var workloads = []workload{
	{sets: 100, universe: 1_000, draws: 20},
	{sets: 1_000, universe: 10_000, draws: 50},
	{sets: 5_000, universe: 100_000, draws: 100},
	// Sparse: large universe, small sets.
	{sets: 2_000, universe: 1_000_000, draws: 10},
}

var selectors = []struct {
	name string
	mode setcover.Mode
	opts []setcover.Option
}{
	{name: "naive", mode: setcover.ModeNaive},
	{name: "bitset", mode: setcover.ModeBitset},
	{name: "roaring", mode: setcover.ModeBitset, opts: []setcover.Option{setcover.WithBitmap(setcover.RoaringBitmap)}},
}

// BenchmarkCover compares the selectors over uniform random workloads.
func BenchmarkCover(b *testing.B) {
	for _, w := range workloads {
		rng := testutil.NewRNG(4711)
		sets := setcover.SortedSets(rng.IntSets(w.sets, w.universe, w.draws))

		for _, s := range selectors {
			name := fmt.Sprintf("sets=%d/universe=%d/draws=%d/%s", w.sets, w.universe, w.draws, s.name)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()

				var res *setcover.Result[int]
				for b.Loop() {
					var err error
					res, err = setcover.Solve(sets, s.mode, s.opts...)
					if err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(len(res.Cover)), "cover")
			})
		}
	}
}
