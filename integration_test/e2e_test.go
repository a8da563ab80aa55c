package integration_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/blobstore"
	"github.com/hupe1980/setcover/dataset"
	"github.com/hupe1980/setcover/testutil"
)

type selector struct {
	name string
	mode setcover.Mode
	opts []setcover.Option
}

var selectors = []selector{
	{name: "naive", mode: setcover.ModeNaive},
	{name: "bitset", mode: setcover.ModeBitset},
	{name: "roaring", mode: setcover.ModeBitset, opts: []setcover.Option{setcover.WithBitmap(setcover.RoaringBitmap)}},
}

// TestEndToEnd stores random datasets in every format, loads them back and
// checks that every selector produces the same verified cover.
func TestEndToEnd(t *testing.T) {
	ctx := context.Background()

	stores := map[string]blobstore.Store{
		"local":  blobstore.NewLocalStore(t.TempDir()),
		"memory": blobstore.NewMemoryStore(),
	}
	formats := []string{"csv", "tsv.gz", "json.zst", "csv.lz4"}

	for storeName, store := range stores {
		t.Run(storeName, func(t *testing.T) {
			rng := testutil.NewRNG(4711)

			var names []string
			for i, format := range formats {
				d, err := dataset.Random(rng, dataset.Params{Sets: 60 + 20*i, Universe: 400, Draws: 30})
				require.NoError(t, err)

				name := fmt.Sprintf("sets-%d.%s", i, format)
				require.NoError(t, dataset.Save(ctx, store, name, d))
				names = append(names, name)
			}

			listed, err := store.List(ctx, "sets-")
			require.NoError(t, err)
			assert.Equal(t, names, listed)

			loaded, err := dataset.LoadAll(ctx, store, names, 2)
			require.NoError(t, err)

			for _, d := range loaded {
				ordered := setcover.SortedSets(d.Sets)

				var want []string
				for _, s := range selectors {
					res, err := setcover.Solve(ordered, s.mode, s.opts...)
					require.NoError(t, err, "%s/%s", d.Name, s.name)
					require.NoError(t, setcover.Verify(d.Sets, res.Cover), "%s/%s", d.Name, s.name)
					assert.Equal(t, d.Universe(), res.UniverseSize)

					if want == nil {
						want = res.Cover
						continue
					}
					assert.Equal(t, want, res.Cover, "%s/%s", d.Name, s.name)
				}
			}
		})
	}
}

// TestMetricsAcrossRuns checks that one collector aggregates covers from
// several selectors and datasets.
func TestMetricsAcrossRuns(t *testing.T) {
	metrics := &setcover.BasicMetricsCollector{}
	rng := testutil.NewRNG(1)

	runs := 0
	for i := 0; i < 5; i++ {
		sets := rng.IntSets(50, 300, 20)
		for _, s := range selectors {
			opts := append([]setcover.Option{setcover.WithMetricsCollector(metrics)}, s.opts...)
			cover, err := setcover.Cover(sets, s.mode, opts...)
			require.NoError(t, err)
			assert.Zero(t, testutil.Missing(sets, cover))
			runs++
		}
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(runs), stats.CoverCount)
	assert.Equal(t, int64(5), stats.NaiveCount)
	assert.Equal(t, int64(10), stats.BitsetCount)
	assert.Equal(t, stats.SetsChosen, stats.Rounds)
	assert.Zero(t, stats.CoverErrors)
}
