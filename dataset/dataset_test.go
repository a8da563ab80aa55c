package dataset

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/blobstore"
	"github.com/hupe1980/setcover/testutil"
)

func sample() *Dataset {
	return &Dataset{
		Name: "sample",
		Sets: map[string][]string{
			"A": {"1", "2", "3"},
			"B": {"1", "2"},
			"C": {"2"},
			"D": {},
		},
	}
}

func TestDataset_Stats(t *testing.T) {
	d := sample()
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 6, d.Memberships())
	assert.Equal(t, 3, d.Universe())
}

func TestReadWrite(t *testing.T) {
	names := []string{
		"sets.csv", "sets.tsv", "sets.json",
		"sets.csv.zst", "sets.json.zst",
		"sets.csv.gz", "sets.tsv.gz",
		"sets.csv.lz4", "sets.json.lz4",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, name, sample()))

			d, err := Read(&buf, name)
			require.NoError(t, err)
			assert.Equal(t, name, d.Name)
			assert.Equal(t, sample().Sets, d.Sets)
		})
	}
}

func TestReadWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, "sets.xml", sample()))

	_, err := Read(bytes.NewReader(nil), "sets.parquet")
	assert.Error(t, err)

	_, err = Read(bytes.NewReader([]byte("not zstd")), "sets.csv.zst")
	assert.Error(t, err)

	_, err = Read(bytes.NewReader([]byte("not gzip")), "sets.csv.gz")
	assert.Error(t, err)
}

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "a.csv.zst", sample()))

	d, err := Load(ctx, store, "a.csv.zst")
	require.NoError(t, err)
	assert.Equal(t, sample().Sets, d.Sets)

	_, err = Load(ctx, store, "missing.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	var names []string
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("d%d.json.lz4", i)
		d := &Dataset{Sets: map[string][]string{"s": {fmt.Sprint(i)}}}
		require.NoError(t, Save(ctx, store, name, d))
		names = append(names, name)
	}

	for _, concurrency := range []int{0, 1, 3, 10} {
		out, err := LoadAll(ctx, store, names, concurrency)
		require.NoError(t, err)
		require.Len(t, out, len(names))
		for i, d := range out {
			assert.Equal(t, names[i], d.Name)
			assert.Equal(t, []string{fmt.Sprint(i)}, d.Sets["s"])
		}
	}

	_, err := LoadAll(ctx, store, append(names, "nope.csv"), 2)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestRandom(t *testing.T) {
	rng := testutil.NewRNG(4711)

	d, err := Random(rng, Params{Sets: 50, Universe: 100, Draws: 10})
	require.NoError(t, err)
	assert.Equal(t, 50, d.Len())
	assert.Contains(t, d.Sets, "s0")
	assert.Contains(t, d.Sets, "s49")
	for _, elems := range d.Sets {
		assert.LessOrEqual(t, len(elems), 10)
		assert.False(t, testutil.HasDuplicates(elems))
	}
	assert.LessOrEqual(t, d.Universe(), 100)

	rng.Reset()
	again, err := Random(rng, Params{Sets: 50, Universe: 100, Draws: 10})
	require.NoError(t, err)
	assert.Equal(t, d.Sets, again.Sets)
}

func TestRandom_InvalidParams(t *testing.T) {
	rng := testutil.NewRNG(1)

	_, err := Random(rng, Params{Sets: -1})
	assert.Error(t, err)

	_, err = Random(rng, Params{Sets: 3, Universe: 0, Draws: 2})
	assert.Error(t, err)

	d, err := Random(rng, Params{Sets: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, d.Universe())
}

func TestRandom_Coverable(t *testing.T) {
	rng := testutil.NewRNG(7)
	d, err := Random(rng, Params{Sets: 200, Universe: 500, Draws: 25})
	require.NoError(t, err)

	for _, mode := range []setcover.Mode{setcover.ModeNaive, setcover.ModeBitset} {
		cover, err := setcover.CoverSets(setcover.SortedSets(d.Sets), mode)
		require.NoError(t, err)
		assert.NoError(t, setcover.Verify(d.Sets, cover))
	}
}
