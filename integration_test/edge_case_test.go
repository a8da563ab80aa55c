package integration_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/setcover"
)

func TestEdgeCases(t *testing.T) {
	large := make(map[string][]int, 1000)
	for i := 0; i < 1000; i++ {
		large[strconv.Itoa(i)] = []int{i}
	}

	tests := []struct {
		name     string
		sets     map[string][]int
		wantSize int
	}{
		{name: "nil input", sets: nil, wantSize: 0},
		{name: "single empty set", sets: map[string][]int{"A": {}}, wantSize: 0},
		{name: "single set", sets: map[string][]int{"A": {1, 2}}, wantSize: 1},
		{name: "identical sets", sets: map[string][]int{"A": {1, 2}, "B": {1, 2}, "C": {2, 1}}, wantSize: 1},
		{name: "repeated elements", sets: map[string][]int{"A": {1, 1, 1}, "B": {1, 2, 2}}, wantSize: 1},
		{name: "1000 singletons", sets: large, wantSize: 1000},
		{name: "negative and zero elements", sets: map[string][]int{"A": {0, -1}, "B": {-2}}, wantSize: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range selectors {
				cover, err := setcover.Cover(tt.sets, s.mode, s.opts...)
				require.NoError(t, err, s.name)
				assert.Len(t, cover, tt.wantSize, s.name)
				assert.NoError(t, setcover.Verify(tt.sets, cover), s.name)
			}
		})
	}
}

func TestEdgeCases_StructElements(t *testing.T) {
	type point struct{ X, Y int }

	sets := []setcover.Set[string, point]{
		{ID: "row0", Elements: []point{{0, 0}, {1, 0}, {2, 0}}},
		{ID: "col0", Elements: []point{{0, 0}, {0, 1}}},
		{ID: "row1", Elements: []point{{0, 1}, {1, 1}, {2, 1}}},
	}

	for _, s := range selectors {
		cover, err := setcover.CoverSets(sets, s.mode, s.opts...)
		require.NoError(t, err, s.name)
		assert.Equal(t, []string{"row0", "row1"}, cover, s.name)
	}
}

func TestEdgeCases_InvalidModeIsRecoverable(t *testing.T) {
	sets := map[string][]int{"A": {1}}

	_, err := setcover.Cover(sets, setcover.Mode(42))
	require.Error(t, err)
	assert.True(t, errors.Is(err, setcover.ErrConfiguration))
	assert.False(t, errors.Is(err, setcover.ErrUncoverable))

	// The process keeps working after the error.
	cover, err := setcover.Cover(sets, setcover.ModeNaive)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, cover)
}
