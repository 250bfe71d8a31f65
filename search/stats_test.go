package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/md4lab/search"
)

func seededRuns(t *testing.T, cfg search.Config, firstSeed uint32, runs int) [][]search.Result {
	t.Helper()
	all := make([][]search.Result, 0, runs)
	for i := 0; i < runs; i++ {
		results, err := search.Run(cfg, search.NewSeededStrings(firstSeed+uint32(i)))
		require.NoError(t, err)
		all = append(all, results)
	}
	return all
}

func TestPairProbesFollowBirthdayBound(t *testing.T) {
	if testing.Short() {
		t.Skip("hashes a few hundred thousand candidates")
	}
	t.Parallel()
	cfg := search.Config{Length: 8, MaxPrefix: 4, Mode: search.RandomPair}
	means := search.MeanProbes(seededRuns(t, cfg, 1, 300))
	require.Len(t, means, 4)

	for i, mean := range means {
		want := search.Expected(search.RandomPair, i+1)
		assert.InEpsilon(t, want, mean, 0.25, "prefix length %d", i+1)
	}
	// Each extra hex digit should cost about sqrt(16) = 4 times as much.
	for i := 1; i < len(means); i++ {
		growth := means[i] / means[i-1]
		assert.Greater(t, growth, 2.5, "prefix length %d", i+1)
		assert.Less(t, growth, 5.5, "prefix length %d", i+1)
	}
}

func TestTargetProbesFollowPreimageBound(t *testing.T) {
	if testing.Short() {
		t.Skip("hashes about a hundred thousand candidates")
	}
	t.Parallel()
	cfg := search.Config{Length: 8, MaxPrefix: 2, Mode: search.FixedTarget}
	means := search.MeanProbes(seededRuns(t, cfg, 1000, 400))
	require.Len(t, means, 2)

	for i, mean := range means {
		want := search.Expected(search.FixedTarget, i+1)
		assert.InEpsilon(t, want, mean, 0.25, "prefix length %d", i+1)
	}
}

func TestExpected(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 16.0, search.Expected(search.FixedTarget, 1))
	assert.Equal(t, 65536.0, search.Expected(search.FixedTarget, 4))
	assert.InDelta(t, 5.68, search.Expected(search.RandomPair, 1), 0.01)
	assert.InDelta(t, 321.5, search.Expected(search.RandomPair, 4), 0.1)
	assert.True(t, math.IsNaN(search.Expected(search.Mode(5), 1)))

	// The birthday search is always cheaper than hitting a fixed target.
	for k := 1; k <= search.MaxPrefix; k++ {
		assert.Less(t, search.Expected(search.RandomPair, k), search.Expected(search.FixedTarget, k))
	}
}

func TestMeanProbes(t *testing.T) {
	t.Parallel()
	runs := [][]search.Result{
		{{Prefix: 1, Probes: 4}, {Prefix: 2, Probes: 10}},
		{{Prefix: 1, Probes: 6}},
		{{Prefix: 1, Probes: 8}, {Prefix: 2, Probes: 30}, {Prefix: 4, Probes: 100}},
	}
	means := search.MeanProbes(runs)
	require.Len(t, means, 4)
	assert.Equal(t, 6.0, means[0])
	assert.Equal(t, 20.0, means[1])
	assert.True(t, math.IsNaN(means[2]))
	assert.Equal(t, 100.0, means[3])

	assert.Empty(t, search.MeanProbes(nil))
}
