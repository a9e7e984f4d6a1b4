package hashring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocked_BasicOperations(t *testing.T) {
	ring := NewLocked()
	require.NoError(t, ring.SetWeights(map[string]int{"A": 1, "B": 1, "C": 2}))

	assert.Equal(t, 4, ring.TotalWeight())
	assert.Equal(t, 50.0, ring.WeightPercentage("C"))
	assert.Equal(t, []string{"A", "B", "C"}, ring.Targets())

	target, err := ring.ResolvePoint(12345)
	require.NoError(t, err)
	assert.Contains(t, []string{"A", "B", "C"}, target)

	counts, err := ring.BucketCounts()
	require.NoError(t, err)
	assert.Len(t, counts, 3)

	ring.Reset()
	assert.Empty(t, ring.Targets())
	_, err = ring.ResolvePoint(12345)
	require.ErrorIs(t, err, ErrNoTargets)
}

func TestLocked_MatchesUnlockedRing(t *testing.T) {
	weights := map[string]int{"A": 2, "B": 3}

	locked := NewLocked()
	require.NoError(t, locked.SetWeights(weights))
	plain := New()
	require.NoError(t, plain.SetWeights(weights))

	for i := 0; i < 100; i++ {
		p := uint32(i) * 42949672
		want, err := plain.ResolvePoint(p)
		require.NoError(t, err)
		got, err := locked.ResolvePoint(p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "point %d", p)
	}

	wantTable, err := plain.BucketTable()
	require.NoError(t, err)
	gotTable, err := locked.BucketTable()
	require.NoError(t, err)
	assert.Equal(t, wantTable, gotTable)
}

func TestLocked_ConcurrentReadersAndWriter(t *testing.T) {
	ring := NewLocked()
	require.NoError(t, ring.SetWeights(map[string]int{"A": 1, "B": 1}))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if err := ring.SetWeights(map[string]int{"C": 1 + i%3}); err != nil {
				t.Errorf("SetWeights failed: %v", err)
				return
			}
		}
	}()

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				target, err := ring.ResolvePoint(uint32(g*1000 + i))
				if err != nil {
					t.Errorf("ResolvePoint failed: %v", err)
					return
				}
				if target == "" {
					t.Error("ResolvePoint returned empty target")
					return
				}
				if _, err := ring.BucketCounts(); err != nil {
					t.Errorf("BucketCounts failed: %v", err)
					return
				}
			}
		}(g)
	}

	wg.Wait()
}
