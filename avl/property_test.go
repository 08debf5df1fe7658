package avl_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/avlkit/avl"
	"github.com/stretchr/testify/require"
)

// Property-test sizes (avoid magic numbers in test bodies).
const (
	propRounds  = 50
	propMaxKeys = 300
	propKeySpan = 1000
)

// randomKeys returns n keys drawn from [-span, span), duplicates included.
func randomKeys(r *rand.Rand, n, span int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(2*span) - span
	}
	return keys
}

// uniqueSorted is the reference model of the set.
func uniqueSorted(keys []int) []int {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}

// maxAVLHeight is the classic bound 1.4405·log2(n+2) − 0.3277.
func maxAVLHeight(n int) int {
	return int(math.Floor(1.4405*math.Log2(float64(n+2)) - 0.3277))
}

// TestProperty_InsertKeepsInvariants checks balance, ordering, size and the
// logarithmic height bound after every single insert.
func TestProperty_InsertKeepsInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < propRounds; round++ {
		keys := randomKeys(r, 1+r.Intn(propMaxKeys), propKeySpan)
		tr := avl.New[int]()
		for i, k := range keys {
			tr.Insert(k)
			require.NoError(t, tr.Validate(), "round %d insert #%d (%d)", round, i, k)
		}

		want := uniqueSorted(keys)
		got := slices.Collect(tr.InOrder())
		require.Equal(t, want, got, "round %d", round)
		require.Equal(t, len(got), tr.Size())
		require.LessOrEqual(t, tr.Height(), maxAVLHeight(tr.Size()), "round %d", round)
	}
}

// TestProperty_RemoveAllInAnyOrder empties random trees in shuffled order.
func TestProperty_RemoveAllInAnyOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < propRounds; round++ {
		keys := uniqueSorted(randomKeys(r, 1+r.Intn(propMaxKeys), propKeySpan))
		tr := avl.New(avl.WithKeys(keys...))
		require.Equal(t, len(keys), tr.Size())

		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for i, k := range keys {
			require.True(t, tr.Remove(k), "round %d remove %d", round, k)
			require.NoError(t, tr.Validate(), "round %d remove #%d (%d)", round, i, k)
			require.Equal(t, len(keys)-i-1, tr.Size())
		}

		require.Equal(t, 0, tr.Size())
		require.Empty(t, slices.Collect(tr.InOrder()))
		require.Nil(t, tr.Root())
	}
}

// TestProperty_InsertRemoveRoundTrip inserts a fresh key and removes it
// again; the in-order sequence and size must be restored.
func TestProperty_InsertRemoveRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < propRounds; round++ {
		tr := avl.New(avl.WithKeys(randomKeys(r, r.Intn(propMaxKeys), propKeySpan)...))
		before := slices.Collect(tr.InOrder())
		size := tr.Size()

		k := r.Intn(propKeySpan) + 2*propKeySpan // outside the key span, so always fresh
		require.True(t, tr.Insert(k))
		require.True(t, tr.Remove(k))

		require.Equal(t, size, tr.Size())
		require.Equal(t, before, slices.Collect(tr.InOrder()))
		require.NoError(t, tr.Validate())
	}
}

// TestProperty_Idempotence re-inserts present keys and removes absent ones.
func TestProperty_Idempotence(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < propRounds; round++ {
		keys := randomKeys(r, 1+r.Intn(propMaxKeys), propKeySpan)
		tr := avl.New(avl.WithKeys(keys...))
		pre := slices.Collect(tr.PreOrder())
		size := tr.Size()

		for _, k := range keys {
			require.False(t, tr.Insert(k))
		}
		for i := 0; i < 20; i++ {
			absent := 3*propKeySpan + i
			require.False(t, tr.Remove(absent))
		}

		require.Equal(t, size, tr.Size())
		require.Equal(t, pre, slices.Collect(tr.PreOrder()))
	}
}

// TestProperty_MixedOperations interleaves inserts and removes against a
// map-based model.
func TestProperty_MixedOperations(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	tr := avl.New[int]()
	model := make(map[int]bool)

	for step := 0; step < 5000; step++ {
		k := r.Intn(200)
		if r.Intn(3) == 0 {
			require.Equal(t, model[k], tr.Remove(k), "step %d remove %d", step, k)
			delete(model, k)
		} else {
			require.Equal(t, !model[k], tr.Insert(k), "step %d insert %d", step, k)
			model[k] = true
		}
		require.Equal(t, len(model), tr.Size())
	}

	require.NoError(t, tr.Validate())
	for k := range model {
		require.True(t, tr.Contains(k))
	}
}
