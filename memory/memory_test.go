package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amansingh-afk/vsaspline/memory"
	"github.com/Amansingh-afk/vsaspline/vsa"
)

const dims = 10000

// ── helpers ───────────────────────────────────────────────────────────────────

func newMemory(t *testing.T, threshold float64, capacity int) *memory.Memory {
	t.Helper()
	m, err := memory.New(memory.Options{Threshold: threshold, Capacity: capacity})
	require.NoError(t, err)
	return m
}

func atom(t testing.TB, seed uint64) vsa.Vector {
	t.Helper()
	v, err := vsa.SeededAtom(dims, seed)
	require.NoError(t, err)
	return v
}

// noisy keeps roughly keep of proto's elements and takes the rest from an
// unrelated atom.
func noisy(t *testing.T, proto vsa.Vector, keep float64, seed uint64) vsa.Vector {
	t.Helper()
	v, err := vsa.Add([]vsa.Vector{proto, atom(t, seed+1000)},
		vsa.WithWeights(keep, 1-keep), vsa.WithRand(vsa.NewRand(seed)))
	require.NoError(t, err)
	return v
}

func set(t *testing.T, m *memory.Memory, label string, v vsa.Vector, value any) {
	t.Helper()
	require.NoError(t, m.Set(label, v, value))
}

func get(t *testing.T, m *memory.Memory, q vsa.Vector) (memory.Match, bool) {
	t.Helper()
	match, ok, err := m.Get(q)
	require.NoError(t, err)
	return match, ok
}

// ── exact match ───────────────────────────────────────────────────────────────

func TestMemory_ExactHit(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	a := atom(t, 1)
	set(t, m, "alpha", a, 42)

	match, ok := get(t, m, a)
	require.True(t, ok, "expected hit")
	assert.Equal(t, "alpha", match.Label)
	assert.Equal(t, 42, match.Value)
	assert.InDelta(t, 1.0, match.Similarity, 1e-12)
	assert.True(t, match.Vector.Equal(a))
}

func TestMemory_Miss(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	set(t, m, "alpha", atom(t, 1), 42)

	match, ok := get(t, m, atom(t, 2))
	assert.False(t, ok, "unrelated vector must miss")
	assert.Equal(t, memory.Match{}, match)
}

func TestMemory_EmptyMiss(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	_, ok := get(t, m, atom(t, 1))
	assert.False(t, ok, "empty memory must always miss")
}

// ── cleanup ───────────────────────────────────────────────────────────────────

func TestMemory_CleanupNoisyCopy(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	protos := []vsa.Vector{atom(t, 1), atom(t, 2), atom(t, 3)}
	for i, p := range protos {
		set(t, m, fmt.Sprintf("p%d", i), p, i)
	}

	for i, p := range protos {
		// cos ≈ 0.8 with its prototype, ≈ 0 with the others
		match, ok := get(t, m, noisy(t, p, 0.8, uint64(i)))
		require.True(t, ok, "prototype %d", i)
		assert.Equal(t, fmt.Sprintf("p%d", i), match.Label)
		assert.InDelta(t, 0.8, match.Similarity, 0.05)
	}
}

func TestMemory_BelowThreshold(t *testing.T) {
	m := newMemory(t, 0.9, 16)
	p := atom(t, 1)
	set(t, m, "p", p, nil)

	_, ok := get(t, m, noisy(t, p, 0.8, 7))
	assert.False(t, ok, "a cos ≈ 0.8 copy must miss at threshold 0.9")
}

func TestMemory_NegatedMisses(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	p := atom(t, 1)
	set(t, m, "p", p, nil)

	_, ok := get(t, m, vsa.Negate(p))
	assert.False(t, ok)
}

func TestMemory_ZeroQueryMisses(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	set(t, m, "p", atom(t, 1), nil)
	zero, err := vsa.Zero(dims)
	require.NoError(t, err)

	_, ok := get(t, m, zero)
	assert.False(t, ok, "a zero-magnitude query has NaN similarity and must miss")
}

// ── dimension checks ──────────────────────────────────────────────────────────

func TestMemory_DimensionMismatch(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	set(t, m, "p", atom(t, 1), nil)

	short, err := vsa.SeededAtom(dims/2, 1)
	require.NoError(t, err)

	var mismatch *vsa.ErrDimensionMismatch
	require.ErrorAs(t, m.Set("q", short, nil), &mismatch)

	_, _, err = m.Get(short)
	require.ErrorAs(t, err, &mismatch)

	var invalid *vsa.ErrInvalidDimension
	require.ErrorAs(t, m.Set("empty", vsa.Vector{}, nil), &invalid)
}

// ── update / delete ───────────────────────────────────────────────────────────

func TestMemory_Set_UpdateExactLabel(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	a := atom(t, 1)
	b := atom(t, 2)
	set(t, m, "key", a, "first")
	set(t, m, "key", b, "second")

	assert.Equal(t, 1, m.Len(), "update must not create a duplicate entry")
	_, ok := get(t, m, a)
	assert.False(t, ok, "old vector must be replaced")
	match, ok := get(t, m, b)
	require.True(t, ok)
	assert.Equal(t, "second", match.Value)
}

func TestMemory_Delete(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	a := atom(t, 1)
	set(t, m, "key", a, "value")

	assert.True(t, m.Delete("key"))
	assert.False(t, m.Delete("key"), "second delete must report nothing removed")
	_, ok := get(t, m, a)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

// ── LRU eviction ──────────────────────────────────────────────────────────────

func TestMemory_LRU_EvictsOldest(t *testing.T) {
	m := newMemory(t, 0.5, 2)
	a, b, c := atom(t, 1), atom(t, 2), atom(t, 3)

	set(t, m, "alpha", a, 1)
	set(t, m, "beta", b, 2)
	set(t, m, "gamma", c, 3) // evicts alpha

	assert.Equal(t, 2, m.Len())
	_, ok := get(t, m, a)
	assert.False(t, ok, "alpha should have been evicted")
}

func TestMemory_LRU_AccessPromotes(t *testing.T) {
	m := newMemory(t, 0.5, 2)
	a, b, c := atom(t, 1), atom(t, 2), atom(t, 3)

	set(t, m, "alpha", a, 1)
	set(t, m, "beta", b, 2)
	get(t, m, a)             // promote alpha
	set(t, m, "gamma", c, 3) // evicts beta (now LRU)

	_, aOk := get(t, m, a)
	_, bOk := get(t, m, b)
	assert.True(t, aOk, "alpha should still be stored (was promoted)")
	assert.False(t, bOk, "beta should have been evicted")
}

func TestMemory_LRU_UpdatePromotes(t *testing.T) {
	m := newMemory(t, 0.5, 2)
	a, b, c := atom(t, 1), atom(t, 2), atom(t, 3)

	set(t, m, "alpha", a, 1)
	set(t, m, "beta", b, 2)
	set(t, m, "alpha", a, 99) // update promotes alpha → beta becomes LRU
	set(t, m, "gamma", c, 3)  // evicts beta

	_, bOk := get(t, m, b)
	assert.False(t, bOk)
	match, aOk := get(t, m, a)
	require.True(t, aOk)
	assert.Equal(t, 99, match.Value)
}

// ── Stats ─────────────────────────────────────────────────────────────────────

func TestMemory_Stats(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	a := atom(t, 1)
	set(t, m, "a", a, 1)
	set(t, m, "b", atom(t, 2), 2)
	set(t, m, "a", a, 3) // update

	get(t, m, a)          // hit
	get(t, m, a)          // hit
	get(t, m, atom(t, 9)) // miss

	s := m.Stats()
	assert.Equal(t, 2, s.Entries)
	assert.Equal(t, uint64(3), s.Sets)
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate, 0.001)
	assert.InDelta(t, 1.0, s.AvgSimOnHit, 1e-12)
}

func TestMemory_Stats_NoHits_ZeroRates(t *testing.T) {
	m := newMemory(t, 0.5, 16)
	get(t, m, atom(t, 1))

	s := m.Stats()
	assert.Equal(t, 0.0, s.HitRate)
	assert.Equal(t, 0.0, s.AvgSimOnHit)
}

// ── concurrency ───────────────────────────────────────────────────────────────

func TestMemory_Concurrent_SetGet(t *testing.T) {
	m := newMemory(t, 0.5, 128)
	vecs := make([]vsa.Vector, 8)
	for i := range vecs {
		vecs[i] = atom(t, uint64(i))
	}

	const goroutines = 32
	const ops = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			label := fmt.Sprintf("key-%d", id%8)
			v := vecs[id%8]
			for i := 0; i < ops; i++ {
				if i%3 == 0 {
					_ = m.Set(label, v, id*i)
				} else {
					_, _, _ = m.Get(v)
				}
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, 8, m.Len())
}

// ── Options validation ────────────────────────────────────────────────────────

func TestNew_InvalidOptions(t *testing.T) {
	_, err := memory.New(memory.Options{Threshold: 0.5, Capacity: 0})
	require.ErrorIs(t, err, memory.ErrInvalidCapacity)

	for _, th := range []float64{0, -0.5, 1.01} {
		_, err = memory.New(memory.Options{Threshold: th, Capacity: 16})
		require.ErrorIs(t, err, memory.ErrInvalidThreshold, "threshold %v", th)
	}
}

func TestDefaultOptions(t *testing.T) {
	m, err := memory.New(memory.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}
