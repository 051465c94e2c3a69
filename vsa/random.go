package vsa

import "math/rand/v2"

// NewRand returns a deterministic generator for seed.
// The same seed always yields the same stream, so every atom, permutation
// and sample spec drawn from it is reproducible.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource forwards to the runtime's concurrency-safe global generator.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// orGlobal returns rng, or a generator backed by the global source when rng is nil.
func orGlobal(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(globalSource{})
}

// Atom draws a random bipolar Vector: each element is independently +1 or -1
// with probability 0.5. Atoms drawn independently are quasi-orthogonal with
// overwhelming probability at high dimension.
func Atom(dims int, rng *rand.Rand) (Vector, error) {
	if err := checkDims(dims); err != nil {
		return Vector{}, err
	}
	r := orGlobal(rng)
	data := make([]float64, dims)
	for i := range data {
		if r.Uint64()&1 == 1 {
			data[i] = 1
		} else {
			data[i] = -1
		}
	}
	return Vector{data: data}, nil
}

// SeededAtom is Atom with a fresh generator for seed.
// The same (dims, seed) pair always produces the same vector.
func SeededAtom(dims int, seed uint64) (Vector, error) {
	return Atom(dims, NewRand(seed))
}
