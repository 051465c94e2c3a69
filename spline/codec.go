package spline

import (
	"math/rand/v2"
	"sync"

	"github.com/Amansingh-afk/vsaspline/vsa"
)

// ScalarEncoder converts a scalar to a hypervector.
type ScalarEncoder interface {
	Encode(x float64) (vsa.Vector, error)
}

// ScalarDecoder recovers a scalar estimate from a hypervector.
type ScalarDecoder interface {
	Decode(v vsa.Vector) (float64, error)
}

// Config holds parameters for a Codec.
type Config struct {
	Dims       int       // hypervector dimension (default 10000)
	Knots      []float64 // strictly increasing knot scalars (default {0, 1})
	Seed       uint64    // generator seed, used when Seeded is true
	Seeded     bool      // derive knots and encodings from Seed
	ZeroThresh float64   // decode threshold in standard deviations (default 4)
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{
		Dims:       10000,
		Knots:      []float64{0, 1},
		ZeroThresh: DefaultZeroThresh,
	}
}

// Codec pairs a Spec with its own random source and decode threshold.
// It implements ScalarEncoder and ScalarDecoder and is safe for concurrent use.
type Codec struct {
	spec       *Spec
	zeroThresh float64
	pool       *bufPool

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewCodec builds the Spec described by cfg. A seeded Codec draws its knot
// vectors and then every encoding from one stream, so the same sequence of
// calls reproduces the same vectors.
func NewCodec(cfg Config) (*Codec, error) {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = rand.Uint64()
	}
	rng := vsa.NewRand(seed)
	spec, err := NewSpec(cfg.Dims, cfg.Knots, WithRand(rng))
	if err != nil {
		return nil, err
	}
	return NewCodecFromSpec(spec, cfg.ZeroThresh, rng), nil
}

// NewCodecFromSpec wraps an existing Spec. A nil rng is replaced by a
// randomly seeded generator owned by the Codec.
func NewCodecFromSpec(spec *Spec, zeroThresh float64, rng *rand.Rand) *Codec {
	if rng == nil {
		rng = vsa.NewRand(rand.Uint64())
	}
	return &Codec{
		spec:       spec,
		zeroThresh: zeroThresh,
		pool:       newBufPool(spec.Dims(), spec.Len()),
		rng:        rng,
	}
}

func (c *Codec) Spec() *Spec { return c.spec }

func (c *Codec) ZeroThresh() float64 { return c.zeroThresh }

// Encode returns the VSA encoding of x. See Spec.Encode.
func (c *Codec) Encode(x float64) (vsa.Vector, error) {
	buf := c.pool.getIndices()
	defer c.pool.putIndices(buf)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spec.encode(x, c.rng, buf)
}

// Decode estimates the scalar encoded by v with the Codec's threshold.
// See Spec.Decode for the meaning of a non-finite estimate.
func (c *Codec) Decode(v vsa.Vector) (float64, error) {
	w := c.pool.getWeights()
	defer c.pool.putWeights(w)
	return c.spec.decodeInto(w, v, c.zeroThresh)
}
