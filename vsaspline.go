// Package vsaspline encodes real-valued scalars as bipolar hypervectors and
// decodes them again. Scalars are placed on a spline of random knot vectors;
// values between two knots are a stochastic blend of both.
//
// Basic usage:
//
//	c, err := vsaspline.New(vsaspline.WithKnots(0, 10, 20), vsaspline.WithSeed(1))
//	v, err := c.Encode(7.5)
//	x, ok, err := c.DecodeOK(v) // x ≈ 7.5
package vsaspline

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/Amansingh-afk/vsaspline/internal/logging"
	"github.com/Amansingh-afk/vsaspline/memory"
	"github.com/Amansingh-afk/vsaspline/spline"
	"github.com/Amansingh-afk/vsaspline/vsa"
)

// Stats is a point-in-time snapshot of Codec metrics.
type Stats struct {
	Encodes     uint64
	Decodes     uint64
	Undecodable uint64 // decodes whose estimate was not finite
	Memory      memory.Stats
}

// Codec encodes and decodes scalars and keeps an item memory of remembered
// encodings. It is safe for concurrent use.
type Codec struct {
	codec *spline.Codec
	mem   *memory.Memory
	log   *slog.Logger

	encodes     atomic.Uint64
	decodes     atomic.Uint64
	undecodable atomic.Uint64
}

// Option configures a Codec.
type Option func(*options)

type options struct {
	dims       int
	knots      []float64
	seed       uint64
	seeded     bool
	zeroThresh float64
	memThresh  float64
	memCap     int
	logger     *slog.Logger
}

func defaultOptions() options {
	cfg := spline.DefaultConfig()
	mem := memory.DefaultOptions()
	return options{
		dims:       cfg.Dims,
		knots:      cfg.Knots,
		zeroThresh: cfg.ZeroThresh,
		memThresh:  mem.Threshold,
		memCap:     mem.Capacity,
	}
}

// WithDims sets the hypervector dimension (default 10000).
// Higher values decode more accurately at the cost of memory and CPU.
func WithDims(n int) Option { return func(o *options) { o.dims = n } }

// WithKnots sets the strictly increasing knot scalars (default 0, 1).
// Inputs outside the first and last knot are clamped.
func WithKnots(knots ...float64) Option {
	return func(o *options) { o.knots = append([]float64(nil), knots...) }
}

// WithSeed makes knot vectors and encodings reproducible.
// Codecs with different seeds produce unrelated vectors.
func WithSeed(s uint64) Option {
	return func(o *options) {
		o.seed = s
		o.seeded = true
	}
}

// WithZeroThresh sets the decode threshold in standard deviations (default 4).
// Raise it to reject noise; lower it to decode weaker signals.
func WithZeroThresh(zt float64) Option { return func(o *options) { o.zeroThresh = zt } }

// WithMemoryThreshold sets the minimum cosine similarity for Recall (default 0.5).
func WithMemoryThreshold(t float64) Option { return func(o *options) { o.memThresh = t } }

// WithMemoryCapacity sets the number of remembered values before LRU eviction (default 1024).
func WithMemoryCapacity(n int) Option { return func(o *options) { o.memCap = n } }

// WithLogger sets the logger for debug output. Logging is off by default.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// New creates a Codec with the given options.
func New(opts ...Option) (*Codec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	codec, err := spline.NewCodec(spline.Config{
		Dims:       o.dims,
		Knots:      o.knots,
		Seed:       o.seed,
		Seeded:     o.seeded,
		ZeroThresh: o.zeroThresh,
	})
	if err != nil {
		return nil, fmt.Errorf("vsaspline: %w", err)
	}
	mem, err := memory.New(memory.Options{Threshold: o.memThresh, Capacity: o.memCap})
	if err != nil {
		return nil, fmt.Errorf("vsaspline: %w", err)
	}

	o.logger.Debug("codec created",
		"dims", o.dims,
		"knots", len(o.knots),
		"zero_thresh", o.zeroThresh,
		"seeded", o.seeded,
	)
	return &Codec{codec: codec, mem: mem, log: o.logger}, nil
}

// Spec returns the knot set behind the Codec.
func (c *Codec) Spec() *spline.Spec { return c.codec.Spec() }

// Encode returns the hypervector encoding of x.
func (c *Codec) Encode(x float64) (vsa.Vector, error) {
	v, err := c.codec.Encode(x)
	if err != nil {
		return vsa.Vector{}, err
	}
	c.encodes.Add(1)
	return v, nil
}

// Decode estimates the scalar encoded by v. A vector with no knot similarity
// above the threshold decodes to NaN without an error.
func (c *Codec) Decode(v vsa.Vector) (float64, error) {
	x, err := c.codec.Decode(v)
	if err != nil {
		return 0, err
	}
	c.decodes.Add(1)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		c.undecodable.Add(1)
		// JSON cannot carry NaN or Inf.
		c.log.Debug("undecodable vector",
			"value", strconv.FormatFloat(x, 'g', -1, 64),
			"zero_thresh", c.codec.ZeroThresh(),
		)
	}
	return x, nil
}

// DecodeOK is Decode that also reports whether the estimate is finite.
func (c *Codec) DecodeOK(v vsa.Vector) (float64, bool, error) {
	x, err := c.Decode(v)
	if err != nil {
		return 0, false, err
	}
	return x, !math.IsNaN(x) && !math.IsInf(x, 0), nil
}

// Snap encodes x and decodes the result, returning the value the Codec can
// actually represent for x.
func (c *Codec) Snap(x float64) (float64, error) {
	v, err := c.Encode(x)
	if err != nil {
		return 0, err
	}
	return c.Decode(v)
}

// Remember encodes x and stores the encoding under label.
// Storing under an existing label replaces it.
func (c *Codec) Remember(label string, x float64) error {
	v, err := c.Encode(x)
	if err != nil {
		return err
	}
	return c.mem.Set(label, v, x)
}

// Recall returns the remembered encoding most similar to v, if any reaches the
// memory threshold. Match.Value holds the remembered scalar.
func (c *Codec) Recall(v vsa.Vector) (memory.Match, bool, error) {
	return c.mem.Get(v)
}

// Forget removes the value remembered under label.
func (c *Codec) Forget(label string) bool { return c.mem.Delete(label) }

// Stats returns a point-in-time snapshot of Codec metrics.
func (c *Codec) Stats() Stats {
	return Stats{
		Encodes:     c.encodes.Load(),
		Decodes:     c.decodes.Load(),
		Undecodable: c.undecodable.Load(),
		Memory:      c.mem.Stats(),
	}
}
