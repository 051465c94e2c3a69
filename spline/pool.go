package spline

import (
	"sync"

	"github.com/Amansingh-afk/vsaspline/vsa"
)

// bufPool recycles the per-call scratch of a Codec: sample-spec index buffers
// (one per vector element) for Encode and weight buffers (one per knot) for
// Decode. Both sizes are fixed by the Codec's Spec, so a buffer obtained for
// one codec is never reused with another shape.
//
// Zeroing happens on *get*, not put, so a stale buffer returned to the pool
// can never leak data into the next user.
type bufPool struct {
	indices sync.Pool // stores *vsa.SampleSpec
	weights sync.Pool // stores *[]float64
	dims    int
	knots   int
}

func newBufPool(dims, knots int) *bufPool {
	return &bufPool{
		dims:  dims,
		knots: knots,
		indices: sync.Pool{
			New: func() any {
				buf := make(vsa.SampleSpec, dims)
				return &buf
			},
		},
		weights: sync.Pool{
			New: func() any {
				buf := make([]float64, knots)
				return &buf
			},
		},
	}
}

// getIndices returns a zeroed index buffer of length dims.
func (p *bufPool) getIndices() vsa.SampleSpec {
	bp := p.indices.Get().(*vsa.SampleSpec)
	buf := *bp
	clear(buf)
	return buf
}

// putIndices returns an index buffer to the pool.
func (p *bufPool) putIndices(buf vsa.SampleSpec) {
	p.indices.Put(&buf)
}

// getWeights returns a zeroed weight buffer of length knots.
func (p *bufPool) getWeights() []float64 {
	bp := p.weights.Get().(*[]float64)
	buf := *bp
	clear(buf)
	return buf
}

// putWeights returns a weight buffer to the pool.
func (p *bufPool) putWeights(buf []float64) {
	p.weights.Put(&buf)
}
