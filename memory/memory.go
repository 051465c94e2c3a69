// Package memory implements a thread-safe item memory (cleanup memory):
// labelled hypervectors with nearest-match lookup by cosine similarity.
// A noisy vector, such as a bundle or a decoded estimate re-encoded, is
// snapped to the most similar stored prototype.
package memory

import (
	"container/list"
	"errors"
	"fmt"
	"sync"

	"github.com/Amansingh-afk/vsaspline/vsa"
)

var (
	// ErrInvalidCapacity is returned when Options.Capacity is not positive.
	ErrInvalidCapacity = errors.New("memory: Options.Capacity must be positive")

	// ErrInvalidThreshold is returned when Options.Threshold is outside (0, 1].
	ErrInvalidThreshold = errors.New("memory: Options.Threshold must be in (0, 1]")
)

// Options configures a Memory.
type Options struct {
	Threshold float64 // minimum cosine similarity for a hit (default 0.5)
	Capacity  int     // max entries before LRU eviction (default 1024)
}

// DefaultOptions returns production-ready defaults.
// Random bipolar vectors have cosine similarity ~0, so 0.5 only matches
// vectors that share at least three quarters of their elements.
func DefaultOptions() Options {
	return Options{Threshold: 0.5, Capacity: 1024}
}

// Stats is a point-in-time snapshot of memory metrics.
type Stats struct {
	Entries     int
	Hits        uint64
	Misses      uint64
	Sets        uint64
	HitRate     float64
	AvgSimOnHit float64
}

// Match is the result of a successful lookup.
type Match struct {
	Label      string
	Vector     vsa.Vector
	Value      any
	Similarity float64
}

type entry struct {
	label string
	vec   vsa.Vector
	value any
}

// Memory is a thread-safe item memory.
// All stored vectors share the dimension of the first one stored.
type Memory struct {
	mu        sync.Mutex
	lru       *list.List
	index     map[string]*list.Element // label → LRU element
	threshold float64
	capacity  int
	dims      int // 0 until the first Set

	hits   uint64
	misses uint64
	sets   uint64
	simSum float64
}

// New creates an empty Memory.
func New(opts Options) (*Memory, error) {
	if opts.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, opts.Threshold)
	}
	return &Memory{
		lru:       list.New(),
		index:     make(map[string]*list.Element),
		threshold: opts.Threshold,
		capacity:  opts.Capacity,
	}, nil
}

// Set stores vec and value under label.
// If the label already exists its vector and value are replaced and the entry
// is promoted to most-recently-used.
// If the memory is at capacity the least-recently-used entry is evicted first.
func (m *Memory) Set(label string, vec vsa.Vector, value any) error {
	if vec.Dims() <= 0 {
		return &vsa.ErrInvalidDimension{Dimension: vec.Dims()}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dims != 0 && vec.Dims() != m.dims {
		return &vsa.ErrDimensionMismatch{Expected: m.dims, Actual: vec.Dims()}
	}
	m.dims = vec.Dims()
	m.sets++

	if elem, ok := m.index[label]; ok {
		e := elem.Value.(*entry)
		e.vec = vec
		e.value = value
		m.lru.MoveToFront(elem)
		return nil
	}

	if m.lru.Len() >= m.capacity {
		m.evictLocked()
	}

	e := &entry{label: label, vec: vec, value: value}
	m.index[label] = m.lru.PushFront(e)
	return nil
}

// Get returns the stored entry most similar to query, if its cosine
// similarity is at or above the threshold. The matched entry is promoted to
// most-recently-used. A zero-magnitude query never matches.
func (m *Memory) Get(query vsa.Vector) (Match, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dims != 0 && query.Dims() != m.dims {
		return Match{}, false, &vsa.ErrDimensionMismatch{Expected: m.dims, Actual: query.Dims()}
	}

	bestElem, bestSim, err := m.scanLocked(query)
	if err != nil {
		return Match{}, false, err
	}
	if bestElem == nil {
		m.misses++
		return Match{}, false, nil
	}

	m.lru.MoveToFront(bestElem)
	m.hits++
	m.simSum += bestSim
	e := bestElem.Value.(*entry)
	return Match{Label: e.label, Vector: e.vec, Value: e.value, Similarity: bestSim}, true, nil
}

// Delete removes the entry stored under label.
// Returns true if an entry was found and removed.
func (m *Memory) Delete(label string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.index[label]
	if !ok {
		return false
	}
	m.removeLocked(elem)
	return true
}

// Len returns the current number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	n := m.lru.Len()
	m.mu.Unlock()
	return n
}

// Stats returns a point-in-time snapshot of memory metrics.
func (m *Memory) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := m.hits + m.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(m.hits) / float64(total)
	}
	avgSim := 0.0
	if m.hits > 0 {
		avgSim = m.simSum / float64(m.hits)
	}

	return Stats{
		Entries:     m.lru.Len(),
		Hits:        m.hits,
		Misses:      m.misses,
		Sets:        m.sets,
		HitRate:     hitRate,
		AvgSimOnHit: avgSim,
	}
}

// scanLocked performs a linear similarity scan and returns the best-matching
// element at or above m.threshold, or nil if no match is found.
// Must be called with m.mu held.
func (m *Memory) scanLocked(query vsa.Vector) (*list.Element, float64, error) {
	var bestElem *list.Element
	var bestSim float64

	for elem := m.lru.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry)
		s, err := vsa.CosSim(query, e.vec)
		if err != nil {
			return nil, 0, err
		}
		if s >= m.threshold && s > bestSim {
			bestSim = s
			bestElem = elem
		}
	}
	return bestElem, bestSim, nil
}

func (m *Memory) evictLocked() {
	if back := m.lru.Back(); back != nil {
		m.removeLocked(back)
	}
}

func (m *Memory) removeLocked(elem *list.Element) {
	e := elem.Value.(*entry)
	delete(m.index, e.label)
	m.lru.Remove(elem)
}
