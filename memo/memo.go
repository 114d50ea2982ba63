// Package memo caches parse results keyed by a hash of the input markup.
//
// Product pages are rebuilt on every disclosure toggle while the stored
// markup rarely changes, so parsers are wrapped in a bounded cache. A bloom
// doorkeeper keeps markup seen only once out of the cache.
package memo

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/bloom"
)

// DefaultCapacity is the number of results kept before the cache resets.
const DefaultCapacity = 1024

// Stats reports cache activity.
type Stats struct {
	Hits    int
	Misses  int
	Entries int
}

type cache[V any] struct {
	mu       sync.Mutex
	capacity int
	door     *bloom.Doorkeeper
	entries  map[uint64][]V
	clone    func(V) V
	hits     int
	misses   int
}

// newCache returns a cache holding at most capacity results. clone copies
// any memory a value shares with the caller; nil means values are plain.
func newCache[V any](capacity int, clone func(V) V) *cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &cache[V]{
		capacity: capacity,
		door:     bloom.NewDoorkeeper(uint(capacity)*4, 0.01),
		entries:  make(map[uint64][]V, capacity),
		clone:    clone,
	}
}

func (c *cache[V]) cloneAll(v []V) []V {
	out := slices.Clone(v)
	if c.clone != nil {
		for i := range out {
			out[i] = c.clone(out[i])
		}
	}
	return out
}

// get returns a copy of the cached result for markup, computing it on a miss.
func (c *cache[V]) get(markup string, compute func(string) []V) []V {
	key := xxhash.Sum64String(markup)

	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return c.cloneAll(v)
	}
	c.misses++
	c.mu.Unlock()

	v := compute(markup)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.door.Admit(key) {
		return v
	}
	if len(c.entries) >= c.capacity {
		clear(c.entries)
		c.door.Reset()
	}
	c.entries[key] = c.cloneAll(v)
	return v
}

func (c *cache[V]) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}

// Ensure cached parsers implement the domain interfaces.
var (
	_ tourcopy.ItineraryParser = (*ItineraryParser)(nil)
	_ tourcopy.FAQParser       = (*FAQParser)(nil)
)

// ItineraryParser caches the days produced by a wrapped parser.
type ItineraryParser struct {
	next  tourcopy.ItineraryParser
	cache *cache[tourcopy.ItineraryDay]
}

// NewItineraryParser wraps next with a cache of the given capacity.
// A non-positive capacity selects DefaultCapacity.
func NewItineraryParser(next tourcopy.ItineraryParser, capacity int) *ItineraryParser {
	return &ItineraryParser{next: next, cache: newCache(capacity, cloneDay)}
}

func cloneDay(d tourcopy.ItineraryDay) tourcopy.ItineraryDay {
	d.Items = slices.Clone(d.Items)
	return d
}

// ParseItinerary returns the cached days for markup or delegates.
func (p *ItineraryParser) ParseItinerary(markup string) []tourcopy.ItineraryDay {
	return p.cache.get(markup, p.next.ParseItinerary)
}

// Stats returns the cache activity so far.
func (p *ItineraryParser) Stats() Stats {
	return p.cache.stats()
}

// FAQParser caches the entries produced by a wrapped parser.
type FAQParser struct {
	next  tourcopy.FAQParser
	cache *cache[tourcopy.FaqEntry]
}

// NewFAQParser wraps next with a cache of the given capacity.
// A non-positive capacity selects DefaultCapacity.
func NewFAQParser(next tourcopy.FAQParser, capacity int) *FAQParser {
	return &FAQParser{next: next, cache: newCache[tourcopy.FaqEntry](capacity, nil)}
}

// ParseFAQ returns the cached entries for markup or delegates.
func (p *FAQParser) ParseFAQ(markup string) []tourcopy.FaqEntry {
	return p.cache.get(markup, p.next.ParseFAQ)
}

// Stats returns the cache activity so far.
func (p *FAQParser) Stats() Stats {
	return p.cache.stats()
}
