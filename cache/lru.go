package cache

import (
	"fmt"
	"reflect"
)

// LRU is a fixed-capacity least-recently-used cache.
//
// The cache owns its values: every value that leaves it is passed to the
// eviction callback exactly once. Capacity never grows and no entry is
// pinned, so after every Insert Len() <= Capacity().
//
// LRU is not safe for concurrent use.
type LRU[K comparable, V any] struct {
	entries  map[K]*lruEntry[K, V]
	order    lruList[K]
	capacity int
	onEvict  func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// lruEntry holds a cached value with its LRU node.
type lruEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewLRU creates a cache holding at most capacity entries. onEvict may be
// nil; otherwise it receives every value that leaves the cache.
//
// NewLRU panics if capacity <= 0.
func NewLRU[K comparable, V any](capacity int, onEvict func(K, V)) *LRU[K, V] {
	if capacity <= 0 {
		panic(fmt.Sprintf("cache: invalid LRU capacity %d", capacity))
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruEntry[K, V], capacity),
		capacity: capacity,
		onEvict:  onEvict,
	}
}

// Contains reports whether key is cached. It does not change recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the value for key and marks it most recently used.
//
// Get panics if key is not cached; check with Contains first or use Lookup.
func (c *LRU[K, V]) Get(key K) V {
	e, ok := c.entries[key]
	if !ok {
		panic(fmt.Sprintf("cache: Get of absent key %v", key))
	}
	c.order.MoveToFront(e.node)
	c.hits++
	return e.value
}

// Lookup returns the value for key and marks it most recently used.
// Returns (zero, false) and counts a miss if key is not cached.
func (c *LRU[K, V]) Lookup(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.order.MoveToFront(e.node)
	c.hits++
	return e.value, true
}

// Peek returns the value for key without changing recency or statistics.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Insert stores value under key as the most recently used entry.
//
// A value already cached under key is released through the eviction
// callback unless it is the very same value. Least recently used entries
// are then evicted until the cache is within capacity.
//
// A key that is not equal to itself, such as one holding a NaN, could
// never be found again. Its value is released at once instead of cached.
func (c *LRU[K, V]) Insert(key K, value V) {
	if key != key { //nolint:staticcheck // SA4000: NaN check
		c.release(key, value)
		return
	}
	if e, ok := c.entries[key]; ok {
		old := e.value
		e.value = value
		c.order.MoveToFront(e.node)
		if !sameValue(old, value) {
			c.release(key, old)
		}
		return
	}

	node := c.order.PushFront(key)
	c.entries[key] = &lruEntry[K, V]{value: value, node: node}

	for c.order.Len() > c.capacity {
		c.drop(c.order.oldestNode())
		c.evictions++
	}
}

// Remove deletes key and releases its value.
// Returns true if the entry was found and removed.
func (c *LRU[K, V]) Remove(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.drop(e.node)
	return true
}

// Clear releases every entry, least recently used first.
// Statistics are kept.
func (c *LRU[K, V]) Clear() {
	for c.order.Len() > 0 {
		c.drop(c.order.oldestNode())
	}
	c.order.Clear()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	return c.order.Keys()
}

// Stats returns current cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Len:       c.order.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *LRU[K, V]) ResetStats() {
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// drop unlinks node and releases the value stored under its key. A node
// whose key is no longer in the map is only unlinked.
func (c *LRU[K, V]) drop(node *lruNode[K]) {
	c.order.Remove(node)
	e, ok := c.entries[node.key]
	if !ok || e.node != node {
		return
	}
	delete(c.entries, node.key)
	c.release(node.key, e.value)
}

func (c *LRU[K, V]) release(key K, value V) {
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}

// sameValue reports whether a and b are identical comparable values.
// Values of non-comparable types are never considered the same.
func sameValue[V any](a, b V) bool {
	t := reflect.TypeOf(a)
	if t == nil || !t.Comparable() {
		return false
	}
	return any(a) == any(b)
}
