// Package cache provides a generic, strictly bounded LRU cache that owns its
// values.
//
// LRU is built for resources with an explicit lifetime, such as GPU
// textures. Every value that leaves the cache, whether it is evicted,
// replaced, removed or cleared, is handed to the eviction callback exactly
// once, so the callback is the single place that releases it.
//
//	c := cache.NewLRU[Key, *Texture](64, func(_ Key, t *Texture) { t.Destroy() })
//	if !c.Contains(k) {
//		c.Insert(k, build(k))
//	}
//	tex := c.Get(k)
//
// # Thread Safety
//
// LRU is not safe for concurrent use. It is meant to be owned by a single
// rendering goroutine.
package cache
