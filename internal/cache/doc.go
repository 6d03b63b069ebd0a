// Package cache provides a generic LRU cache with a soft size limit.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// When an insertion pushes the cache past its soft limit, the least recently
// used quarter of the entries is evicted in one batch, so steady-state
// insertions do not evict on every call.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
