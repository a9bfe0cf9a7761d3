// cache/cache.go
package cache

import "time"

// Store is a keyed cache with per-entry TTL. Values are opaque serialized
// payloads (JSON in practice). Implementations must be safe for concurrent
// use; at-most-stale-by-TTL is the only consistency guarantee.
type Store interface {
	// Get returns the value for key, or false on miss or expiry.
	Get(key string) ([]byte, bool)
	// Set replaces the entry for key with a fresh expiry.
	Set(key string, value []byte, ttl time.Duration)
	// Delete removes a single entry.
	Delete(key string)
	// Clear drops every entry. Called after a bulk import.
	Clear()
	// Prune evicts expired entries eagerly and reports how many were removed.
	// Backends with native expiry may return 0.
	Prune() int
}
