// Package cache stores rendered wireframe artifacts between runs.
//
// # Backends
//
//   - [NullCache]: stores nothing; the default when caching is off
//   - [FileCache]: one JSON entry file per key under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for hosts rendering many
//     documents across processes
//
// # Keys
//
// A [Keyer] turns content hashes and the options that influence an output
// into stable string keys. An artifact depends on the source, the screen
// constants, the output format and the style. [ScopedKeyer] prefixes every key so several
// tenants can share one backend.
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(src), cache.ArtifactKeyOpts{Format: "svg"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLArtifact is the lifetime of a rendered artifact.
const TTLArtifact = 7 * 24 * time.Hour

// NullCache stores nothing. Every Get misses; it backs --no-cache and the
// "none" backend.
type NullCache struct{}

// NewNullCache returns the no-op cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
