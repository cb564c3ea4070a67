// Package cache provides evaluation-record caching keyed by the full device
// parameter set.
//
// A build evaluation is deterministic in its inputs, so the serialized
// machine record can be reused whenever the same parameter set is evaluated
// again. This matters for the HTTP service, where design-scan tooling posts
// many repeated parameter sets.
package cache

import (
	"context"
	"time"

	"github.com/fusionkit/torus/pkg/params"
)

// Cache stores serialized evaluation records.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL; zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RecordKey derives the cache key for an evaluation of m. Every field
// participates in the hash, so the key must be taken from the loaded
// parameter set before the solvers write solved geometry into it.
func RecordKey(m *params.Machine) string {
	return hashKey("record", m)
}
