// Package httpcache stores raw HTTP response bodies keyed by request URL.
package httpcache

import "context"

// Store is a response cache keyed by request URL.
type Store interface {
	// Get retrieves a cached body. Returns nil, false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a body for the given key, replacing any previous entry.
	Set(ctx context.Context, key string, value []byte) error
}
