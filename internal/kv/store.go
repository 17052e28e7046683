// Package kv implements the key-value store underneath the storage adapter.
// The production implementation is a local SQLite database; an in-memory
// implementation exists for tests.
package kv

import "context"

// Store is a flat string-keyed byte store.
//
// Get returns (nil, nil) for a missing key; callers distinguish "absent" from
// "present but empty" only by the nil slice, which is enough for the adapter.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
