// Package storage is the serialization boundary between the session state and
// the key-value store. Values are stored as JSON; a missing or corrupt value
// reads back as "not there" rather than as an error, so state loading can
// always fall back to empty collections.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guidolabarca009-sketch/chat-app/internal/kv"
	"github.com/guidolabarca009-sketch/chat-app/internal/logging"
)

// Store keys. Values are JSON-encoded arrays/strings.
const (
	KeyUsers       = "users"
	KeyMessages    = "messages"
	KeyCurrentUser = "currentUser"
	KeyTheme       = "theme"
)

// Adapter wraps a kv.Store with JSON (de)serialization.
type Adapter struct {
	store kv.Store
	log   logging.Logger
}

func NewAdapter(store kv.Store, log logging.Logger) *Adapter {
	return &Adapter{store: store, log: log}
}

// Load reads the value at key into dest and reports whether dest was
// populated. A missing key, a read failure, or corrupt JSON all return false;
// dest is left untouched in those cases. Failures are logged, never surfaced.
func (a *Adapter) Load(ctx context.Context, key string, dest any) bool {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		a.log.Warn(ctx, "store read failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		a.log.Warn(ctx, "discarding corrupt store value", "key", key, "error", err)
		return false
	}
	return true
}

// Save serializes value as JSON and writes it, overwriting any prior value.
func (a *Adapter) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return a.store.Set(ctx, key, raw)
}

// Remove deletes the key; removing an absent key is a no-op.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	return a.store.Delete(ctx, key)
}
