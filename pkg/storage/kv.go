package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// KV is the key-value capability every store persists through. Values are opaque strings;
// the stores write whole collections as JSON arrays.
type KV interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key string, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// ExpiringKV is implemented by backends that can drop a key on their own after ttl.
type ExpiringKV interface {
	KV
	SetItemWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error
}

var ErrEmptyKey = errors.New("storage: empty key")

// GetJSON decodes the value under key into out. found is false when the key is absent.
func GetJSON(ctx context.Context, kv KV, key string, out any) (bool, error) {
	raw, found, err := kv.GetItem(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("storage: decode %q: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, kv KV, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", key, err)
	}
	return kv.SetItem(ctx, key, string(raw))
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
