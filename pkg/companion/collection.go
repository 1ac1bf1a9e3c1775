package companion

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/storage"
)

// collection is an in-memory list of records per owner, loaded lazily from the KV store
// and written back whole as a JSON array after every change.
type collection[T any] struct {
	kv    storage.KV
	key   func(owner string) string
	idOf  func(*T) string
	mu    sync.Mutex
	cache map[string][]T
}

func newCollection[T any](kv storage.KV, key func(owner string) string, idOf func(*T) string) *collection[T] {
	return &collection[T]{
		kv:    kv,
		key:   key,
		idOf:  idOf,
		cache: make(map[string][]T),
	}
}

func ownerKey(prefix string) func(string) string {
	return func(owner string) string {
		return prefix + "_" + owner
	}
}

func sharedKey(key string) func(string) string {
	return func(string) string {
		return key
	}
}

func collectionLogger(key string) *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameCompanionCore, zap.String("key", key))
}

// load must be called with c.mu held.
func (c *collection[T]) load(ctx context.Context, owner string) ([]T, error) {
	if items, ok := c.cache[owner]; ok {
		return items, nil
	}

	var items []T
	if _, err := storage.GetJSON(ctx, c.kv, c.key(owner), &items); err != nil {
		collectionLogger(c.key(owner)).Error("Failed to load collection", zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	c.cache[owner] = items
	return items, nil
}

// persist must be called with c.mu held. Storage failures are logged; the in-memory
// state is kept either way.
func (c *collection[T]) persist(ctx context.Context, owner string, items []T) {
	c.cache[owner] = items
	if err := storage.SetJSON(ctx, c.kv, c.key(owner), items); err != nil {
		collectionLogger(c.key(owner)).Error("Failed to save collection", zap.Error(err))
	}
}

// list returns a copy of the owner's records. A collection that cannot be loaded reads
// as empty.
func (c *collection[T]) list(ctx context.Context, owner string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx, owner)
	if err != nil {
		return []T{}
	}
	return slices.Clone(items)
}

// update hands a copy of the owner's records to fn and persists the result when fn
// reports a change.
func (c *collection[T]) update(ctx context.Context, owner string, fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx, owner)
	if err != nil {
		return err
	}

	next, changed, err := fn(slices.Clone(items))
	if err != nil {
		return err
	}
	if changed {
		c.persist(ctx, owner, next)
	}
	return nil
}

func (c *collection[T]) indexOf(items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return c.idOf(&item) == id
	})
}

// reload drops the cached copy so the next access reads the KV store again.
func (c *collection[T]) reload(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, owner)
}
