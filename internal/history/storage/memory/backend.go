package memory

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/picatz/gpt3/internal/history/storage"
)

var _ storage.Backend[string, string] = (*Backend[string, string])(nil)

// Backend is an in-memory storage backend that keeps its entries sorted by key.
// It is safe for concurrent use.
type Backend[K cmp.Ordered, V any] struct {
	mu    sync.RWMutex
	store []storage.Entry[K, V]
}

// NewBackend creates a new, empty in-memory storage backend.
func NewBackend[K cmp.Ordered, V any]() *Backend[K, V] {
	return &Backend[K, V]{}
}

func (b *Backend[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(b.store, key, func(e storage.Entry[K, V], key K) int {
		return cmp.Compare(e.Key, key)
	})
}

// Get retrieves a value by its key.
func (b *Backend[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i, ok := b.search(key); ok {
		return b.store[i].Value, true, nil
	}

	var zero V
	return zero, false, nil
}

// Set stores a key-value pair, replacing any previous value.
func (b *Backend[K, V]) Set(ctx context.Context, key K, value V) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.search(key)
	if ok {
		b.store[i].Value = value
		return nil
	}

	b.store = slices.Insert(b.store, i, storage.Entry[K, V]{Key: key, Value: value})
	return nil
}

// Delete removes a key-value pair. Deleting a missing key is not an error.
func (b *Backend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i, ok := b.search(key); ok {
		b.store = slices.Delete(b.store, i, i+1)
	}

	return nil
}

// List retrieves a page of key-value pairs in ascending key order.
func (b *Backend[K, V]) List(ctx context.Context, pageSize *int, pageToken *K) (iter.Seq2[K, V], *K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start := 0
	if pageToken != nil {
		start, _ = b.search(*pageToken)
	}

	limit := storage.DefaultListPageSize
	if pageSize != nil {
		limit = *pageSize
	}

	end := min(start+limit, len(b.store))

	var nextPageToken *K
	if end < len(b.store) {
		nextPageToken = storage.PageToken(b.store[end].Key)
	}

	// Copy, so later writes do not show up in an iteration in progress.
	entries := slices.Clone(b.store[start:end])

	return storage.Seq(entries), nextPageToken, nil
}

// Flush is a no-op for the in-memory backend.
func (b *Backend[K, V]) Flush(context.Context) error {
	return nil
}

// Close is a no-op for the in-memory backend.
func (b *Backend[K, V]) Close(context.Context) error {
	return nil
}
