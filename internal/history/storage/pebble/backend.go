package pebble

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/cockroachdb/pebble"
	"github.com/picatz/gpt3/internal/history/storage"
)

var _ storage.Backend[string, any] = (*Backend[string, any])(nil)

// Backend is a storage backend that uses Pebble as the underlying storage engine.
//
// Pebble can use an in-memory filesystem or a directory on disk, depending on
// the options provided. The CLI keeps its history in a directory on disk, unless
// asked for a temporary session.
type Backend[K, V any] struct {
	db    *pebble.DB
	codec storage.Codec[K, V]
}

// NewBackend opens (or creates) a Pebble database in dirname.
func NewBackend[K, V any](dirname string, opts *pebble.Options, codec storage.Codec[K, V]) (*Backend[K, V], error) {
	db, err := pebble.Open(dirname, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}

	return &Backend[K, V]{db: db, codec: codec}, nil
}

// Get retrieves a value by its key.
func (b *Backend[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V

	keyBytes, err := b.codec.EncodeKey(key)
	if err != nil {
		return zero, false, err
	}

	valueBytes, closer, err := b.db.Get(keyBytes)
	if errors.Is(err, pebble.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to get value: %w", err)
	}
	defer closer.Close()

	value, err := b.codec.DecodeValue(valueBytes)
	if err != nil {
		return zero, false, err
	}

	return value, true, nil
}

// Set stores a key-value pair, replacing any previous value.
func (b *Backend[K, V]) Set(ctx context.Context, key K, value V) error {
	keyBytes, err := b.codec.EncodeKey(key)
	if err != nil {
		return err
	}

	valueBytes, err := b.codec.EncodeValue(value)
	if err != nil {
		return err
	}

	if err := b.db.Set(keyBytes, valueBytes, pebble.Sync); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a key-value pair. Deleting a missing key is not an error.
func (b *Backend[K, V]) Delete(ctx context.Context, key K) error {
	keyBytes, err := b.codec.EncodeKey(key)
	if err != nil {
		return err
	}

	if err := b.db.Delete(keyBytes, pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	return nil
}

// List retrieves a page of key-value pairs in ascending key order.
func (b *Backend[K, V]) List(ctx context.Context, pageSize *int, pageToken *K) (iter.Seq2[K, V], *K, error) {
	iterOpts := &pebble.IterOptions{}

	if pageToken != nil {
		lowerBoundKey, err := b.codec.EncodeKey(*pageToken)
		if err != nil {
			return nil, nil, err
		}
		iterOpts.LowerBound = lowerBoundKey
	}

	listLimit := storage.DefaultListPageSize
	if pageSize != nil {
		listLimit = *pageSize
	}

	it, err := b.db.NewIter(iterOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pebble iterator: %w", err)
	}
	defer it.Close()

	var (
		entries       []storage.Entry[K, V]
		nextPageToken *K
	)

	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("stopped iteration via context: %w", err)
		}

		if len(entries) >= listLimit {
			nextKey, err := b.codec.DecodeKey(it.Key())
			if err != nil {
				return nil, nil, err
			}
			nextPageToken = &nextKey
			break
		}

		k, err := b.codec.DecodeKey(it.Key())
		if err != nil {
			return nil, nil, err
		}

		v, err := b.codec.DecodeValue(it.Value())
		if err != nil {
			return nil, nil, err
		}

		entries = append(entries, storage.Entry[K, V]{Key: k, Value: v})
	}
	if err := it.Error(); err != nil {
		return nil, nil, fmt.Errorf("failed to list items: %w", err)
	}

	return storage.Seq(entries), nextPageToken, nil
}

// Flush flushes the memtable to disk.
func (b *Backend[K, V]) Flush(ctx context.Context) error {
	if err := b.db.Flush(); err != nil {
		return fmt.Errorf("failed to flush pebble database: %w", err)
	}
	return nil
}

// Close closes the database.
func (b *Backend[K, V]) Close(ctx context.Context) error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("failed to close pebble database: %w", err)
	}
	return nil
}
