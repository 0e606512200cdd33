package storage

import (
	"context"
	"iter"
)

// Entry is a single key-value pair held by a Backend.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Backend stores values by key, and lists them in ascending key order.
//
// List returns at most pageSize entries starting at pageToken (inclusive),
// along with the token of the next page, or nil on the last page.
type Backend[K, V any] interface {
	Get(ctx context.Context, key K) (value V, found bool, err error)
	Set(ctx context.Context, key K, value V) error
	Delete(ctx context.Context, key K) error
	List(ctx context.Context, pageSize *int, pageToken *K) (entries iter.Seq2[K, V], nextPageToken *K, err error)
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}

// DefaultListPageSize is the page size used when List is given none.
const DefaultListPageSize = 25

func ptr[T any](v T) *T {
	return &v
}

// PageSize returns a page size argument for List.
func PageSize(pageSize int) *int {
	return ptr(pageSize)
}

// PageToken returns a page token argument for List.
func PageToken[T any](pageToken T) *T {
	return ptr(pageToken)
}

// Seq yields the given entries in order.
func Seq[K, V any](entries []Entry[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
