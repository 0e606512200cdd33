// Package tests holds the behaviour every storage backend must share.
package tests

import (
	"testing"

	"github.com/picatz/gpt3/internal/history/storage"
	"github.com/shoenig/test/must"
)

type entry = storage.Entry[string, string]

func collect(t *testing.T, backend storage.Backend[string, string], pageSize *int, pageToken *string) ([]entry, *string) {
	t.Helper()

	seq, next, err := backend.List(t.Context(), pageSize, pageToken)
	must.NoError(t, err)

	var entries []entry
	for k, v := range seq {
		entries = append(entries, entry{Key: k, Value: v})
	}
	return entries, next
}

// BackendSuite tests a backend implementation of the storage package, using
// the provided (empty) backend instance to perform the tests.
func BackendSuite(t *testing.T, backend storage.Backend[string, string]) {
	t.Helper()

	ctx := t.Context()

	_, ok, err := backend.Get(ctx, "missing")
	must.NoError(t, err)
	must.False(t, ok)

	// Inserted out of order, listed in key order.
	for _, e := range []entry{{Key: "b", Value: "2"}, {Key: "c", Value: "3"}, {Key: "a", Value: "1"}} {
		must.NoError(t, backend.Set(ctx, e.Key, e.Value))
	}

	value, ok, err := backend.Get(ctx, "b")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "2", value)

	must.NoError(t, backend.Set(ctx, "b", "two"))

	value, ok, err = backend.Get(ctx, "b")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "two", value)

	page, next := collect(t, backend, storage.PageSize(2), nil)
	must.Eq(t, []entry{{Key: "a", Value: "1"}, {Key: "b", Value: "two"}}, page)
	must.NotNil(t, next)
	must.Eq(t, "c", *next)

	page, next = collect(t, backend, storage.PageSize(2), next)
	must.Eq(t, []entry{{Key: "c", Value: "3"}}, page)
	must.Nil(t, next)

	page, next = collect(t, backend, nil, nil)
	must.Len(t, 3, page)
	must.Nil(t, next)

	must.NoError(t, backend.Delete(ctx, "b"))
	must.NoError(t, backend.Delete(ctx, "b"))

	_, ok, err = backend.Get(ctx, "b")
	must.NoError(t, err)
	must.False(t, ok)

	page, _ = collect(t, backend, nil, nil)
	must.Eq(t, []entry{{Key: "a", Value: "1"}, {Key: "c", Value: "3"}}, page)

	must.NoError(t, backend.Flush(ctx))
}
