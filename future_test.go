package gpt3_test

import (
	"context"
	"errors"
	"testing"

	"github.com/picatz/gpt3"
	"github.com/shoenig/test/must"
)

func TestFuture(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		f := gpt3.Go(t.Context(), func(context.Context) (int, error) {
			return 42, nil
		})

		<-f.Done()

		v, err := f.Wait(t.Context())
		must.NoError(t, err)
		must.Eq(t, 42, v)
	})

	t.Run("error", func(t *testing.T) {
		errBoom := errors.New("boom")

		f := gpt3.Go(t.Context(), func(context.Context) (int, error) {
			return 0, errBoom
		})

		_, err := f.Wait(t.Context())
		must.ErrorIs(t, err, errBoom)
	})

	t.Run("wait gives up with its context", func(t *testing.T) {
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		f := gpt3.Go(t.Context(), func(context.Context) (int, error) {
			<-release
			return 1, nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := f.Wait(ctx)
		must.ErrorIs(t, err, context.Canceled)
	})
}
