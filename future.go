package gpt3

import "context"

// Future is the eventual result of a call started with Go.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on its own goroutine and returns a Future for its result, so
// several requests can be in flight at once without waiting on each other.
// The futures may complete in any order.
//
// # Example
//
//	completion := gpt3.Go(ctx, func(ctx context.Context) (*gpt3.Response, error) {
//		return client.Complete(ctx, &gpt3.CompletionRequest{Prompt: []string{"Hello"}})
//	})
//
//	search := gpt3.Go(ctx, func(ctx context.Context) (*gpt3.Response, error) {
//		return client.Search(ctx, &gpt3.SearchRequest{Query: "the", Documents: docs})
//	})
//
//	resp, err := completion.Wait(ctx)
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done, whichever comes
// first. Giving up on the wait does not cancel the call itself; that is
// controlled by the context given to Go.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
