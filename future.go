package riptide

import (
	"context"
	"sync"
)

// Future represents a value that becomes available once an asynchronous
// operation completes — the boundary spec.md models as Future<Response>/
// Future<Unit>. There is no promise/future library anywhere in the
// retrieved corpus, so this is a small hand-rolled channel + sync.Once
// promise, the standard shape for this in idiomatic Go.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// newFuture returns a pending Future and the function that completes it.
// The completion function is idempotent: only the first call has any
// effect, matching the "settle once" semantics every future/promise
// implementation relies on.
func newFuture[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	complete := func(v T, err error) {
		f.once.Do(func() {
			f.val = v
			f.err = err
			close(f.done)
		})
	}
	return f, complete
}

// Completed returns a Future that has already succeeded with v.
func Completed[T any](v T) *Future[T] {
	f, complete := newFuture[T]()
	complete(v, nil)
	return f
}

// Failed returns a Future that has already failed with err.
func Failed[T any](err error) *Future[T] {
	f, complete := newFuture[T]()
	var zero T
	complete(zero, err)
	return f
}

// Get blocks until the Future settles or ctx is done, whichever comes
// first. A context cancellation does not cancel the underlying
// operation — see Future.Done for cooperative cancellation.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed once the Future has settled. Plugins that
// own cancellation can select on it alongside their own cancellation
// signal instead of blocking in Get.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// MapError returns a Future that resolves exactly like f on success, or
// to fn(err) on failure. It is the "observe completion by attaching a
// continuation to next().get()" plugin primitive of spec.md §4.6 —
// xfail.TemporaryExceptionPlugin is built directly on it.
func MapError[T any](f *Future[T], fn func(err error) error) *Future[T] {
	out, complete := newFuture[T]()
	go func() {
		v, err := f.Get(context.Background())
		if err != nil {
			complete(v, fn(err))
			return
		}
		complete(v, nil)
	}()
	return out
}
