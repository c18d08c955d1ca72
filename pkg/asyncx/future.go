// Package asyncx normalizes collaborators that answer through a completion
// callback, through a returned future, or both, into a single Future.
package asyncx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic wraps a value recovered from a panicking collaborator.
var ErrPanic = errors.New("asyncx: collaborator panicked")

// Done is a completion callback. Exactly one of err or v is meaningful.
type Done[T any] func(err error, v T)

// Future is a single-assignment asynchronous result. The first completion
// wins; later ones are ignored.
type Future[T any] struct {
	once     sync.Once
	resolved chan struct{}

	val T
	err error
}

// NewFuture returns an unresolved future and the callback that resolves it.
func NewFuture[T any]() (*Future[T], Done[T]) {
	f := &Future[T]{resolved: make(chan struct{})}
	return f, f.complete
}

func (f *Future[T]) complete(err error, v T) {
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.resolved)
	})
}

// Resolved is closed once the future has an outcome.
func (f *Future[T]) Resolved() <-chan struct{} {
	return f.resolved
}

// Await blocks until the future resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.resolved:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then calls done with the outcome once the future resolves. It does not
// block the caller.
func (f *Future[T]) Then(done Done[T]) {
	select {
	case <-f.resolved:
		done(f.err, f.val)
	default:
		go func() {
			<-f.resolved
			done(f.err, f.val)
		}()
	}
}

// ThenContext is Then bounded by ctx. If ctx ends before the future
// resolves, done receives ctx.Err() and the waiting goroutine exits.
func (f *Future[T]) ThenContext(ctx context.Context, done Done[T]) {
	select {
	case <-f.resolved:
		done(f.err, f.val)
	default:
		go func() {
			select {
			case <-f.resolved:
				done(f.err, f.val)
			case <-ctx.Done():
				var zero T
				done(ctx.Err(), zero)
			}
		}()
	}
}

// Resolve invokes call with an appended completion callback. If call also
// returns a future, its outcome is bridged into the same completion path, so
// the collaborator may answer through either channel. The bridge is released
// when ctx ends.
func Resolve[T any](ctx context.Context, call func(done Done[T]) *Future[T]) *Future[T] {
	f, done := NewFuture[T]()

	func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				done(fmt.Errorf("%w: %v", ErrPanic, r), zero)
			}
		}()

		if ret := call(done); ret != nil && ret != f {
			ret.ThenContext(ctx, done)
		}
	}()

	return f
}

// Go runs fn in its own goroutine and returns a future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f, done := NewFuture[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				done(fmt.Errorf("%w: %v", ErrPanic, r), zero)
			}
		}()
		v, err := fn()
		done(err, v)
	}()
	return f
}

// Value returns a future already resolved with v.
func Value[T any](v T) *Future[T] {
	f, done := NewFuture[T]()
	done(nil, v)
	return f
}

// Fail returns a future already failed with err.
func Fail[T any](err error) *Future[T] {
	f, done := NewFuture[T]()
	var zero T
	done(err, zero)
	return f
}
