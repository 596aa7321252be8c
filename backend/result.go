package backend

import (
	"context"

	"github.com/finsight/dashboard/internal/errors"
)

// State of a page data fetch.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateFailed
)

// Result is the three-state outcome of a page fetch: loading, loaded with
// data, or failed with an error. A failed fetch is never rendered as data;
// pages show an explicit "data unavailable" state instead.
type Result[T any] struct {
	State State
	Data  T
	Err   error
}

func Loaded[T any](data T) Result[T] {
	return Result[T]{State: StateLoaded, Data: data}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{State: StateFailed, Err: err}
}

// IsLoaded and IsFailed exist for template conditionals, which cannot
// compare typed constants.
func (r Result[T]) IsLoaded() bool { return r.State == StateLoaded }
func (r Result[T]) IsFailed() bool { return r.State == StateFailed }

// Unauthorized reports whether the failure was a rejected credential, which
// callers translate into session invalidation.
func (r Result[T]) Unauthorized() bool {
	return r.State == StateFailed && errors.Is(r.Err, errors.ErrUnauthorized)
}

// Fetch runs fn and folds its outcome into a Result.
func Fetch[T any](ctx context.Context, fn func(context.Context) (T, error)) Result[T] {
	data, err := fn(ctx)
	if err != nil {
		return Failed[T](err)
	}
	return Loaded(data)
}
