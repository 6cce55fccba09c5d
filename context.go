package storex

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoStore is the initialization fault reported when a store is looked up
// from a context that was never populated with NewContext.
var ErrNoStore = errors.New("storex: no store in context")

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the store.
//
// Consumers should prefer receiving the *Store explicitly. This accessor
// exists for hosts that require ambient lookup; retrieval fails fast when
// nothing was provided.
func NewContext[S, A any](ctx context.Context, s *Store[S, A]) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the store placed with NewContext. It returns
// ErrNoStore if none was provided or if the provided store's state and
// action types do not match the requested ones.
func FromContext[S, A any](ctx context.Context) (*Store[S, A], error) {
	v := ctx.Value(ctxKey{})
	if v == nil {
		return nil, ErrNoStore
	}
	s, ok := v.(*Store[S, A])
	if !ok {
		return nil, fmt.Errorf("%w: provided store has type %T", ErrNoStore, v)
	}
	return s, nil
}

// MustFromContext is FromContext that panics on failure. Use only where a
// missing store is a programmer error.
func MustFromContext[S, A any](ctx context.Context) *Store[S, A] {
	s, err := FromContext[S, A](ctx)
	if err != nil {
		panic(err)
	}
	return s
}
