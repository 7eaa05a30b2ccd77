package provider

import (
	"context"

	"github.com/idilsaglam/todo/internal/model"
)

type (
	stateKey    struct{}
	dispatchKey struct{}
	nextIDKey   struct{}
)

// WithProvider scopes p's three channels to ctx and its children.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	ctx = context.WithValue(ctx, stateKey{}, p.state)
	ctx = context.WithValue(ctx, dispatchKey{}, p.dispatch)
	return context.WithValue(ctx, nextIDKey{}, p.nextID)
}

// StateFrom returns the list channel of the enclosing provider.
func StateFrom(ctx context.Context) (*Channel[model.List], error) {
	c, ok := ctx.Value(stateKey{}).(*Channel[model.List])
	if !ok || !c.active() {
		return nil, ErrNoStateProvider
	}
	return c, nil
}

// DispatchFrom returns the dispatch func of the enclosing provider.
func DispatchFrom(ctx context.Context) (Dispatch, error) {
	c, ok := ctx.Value(dispatchKey{}).(*Channel[Dispatch])
	if !ok || !c.active() {
		return nil, ErrNoDispatchProvider
	}
	return c.Load(), nil
}

// NextIDFrom returns the id counter of the enclosing provider.
func NextIDFrom(ctx context.Context) (*NextID, error) {
	c, ok := ctx.Value(nextIDKey{}).(*Channel[*NextID])
	if !ok || !c.active() {
		return nil, ErrNoNextIDProvider
	}
	return c.Load(), nil
}

// MustState is StateFrom for callers that treat a missing provider as a bug.
func MustState(ctx context.Context) *Channel[model.List] {
	c, err := StateFrom(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

// MustDispatch panics with ErrNoDispatchProvider outside a provider.
func MustDispatch(ctx context.Context) Dispatch {
	d, err := DispatchFrom(ctx)
	if err != nil {
		panic(err)
	}
	return d
}

// MustNextID panics with ErrNoNextIDProvider outside a provider.
func MustNextID(ctx context.Context) *NextID {
	n, err := NextIDFrom(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
