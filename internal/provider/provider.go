// Package provider distributes a todo list to the components of a UI.
//
// A Provider owns the current list, the dispatch func that applies actions
// to it and the id counter used for new items. Each of the three is carried
// on its own Channel, so a component that only dispatches is never woken by
// a list change.
package provider

import (
	"log/slog"
	"sync"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todo"
)

// Dispatch applies an action to the provider's list.
type Dispatch func(todo.Action)

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// Provider is a mounted distribution scope.
type Provider struct {
	mu     sync.Mutex
	closed bool
	logger *slog.Logger

	state    *Channel[model.List]
	dispatch *Channel[Dispatch]
	nextID   *Channel[*NextID]

	// Held outside the channels so they outlive Close.
	dispatchFn Dispatch
	ids        *NextID
}

// New mounts a provider holding a copy of seed. The id counter starts one
// past the highest seed id.
func New(seed model.List, opts ...Option) *Provider {
	p := &Provider{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	p.dispatchFn = p.apply
	p.ids = newNextID(model.NextIDAfter(seed))
	p.state = newChannel(seed.Clone())
	p.nextID = newChannel(p.ids)
	p.dispatch = newChannel(p.dispatchFn)
	return p
}

// State returns a copy of the current list.
func (p *Provider) State() model.List { return p.state.Load().Clone() }

// Dispatch returns the provider's dispatch func. It is the same func for
// the provider's whole life and stays callable after Close, as a no-op.
func (p *Provider) Dispatch() Dispatch { return p.dispatchFn }

// NextID returns the provider's id counter.
func (p *Provider) NextID() *NextID { return p.ids }

// StateChannel, DispatchChannel and NextIDChannel expose the raw channels
// for components that want to subscribe.
func (p *Provider) StateChannel() *Channel[model.List]  { return p.state }
func (p *Provider) DispatchChannel() *Channel[Dispatch] { return p.dispatch }
func (p *Provider) NextIDChannel() *Channel[*NextID]    { return p.nextID }

// Close unmounts the provider. The list is discarded, listeners are dropped
// and later dispatches are ignored.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.state.close()
	p.dispatch.close()
	p.nextID.close()
}

func (p *Provider) apply(a todo.Action) {
	next, subs, ok := p.reduce(a)
	if !ok {
		p.logger.Warn("dispatch after unmount", "kind", kindOf(a))
		return
	}
	p.logger.Debug("dispatch", "kind", kindOf(a), "id", actionID(a), "items", len(next))
	notify(subs, next)
}

// reduce runs the transition under the provider lock. subs is empty when
// the list did not change.
func (p *Provider) reduce(a todo.Action) (model.List, []subscriber[model.List], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, nil, false
	}
	cur := p.state.Load()
	next := todo.Reduce(cur, a)
	if next.Equal(cur) {
		return next, nil, true
	}
	return next, p.state.store(next), true
}

func kindOf(a todo.Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.Kind()
}

func actionID(a todo.Action) int {
	switch a := a.(type) {
	case todo.Create:
		return a.Todo.ID
	case todo.Toggle:
		return a.ID
	case todo.Remove:
		return a.ID
	}
	return 0
}
