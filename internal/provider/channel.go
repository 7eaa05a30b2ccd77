package provider

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Channel holds one value and the listeners that redraw when it changes.
// Values handed out by Load and to listeners are shared; treat them as read-only.
type Channel[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   []subscriber[T]
	seq    int
	closed bool
}

func newChannel[T any](v T) *Channel[T] {
	return &Channel[T]{value: v}
}

// Load returns the current value.
func (c *Channel[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Subscribe registers fn to run after every change. The returned func
// removes it; calling it more than once is fine.
func (c *Channel[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	c.seq++
	id := c.seq
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// store swaps the value and returns the listeners to notify.
func (c *Channel[T]) store(v T) []subscriber[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	return c.subs
}

func notify[T any](subs []subscriber[T], v T) {
	for _, s := range subs {
		s.fn(v)
	}
}

func (c *Channel[T]) active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed
}

func (c *Channel[T]) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.subs = nil
	c.closed = true
}
