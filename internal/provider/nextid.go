package provider

import "sync/atomic"

// NextID hands out item ids. It only moves forward, so an id is never
// reused for the life of its provider, removals included.
type NextID struct {
	n atomic.Int64
}

func newNextID(start int) *NextID {
	c := &NextID{}
	c.n.Store(int64(start))
	return c
}

// Peek returns the id the next Take will hand out.
func (c *NextID) Peek() int { return int(c.n.Load()) }

// Take returns the current id and advances the counter.
func (c *NextID) Take() int { return int(c.n.Add(1) - 1) }
