// Package metrics holds the fileserver hit counter. It is created once at
// startup and injected where needed; nothing mutates it outside the
// middleware increment and the admin reset.
package metrics

import "sync/atomic"

type Counter struct {
	hits atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() {
	c.hits.Add(1)
}

func (c *Counter) Value() int64 {
	return c.hits.Load()
}

func (c *Counter) Reset() {
	c.hits.Store(0)
}
