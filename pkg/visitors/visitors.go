package visitors

import (
	"sync"
	"time"
)

// Counter backs the visitor bubble: a seeded base count that ticks upward
// while the service runs. Purely cosmetic engagement copy.
type Counter struct {
	mu    sync.Mutex
	count int
}

func NewCounter(base int) *Counter {
	if base < 0 {
		base = 0
	}
	return &Counter{count: base}
}

func (c *Counter) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Counter) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

// Start increments the count on the given interval until stop is closed.
func (c *Counter) Start(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Increment()
			}
		}
	}()
}
