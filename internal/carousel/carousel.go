// Package carousel drives auto-advancing image indexes for the hero
// and product galleries. Each Carousel owns one ticker goroutine;
// instances are fully independent and Stop guarantees the advance
// callback never fires again.
package carousel

import (
	"sync"
	"time"
)

type Carousel struct {
	mu       sync.Mutex
	size     int
	index    int
	paused   bool
	interval time.Duration
	advance  func(index int)

	started bool
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New creates a carousel over size images that calls advance with the
// new index at every interval tick. Carousels over a single image
// never tick. Call Start to begin and Stop to tear down.
func New(size int, interval time.Duration, advance func(index int)) *Carousel {
	return &Carousel{
		size:     size,
		interval: interval,
		advance:  advance,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (c *Carousel) Start() {
	c.mu.Lock()
	if c.started || c.size <= 1 {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()
	go c.run()
}

func (c *Carousel) run() {
	defer close(c.done)
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.tick()
		}
	}
}

func (c *Carousel) tick() {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % c.size
	i := c.index
	cb := c.advance
	c.mu.Unlock()
	if cb != nil {
		cb(i)
	}
}

// Pause suspends auto-advance while a pointer or touch interaction is
// in progress. The ticker keeps running; ticks are ignored.
func (c *Carousel) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume re-enables auto-advance after an interaction ends.
func (c *Carousel) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Next advances manually, wrapping at the end.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size > 0 {
		c.index = (c.index + 1) % c.size
	}
	return c.index
}

// Prev steps back manually, wrapping at the start.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size > 0 {
		c.index = (c.index - 1 + c.size) % c.size
	}
	return c.index
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Stop tears the carousel down and blocks until the ticker goroutine
// has exited, so no advance callback can fire after Stop returns.
// Safe to call more than once.
func (c *Carousel) Stop() {
	c.once.Do(func() { close(c.stop) })
	c.mu.Lock()
	started := c.started
	c.mu.Unlock()
	if started {
		<-c.done
	}
}
