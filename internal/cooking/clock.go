package cooking

import (
	"sync"
	"time"
)

// DefaultTickInterval is the shared tick period for every countdown in a
// session: the detected timer, all custom timers, and the auto-advance
// pacer decrement once per interval.
const DefaultTickInterval = time.Second

// Clock is the session's single fixed-interval tick source. One clock
// drives every countdown so teardown is a single stop and all timers
// decrement in the same pass.
//
// Thread Safety: Start and Stop are safe for concurrent use. The onTick
// callback runs on the clock's goroutine.
type Clock struct {
	interval time.Duration
	onTick   func()

	mu       sync.Mutex
	running  bool
	ticker   *time.Ticker
	doneChan chan struct{}
}

// NewClock creates a clock that invokes onTick once per interval after
// Start is called. A non-positive interval falls back to
// DefaultTickInterval.
func NewClock(interval time.Duration, onTick func()) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{
		interval: interval,
		onTick:   onTick,
	}
}

// Start begins ticking. It is a no-op if the clock is already running.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}

	c.running = true
	c.doneChan = make(chan struct{})
	c.ticker = time.NewTicker(c.interval)

	go c.tickLoop(c.ticker, c.doneChan)
}

// Stop halts ticking and releases the underlying ticker. Idempotent.
// After Stop returns no further onTick calls are started.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	c.running = false
	c.ticker.Stop()
	close(c.doneChan)
}

// Running reports whether the clock is currently ticking.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// tickLoop delivers ticks until the clock is stopped.
func (c *Clock) tickLoop(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// Re-check under the lock so a tick racing Stop is dropped
			// rather than delivered after teardown.
			c.mu.Lock()
			running := c.running
			c.mu.Unlock()
			if !running {
				return
			}
			c.onTick()
		}
	}
}
