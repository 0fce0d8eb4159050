// Package loading tracks a debounced loading flag.
//
// StartLoading flips the flag on immediately. StopLoading flips it off only
// after a delay, so data that resolves quickly does not make the UI flash.
package loading

import (
	"sync"
	"time"
)

// DefaultDelay is how long StopLoading waits before clearing the flag
const DefaultDelay = 500 * time.Millisecond

// Timer is a pending callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock is backed by time.AfterFunc
var RealClock Clock = realClock{}

// Controller owns one loading flag and at most one pending stop timer
type Controller struct {
	mu      sync.Mutex
	loading bool
	delay   time.Duration
	clock   Clock
	pending Timer
	// gen increments on every start/stop/close; a timer only clears the
	// flag if no newer call happened after it was scheduled.
	gen    uint64
	closed bool
}

// Option configures a Controller
type Option func(*Controller)

// WithInitialLoading starts the flag at true and schedules the first stop
func WithInitialLoading(initial bool) Option {
	return func(c *Controller) {
		c.loading = initial
	}
}

// WithDelay overrides DefaultDelay
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithClock injects the timer source
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// New creates a controller. With initial loading it immediately schedules a
// stop, so the flag reads true now and false once the delay has passed,
// regardless of whether any data arrived.
func New(opts ...Option) *Controller {
	c := &Controller{
		delay: DefaultDelay,
		clock: RealClock,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.loading {
		c.StopLoading()
	}
	return c
}

// Loading reports the current flag
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Delay returns the configured stop delay
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// StartLoading sets the flag synchronously and cancels any pending stop
func (c *Controller) StartLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cancelPendingLocked()
	c.gen++
	c.loading = true
}

// StopLoading clears the flag after the delay. A stop that is already
// pending is cancelled first, so only the latest call's timer ever fires.
func (c *Controller) StopLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cancelPendingLocked()
	c.gen++
	gen := c.gen
	c.pending = c.clock.AfterFunc(c.delay, func() {
		c.fire(gen)
	})
}

// Close cancels the pending timer. The flag keeps its last value and later
// calls are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	c.gen++
	c.closed = true
}

// Pending reports whether a stop is scheduled
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.loading = false
	c.pending = nil
}

func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
