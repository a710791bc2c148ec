package cli

import (
	"sync"
	"time"
)

// Cooldown counts down once per elapsed second from a starting value to 0.
// Reaching 0 flips the ready flag exactly once and halts decrementing; the
// count never goes below 0. The OTP screen uses it to gate resends, and the
// verify-account notice reuses it for its redirect countdown.
//
// Start launches the ticking goroutine; Stop cancels it and waits for it to
// exit, so no periodic work leaks past a screen's lifetime.
type Cooldown struct {
	mu        sync.Mutex
	remaining int
	ready     bool
	done      chan struct{}

	stop     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

func NewCooldown(seconds int) *Cooldown {
	return &Cooldown{
		remaining: seconds,
		done:      make(chan struct{}),
		stop:      make(chan struct{}),
		finished:  make(chan struct{}),
	}
}

// Start begins ticking in a background goroutine. Call Stop before the
// owning screen is torn down.
func (c *Cooldown) Start() {
	go func() {
		defer close(c.finished)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.tick()
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop cancels the ticking goroutine and waits until it has released its
// ticker. Safe to call more than once; must not be called without Start.
func (c *Cooldown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	<-c.finished
}

// tick consumes one second. Split out from the goroutine so tests can drive
// simulated time.
func (c *Cooldown) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining == 0 {
		return
	}
	c.remaining--
	if c.remaining == 0 {
		c.ready = true
		close(c.done)
	}
}

// Remaining returns the seconds left until the cooldown expires.
func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Ready reports whether the countdown has run out.
func (c *Cooldown) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Done returns a channel closed when the current countdown reaches 0.
// Reset swaps in a fresh channel, so callers must re-fetch it afterwards.
func (c *Cooldown) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Reset restarts the countdown at the given value and disables ready,
// regardless of how far the previous countdown had progressed.
func (c *Cooldown) Reset(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = seconds
	c.ready = false
	c.done = make(chan struct{})
}
