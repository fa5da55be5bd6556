package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultUsageBudgetSeconds is the initial occupancy window.
	DefaultUsageBudgetSeconds = 1800
	// ExtensionSeconds is the single extension granted on request.
	ExtensionSeconds = 600
)

var ErrAlreadyExtended = errors.New("the session was already extended once")

// Countdown decrements a fixed second budget while active. Reaching zero
// deactivates it and fires OnExpired; the caller then either extends
// (once) or finishes the session.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	active    bool
	extended  bool

	tick      time.Duration
	onTick    func(remaining int)
	onExpired func()

	stopOnce sync.Once
	stopped  chan struct{}
}

type CountdownOption func(*Countdown)

// WithBudget overrides the 1800 s initial budget.
func WithBudget(seconds int) CountdownOption {
	return func(c *Countdown) { c.remaining = seconds }
}

// WithTick overrides the one-second tick, for tests.
func WithTick(d time.Duration) CountdownOption {
	return func(c *Countdown) { c.tick = d }
}

func WithOnTick(fn func(remaining int)) CountdownOption {
	return func(c *Countdown) { c.onTick = fn }
}

func WithOnExpired(fn func()) CountdownOption {
	return func(c *Countdown) { c.onExpired = fn }
}

func NewCountdown(opts ...CountdownOption) *Countdown {
	c := &Countdown{
		remaining: DefaultUsageBudgetSeconds,
		tick:      time.Second,
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run ticks until stopped or the context ends. It returns after Stop or
// context cancellation, not on expiry: an expired countdown stays resident
// so the extension decision can reactivate it.
func (c *Countdown) Run(ctx context.Context) {
	c.mu.Lock()
	c.active = true
	c.mu.Unlock()

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopped:
			return
		case <-ticker.C:
			c.step()
		}
	}
}

func (c *Countdown) step() {
	c.mu.Lock()
	if !c.active || c.remaining <= 0 {
		c.mu.Unlock()
		return
	}
	c.remaining--
	remaining := c.remaining
	expired := remaining == 0
	if expired {
		c.active = false
	}
	onTick := c.onTick
	onExpired := c.onExpired
	c.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	if expired && onExpired != nil {
		onExpired()
	}
}

// Extend grants the one-time 600 s extension and resumes ticking.
func (c *Countdown) Extend() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.extended {
		return ErrAlreadyExtended
	}
	c.extended = true
	c.remaining += ExtensionSeconds
	c.active = true
	return nil
}

// Stop ends ticking permanently. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.active = false
		c.mu.Unlock()
		close(c.stopped)
	})
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Countdown) Extended() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extended
}
