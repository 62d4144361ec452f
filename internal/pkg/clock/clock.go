// Package clock lets timestamps be pinned in tests.
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/KirkDiggler/rpg-arena/internal/pkg/clock Clock

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC.
type Real struct{}

// Now returns the current UTC time.
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock.
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant until advanced.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock stuck at now.
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now returns the pinned time.
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the pinned time forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
