package clock

import (
	"sync/atomic"
	"time"
)

// Clock is the single source of "now" for admission decisions.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable clock for tests. It is safe for concurrent use.
type MockClock struct {
	now atomic.Pointer[time.Time]
}

func NewMockClock(t time.Time) *MockClock {
	c := &MockClock{}
	c.Set(t)
	return c
}

func (c *MockClock) Now() time.Time {
	return *c.now.Load()
}

func (c *MockClock) Set(t time.Time) {
	c.now.Store(&t)
}

func (c *MockClock) Add(d time.Duration) {
	for {
		cur := c.now.Load()
		next := cur.Add(d)
		if c.now.CompareAndSwap(cur, &next) {
			return
		}
	}
}
