// Package leaktest checks that background goroutines started by a test
// (worker pools, schedulers, stream hubs) are gone once the test stops them.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 5 * time.Millisecond

	// DefaultWait is how long Check waits for goroutines to exit
	DefaultWait = time.Second
)

// GoroutineChecker records the goroutine count at construction and
// compares against it later.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines outlive DefaultWait.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	after, ok := waitFor(g.before+tolerance, DefaultWait)
	if !ok {
		g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
	}
}

// Verify runs fn and fails the test if it leaves goroutines behind.
func Verify(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
