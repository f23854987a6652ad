// Package leaktest checks that background workers (hub loops, worker pools,
// websocket writers) exit when their owners stop them.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to wind down
const DefaultSettle = 500 * time.Millisecond

// GoroutineChecker records a goroutine baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
	settle time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
		settle: DefaultSettle,
	}
}

// Check fails the test when more than tolerance goroutines are still
// running once the settle window has passed. It returns early as soon as
// the count is back within tolerance.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.settle)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
