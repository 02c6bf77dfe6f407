// Package leaktest checks that background workers (SSE hub, Discord
// announcer, event publisher) exit once they are stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// SettleTimeout bounds how long Check waits for goroutines to exit
	SettleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
	stackBufSize  = 1 << 16
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), timeout: SettleTimeout}
}

// WithTimeout overrides how long Check polls before failing
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check polls until at most tolerance extra goroutines remain. On timeout it
// fails the test and logs every goroutine stack.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.before + tolerance
	if settle(limit, g.timeout) {
		return
	}

	after := runtime.NumGoroutine()
	buf := make([]byte, stackBufSize)
	n := runtime.Stack(buf, true)
	g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d\n%s",
		g.before, after, tolerance, buf[:n])
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines blocks until the goroutine count drops to target
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	if !settle(target, timeout) {
		t.Errorf("timed out waiting for goroutines: current=%d target=%d",
			runtime.NumGoroutine(), target)
	}
}

func settle(limit int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		if runtime.NumGoroutine() <= limit {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}
