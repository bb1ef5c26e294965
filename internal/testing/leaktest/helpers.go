// Package leaktest has test helpers that catch goroutines and heap growth
// left behind by background workers such as the event retry loop.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultWait bounds how long Check waits for goroutines to exit
	DefaultWait = 2 * time.Second

	bytesPerMB = 1024 * 1024
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	t      testing.TB
	before int
	wait   time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{t: t, before: settledGoroutines(), wait: DefaultWait}
}

// Check fails the test when more than tolerance goroutines are still running.
// Goroutines that are on their way out get until the wait deadline to finish.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	deadline := time.Now().Add(g.wait)
	after := settledGoroutines()
	for after > target && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		after = settledGoroutines()
	}

	if after > target {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, after-g.before, tolerance)
	}
}

func settledGoroutines() int {
	runtime.Gosched()
	time.Sleep(settleDelay)
	return runtime.NumGoroutine()
}

// MemoryChecker compares live heap before and after a test body
type MemoryChecker struct {
	t      testing.TB
	before uint64
}

// NewMemoryChecker records the live heap after a collection
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{t: t, before: liveHeap()}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growth := (float64(after) - float64(m.before)) / bytesPerMB
	if growth > maxGrowthMB {
		m.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(m.before)/bytesPerMB, float64(after)/bytesPerMB, growth, maxGrowthMB)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}

// CheckNoGoroutineLeak runs fn and fails if it leaves any goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
