package engine

import (
	"sync"
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	now := time.Unix(100, 0)
	clock := newClockWithNow(func() time.Time { return now })

	if clock.Elapsed() != 0 {
		t.Fatalf("Elapsed() = %v after reset, want 0", clock.Elapsed())
	}
	if got := clock.Tick(); got != 0 {
		t.Fatalf("first Tick() with no time passed = %v, want 0", got)
	}

	now = now.Add(250 * time.Millisecond)
	if got := clock.Tick(); got != 0.25 {
		t.Fatalf("Tick() = %v, want 0.25", got)
	}
	if clock.Elapsed() != 0.25 {
		t.Fatalf("Elapsed() = %v, want 0.25", clock.Elapsed())
	}

	now = now.Add(2 * time.Second)
	if got := clock.Tick(); got != 2 {
		t.Fatalf("Tick() = %v, want 2", got)
	}

	now = now.Add(time.Hour)
	clock.Reset()
	now = now.Add(500 * time.Millisecond)
	if got := clock.Tick(); got != 0.5 {
		t.Fatalf("Tick() after Reset = %v, want 0.5", got)
	}
}

func TestRunFlag(t *testing.T) {
	f := NewRunFlag()
	if !f.Running() {
		t.Fatal("new flag not running")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Stop()
	}()
	wg.Wait()

	if f.Running() {
		t.Fatal("flag still running after Stop")
	}
}
