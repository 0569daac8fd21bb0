package utils

import (
	"testing"
	"time"
)

func TestRealClockNow(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestRealClockSince(t *testing.T) {
	start := time.Now().Add(-time.Second)
	if got := (RealClock{}).Since(start); got < time.Second {
		t.Errorf("Since() = %v, want at least 1s", got)
	}
}

func TestRealClockSleep(t *testing.T) {
	start := time.Now()
	RealClock{}.Sleep(10 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Sleep(10ms) returned after %v", elapsed)
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}

	clock.Advance(90 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(90 * time.Second)) {
		t.Fatalf("Now() after Advance = %v, want %v", got, start.Add(90*time.Second))
	}

	if got := clock.Since(start); got != 90*time.Second {
		t.Errorf("Since(start) = %v, want 90s", got)
	}

	later := start.Add(time.Hour)
	clock.Set(later)
	if got := clock.Now(); !got.Equal(later) {
		t.Fatalf("Now() after Set = %v, want %v", got, later)
	}
}

func TestMockClockSleep(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	clock.Sleep(100 * time.Millisecond)
	clock.Sleep(250 * time.Millisecond)

	// Sleeping advances the mocked wall clock instead of blocking.
	want := start.Add(350 * time.Millisecond)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after sleeps = %v, want %v", got, want)
	}

	sleeps := clock.Sleeps()
	if len(sleeps) != 2 || sleeps[0] != 100*time.Millisecond || sleeps[1] != 250*time.Millisecond {
		t.Fatalf("Sleeps() = %v, want [100ms 250ms]", sleeps)
	}

	// The returned slice is a copy.
	sleeps[0] = 0
	if got := clock.Sleeps()[0]; got != 100*time.Millisecond {
		t.Errorf("Sleeps() shares memory with the caller, got %v", got)
	}
}
