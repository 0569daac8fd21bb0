package utils

import (
	"math"
	"testing"
	"time"
)

func TestNewStats(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewStats(start)

	if !s.StartTime.Equal(start) {
		t.Fatalf("StartTime = %v, want %v", s.StartTime, start)
	}
	if s.TotalGenerations != 0 || s.GenerationsPerSecond != 0 || s.AveragePopulation != 0 {
		t.Fatalf("fresh stats should be zeroed, got %+v", s)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats(time.Now())

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 {
		t.Errorf("TotalGenerations = %d, want 1", s.TotalGenerations)
	}
	if got := s.GenerationsPerSecond; math.Abs(got-10) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 10", got)
	}
	if got := s.AveragePopulation; got != 100 {
		t.Errorf("AveragePopulation = %v, want 100 on first sample", got)
	}

	// Second sample blends in at one tenth weight.
	s.Update(2, 50, 200*time.Millisecond)
	if s.TotalGenerations != 2 {
		t.Errorf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}
	if got := s.GenerationsPerSecond; math.Abs(got-5) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 5", got)
	}
	if got := s.AveragePopulation; math.Abs(got-95) > 1e-9 {
		t.Errorf("AveragePopulation = %v, want 95", got)
	}
}

func TestStatsUpdateZeroDuration(t *testing.T) {
	s := NewStats(time.Now())

	s.Update(1, 10, 0)
	if s.GenerationsPerSecond != 0 {
		t.Errorf("GenerationsPerSecond = %v, want 0 when duration is zero", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 10 {
		t.Errorf("AveragePopulation = %v, want 10", s.AveragePopulation)
	}
}
