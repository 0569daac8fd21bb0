package utils

import "time"

// Stats tracks frame-loop performance for the driver's status line.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats returns stats anchored at now. The caller supplies the time so a
// mocked clock drives the same math in tests.
func NewStats(now time.Time) *Stats {
	return &Stats{StartTime: now}
}

// Update records one completed generation: the population after it and the
// wall time the frame took.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
