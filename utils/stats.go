package utils

import (
	"fmt"
	"time"
)

// Stats for a single simulation run
type Stats struct {
	TotalGenerations  int64
	GreenObservations int64
	AveragePopulation float64
	StartTime         time.Time
	Elapsed           time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one observed generation
func (s *Stats) Update(generation int64, population int, targetGreen bool) {
	s.TotalGenerations = generation
	if targetGreen {
		s.GreenObservations++
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Finish stops the run clock
func (s *Stats) Finish() {
	s.Elapsed = time.Since(s.StartTime)
}

// GenerationsPerSecond returns the simulation throughput
func (s *Stats) GenerationsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / s.Elapsed.Seconds()
}

func (s *Stats) String() string {
	return fmt.Sprintf("Generations: %d | Green observations: %d | Avg Pop: %.1f | %.1f gen/sec | Runtime: %s",
		s.TotalGenerations, s.GreenObservations, s.AveragePopulation, s.GenerationsPerSecond(), s.Elapsed)
}
