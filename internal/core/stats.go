package core

import (
	"sync"
)

// Stats keeps process-lifetime classification counters. A single Record call
// updates the history and both counters under one lock so concurrent
// classifications never observe a partial update.
type Stats struct {
	mu                sync.Mutex
	total             int64
	productiveCount   int64
	unproductiveCount int64
	confidences       []float64
}

// NewStats creates an empty counter bundle.
func NewStats() *Stats {
	return &Stats{}
}

// Record registers one classification outcome.
func (s *Stats) Record(category Category, confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.confidences = append(s.confidences, confidence)
	if category == CategoryProductive {
		s.productiveCount++
	} else {
		s.unproductiveCount++
	}
}

// AverageConfidence returns the running mean, or 0.0 before any recording.
func (s *Stats) AverageConfidence() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.averageLocked()
}

func (s *Stats) averageLocked() float64 {
	if len(s.confidences) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, c := range s.confidences {
		sum += c
	}
	return sum / float64(len(s.confidences))
}

// Snapshot returns a consistent point-in-time view of the counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StatsSnapshot{
		TotalClassifications: s.total,
		ProductiveCount:      s.productiveCount,
		UnproductiveCount:    s.unproductiveCount,
		AverageConfidence:    s.averageLocked(),
	}
}
