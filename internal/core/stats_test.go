package core

import (
	"sync"
	"testing"
)

func TestStatsEmpty(t *testing.T) {
	s := NewStats()

	if got := s.AverageConfidence(); got != 0.0 {
		t.Fatalf("average confidence = %v, want 0.0", got)
	}

	snap := s.Snapshot()
	if snap.TotalClassifications != 0 || snap.ProductiveCount != 0 || snap.UnproductiveCount != 0 {
		t.Fatalf("empty stats snapshot not zeroed: %+v", snap)
	}
}

func TestStatsRecord(t *testing.T) {
	s := NewStats()
	s.Record(CategoryProductive, 0.9)
	s.Record(CategoryProductive, 0.5)
	s.Record(CategoryUnproductive, 0.8)

	snap := s.Snapshot()
	if snap.TotalClassifications != 3 {
		t.Fatalf("total = %d, want 3", snap.TotalClassifications)
	}
	if snap.ProductiveCount != 2 {
		t.Fatalf("productive = %d, want 2", snap.ProductiveCount)
	}
	if snap.UnproductiveCount != 1 {
		t.Fatalf("unproductive = %d, want 1", snap.UnproductiveCount)
	}
	if !almostEqual(snap.AverageConfidence, (0.9+0.5+0.8)/3) {
		t.Fatalf("average = %v, want %v", snap.AverageConfidence, (0.9+0.5+0.8)/3)
	}
}

func TestStatsConcurrentRecord(t *testing.T) {
	s := NewStats()

	const workers = 50
	const perWorker = 20

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if n%2 == 0 {
					s.Record(CategoryProductive, 0.9)
				} else {
					s.Record(CategoryUnproductive, 0.7)
				}
			}
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.TotalClassifications != workers*perWorker {
		t.Fatalf("total = %d, want %d", snap.TotalClassifications, workers*perWorker)
	}
	if snap.ProductiveCount+snap.UnproductiveCount != snap.TotalClassifications {
		t.Fatalf("counter split %d + %d does not add up to %d",
			snap.ProductiveCount, snap.UnproductiveCount, snap.TotalClassifications)
	}
	if !almostEqual(snap.AverageConfidence, 0.8) {
		t.Fatalf("average = %v, want 0.8", snap.AverageConfidence)
	}
}
