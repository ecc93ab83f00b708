package sequence

import (
	"sync"
	"testing"
)

func TestSequencerMonotonic(t *testing.T) {
	s := New(0)
	if got := s.Current(); got != 0 {
		t.Fatalf("fresh sequencer Current() = %d, want 0", got)
	}
	for want := uint64(1); want <= 5; want++ {
		if got := s.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
	if got := s.Current(); got != 5 {
		t.Fatalf("Current() = %d, want 5", got)
	}
}

func TestSequencerResetAfterReplay(t *testing.T) {
	s := New(0)
	s.Reset(42)
	if got := s.Next(); got != 43 {
		t.Fatalf("Next() after Reset(42) = %d, want 43", got)
	}
}

func TestSequencerConcurrentNext(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	s := New(0)
	var wg sync.WaitGroup
	seen := make([]map[uint64]bool, workers)

	for w := 0; w < workers; w++ {
		seen[w] = make(map[uint64]bool, perWorker)
		wg.Add(1)
		go func(m map[uint64]bool) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				m[s.Next()] = true
			}
		}(seen[w])
	}
	wg.Wait()

	all := make(map[uint64]bool, workers*perWorker)
	for _, m := range seen {
		for v := range m {
			if all[v] {
				t.Fatalf("offset %d issued twice", v)
			}
			all[v] = true
		}
	}
	if len(all) != workers*perWorker {
		t.Fatalf("issued %d distinct offsets, want %d", len(all), workers*perWorker)
	}
	if got := s.Current(); got != workers*perWorker {
		t.Fatalf("Current() = %d, want %d", got, workers*perWorker)
	}
}
