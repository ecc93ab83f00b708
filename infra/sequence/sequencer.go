package sequence

import "sync/atomic"

// Sequencer hands out ledger offsets. Offsets are strictly monotonic
// and start at 1; offset 0 means nothing has been applied yet.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer that resumes after the given offset.
// Fresh ledger → last = 0. After journal replay → last = highest
// offset found in the journal.
func New(last uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(last)
	return s
}

// Next allocates the next ledger offset.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last allocated offset.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Reset moves the sequencer to a specific offset. This is ONLY used
// after journal replay, before the service accepts traffic.
func (s *Sequencer) Reset(v uint64) {
	s.last.Store(v)
}
