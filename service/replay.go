package service

import (
	"errors"
	"fmt"

	"darkpool/infra/ledger"
	"darkpool/infra/wal"
)

/*
Recover rebuilds service state on boot.

IMPORTANT:
- This MUST run before accepting traffic.
- Journaled instructions above the applied offset are re-executed
  through the same path live traffic takes, so a crash between journal
  append and ledger commit is repaired by re-running the instruction.
- Instructions that re-reject do so deterministically and are skipped.
*/
func (s *LedgerService) Recover(journalDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, applied, err := s.store.Load()
	switch {
	case errors.Is(err, ledger.ErrNoState):
		sealed, err = s.engine.NewBook()
		if err != nil {
			return fmt.Errorf("init book: %w", err)
		}
		if err := s.store.Commit(&sealed, 0, nil); err != nil {
			return fmt.Errorf("init commit: %w", err)
		}
		log.Infof("Initialized a fresh sealed book")
	case err != nil:
		return err
	}
	s.sealed = sealed

	var replayed, rejected int
	lastOffset, err := wal.Replay(journalDir, func(rec *wal.Record) error {
		if rec.Offset <= applied {
			return nil
		}
		ins, err := wal.DecodeInstruction(rec.Data)
		if err != nil {
			return err
		}
		if err := s.applyLocked(ins); err != nil {
			if errors.Is(err, ErrRejected) {
				rejected++
				return nil
			}
			return err
		}
		replayed++
		return nil
	})
	if err != nil {
		return fmt.Errorf("journal replay: %w", err)
	}

	// Resume offsets after both the journal tail and the applied
	// offset; checkpointing may have truncated the journal past its
	// last record.
	resume := lastOffset
	if applied > resume {
		resume = applied
	}
	s.seq.Reset(resume)

	log.Infof("Journal replay completed (applied %d, skipped %d rejected, resuming at offset %d)",
		replayed, rejected, resume)
	return nil
}
