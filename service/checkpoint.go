package service

import (
	"context"
	"time"
)

// StartCheckpointJob periodically reclaims storage behind the applied
// offset: journal segments whose instructions are all applied, and
// outbox records that were acked. The sealed book itself is committed
// on every instruction, so a checkpoint writes nothing new.
func (s *LedgerService) StartCheckpointJob(ctx context.Context, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := s.checkpoint(); err != nil {
					log.Errorf("Checkpoint failed: %v", err)
				}
			}
		}
	}()
}

func (s *LedgerService) checkpoint() error {
	applied, err := s.store.Applied()
	if err != nil {
		return err
	}

	// Journal first. A crash between the two steps leaves acked
	// records that the next pass prunes.
	if err := s.journal.TruncateThrough(applied); err != nil {
		return err
	}
	if err := s.store.PruneAckedThrough(applied); err != nil {
		return err
	}

	log.Tracef("Checkpoint complete through offset %d", applied)
	return nil
}
