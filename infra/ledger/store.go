package ledger

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"darkpool/enc"
)

var (
	bookKey    = []byte("state/book")
	appliedKey = []byte("state/applied")
)

// ErrNoState is returned by Load on a ledger that has never committed.
var ErrNoState = errors.New("ledger: no committed state")

// Store is the durable ledger state. One Store owns its directory.
type Store struct {
	db *pebble.DB
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the current sealed book and the applied offset.
func (s *Store) Load() (enc.Sealed, uint64, error) {
	val, closer, err := s.db.Get(bookKey)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return enc.Sealed{}, 0, ErrNoState
		}
		return enc.Sealed{}, 0, err
	}
	var sealed enc.Sealed
	uerr := sealed.UnmarshalBinary(val)
	closer.Close()
	if uerr != nil {
		return enc.Sealed{}, 0, fmt.Errorf("ledger: stored book: %w", uerr)
	}

	applied, err := s.Applied()
	if err != nil {
		return enc.Sealed{}, 0, err
	}
	return sealed, applied, nil
}

// Applied returns the offset of the last applied instruction, 0 when
// nothing has been applied.
func (s *Store) Applied() (uint64, error) {
	val, closer, err := s.db.Get(appliedKey)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	defer closer.Close()
	if len(val) != 8 {
		return 0, fmt.Errorf("ledger: applied marker is %d bytes", len(val))
	}
	return binary.BigEndian.Uint64(val), nil
}

// Event is a callback event to stage alongside a commit.
type Event struct {
	Offset  uint64
	Kind    uint8
	Payload []byte
}

// Commit advances the applied offset and, in the same synced batch,
// replaces the sealed book (when book is non-nil) and stages an outbox
// event (when ev is non-nil).
func (s *Store) Commit(book *enc.Sealed, applied uint64, ev *Event) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	var off [8]byte
	binary.BigEndian.PutUint64(off[:], applied)
	if err := batch.Set(appliedKey, off[:], nil); err != nil {
		return err
	}

	if book != nil {
		raw, err := book.MarshalBinary()
		if err != nil {
			return err
		}
		if err := batch.Set(bookKey, raw, nil); err != nil {
			return err
		}
	}

	if ev != nil {
		rec := EventRecord{
			Offset:  ev.Offset,
			Kind:    ev.Kind,
			State:   StateNew,
			Payload: ev.Payload,
		}
		if err := batch.Set(eventKey(ev.Offset), encodeEventRecord(rec), nil); err != nil {
			return err
		}
	}

	return batch.Commit(pebble.Sync)
}
