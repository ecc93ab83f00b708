package ledger

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type EventState uint8

const (
	StateNew EventState = iota
	StateSent
	StateAcked
)

func (s EventState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// EventRecord is a staged callback event plus its delivery bookkeeping.
// Kind mirrors the wire event kind so the broadcaster can log and route
// without decoding Payload.
type EventRecord struct {
	Offset      uint64
	Kind        uint8
	State       EventState
	Retries     uint32
	LastAttempt int64 // unix ms of the last send attempt
	Payload     []byte
}

const eventRecHeader = 1 + 1 + 4 + 8

// binary encoding: [state:1][kind:1][retries:4][lastAttempt:8][payload]
func encodeEventRecord(r EventRecord) []byte {
	buf := make([]byte, eventRecHeader+len(r.Payload))
	buf[0] = byte(r.State)
	buf[1] = r.Kind
	binary.BigEndian.PutUint32(buf[2:6], r.Retries)
	binary.BigEndian.PutUint64(buf[6:14], uint64(r.LastAttempt))
	copy(buf[eventRecHeader:], r.Payload)
	return buf
}

func decodeEventRecord(offset uint64, b []byte) (EventRecord, error) {
	if len(b) < eventRecHeader {
		return EventRecord{}, errors.New("ledger: short event record")
	}
	return EventRecord{
		Offset:      offset,
		Kind:        b[1],
		State:       EventState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[2:6]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[6:14])),
		Payload:     append([]byte(nil), b[eventRecHeader:]...),
	}, nil
}

// -------------------- API --------------------

// Event returns the staged record at offset.
func (s *Store) Event(offset uint64) (EventRecord, error) {
	val, closer, err := s.db.Get(eventKey(offset))
	if err != nil {
		return EventRecord{}, err
	}
	defer closer.Close()

	return decodeEventRecord(offset, val)
}

// MarkSent records a send attempt: SENT, retries+1, attempt timestamp.
func (s *Store) MarkSent(offset uint64) error {
	rec, err := s.Event(offset)
	if err != nil {
		return err
	}
	rec.State = StateSent
	rec.Retries++
	rec.LastAttempt = time.Now().UnixMilli()
	return s.db.Set(eventKey(offset), encodeEventRecord(rec), pebble.Sync)
}

// MarkAcked records broker acknowledgement.
func (s *Store) MarkAcked(offset uint64) error {
	rec, err := s.Event(offset)
	if err != nil {
		return err
	}
	rec.State = StateAcked
	return s.db.Set(eventKey(offset), encodeEventRecord(rec), pebble.Sync)
}

// -------------------- Scan --------------------

// ScanEvents iterates all outbox records in the given state, in offset
// order. This is used by the broadcaster.
func (s *Store) ScanEvents(state EventState, fn func(EventRecord) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := s.iterRecord(iter)
		if err != nil {
			return err
		}
		if rec.State != state {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// PruneAckedThrough deletes ACKED records at or below offset. Called by
// the checkpoint job after journal truncation.
func (s *Store) PruneAckedThrough(offset uint64) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	var pruned int
	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := s.iterRecord(iter)
		if err != nil {
			return err
		}
		if rec.Offset > offset {
			break
		}
		if rec.State != StateAcked {
			continue
		}
		if err := s.db.Delete(eventKey(rec.Offset), pebble.Sync); err != nil {
			return err
		}
		pruned++
	}
	if pruned > 0 {
		log.Debugf("Pruned %d acked outbox records through offset %d", pruned, offset)
	}
	return iter.Error()
}

func (s *Store) iterRecord(iter *pebble.Iterator) (EventRecord, error) {
	offset, err := parseEventKey(iter.Key())
	if err != nil {
		return EventRecord{}, err
	}
	return decodeEventRecord(offset, iter.Value())
}

// -------------------- Helpers --------------------

func eventKey(offset uint64) []byte {
	return []byte(fmt.Sprintf("event/%020d", offset))
}

func parseEventKey(b []byte) (uint64, error) {
	var offset uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d", &offset)
	return offset, err
}
