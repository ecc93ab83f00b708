package wal

import (
	"encoding/binary"
	"os"
	"sync"
)

const (
	// Frame: [kind:1][offset:8][time:8][len:4][payload][crc:4]
	headerSize  = 21
	trailerSize = 4
)

type Config struct {
	Dir         string
	SegmentSize int64
}

// Journal is the append side of the instruction journal. A single
// Journal owns its directory; Append is safe for concurrent use.
type Journal struct {
	mu       sync.Mutex
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

// Open opens the journal in cfg.Dir, resuming the highest existing
// segment so appended offsets stay ordered across restarts.
func Open(cfg Config) (*Journal, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	idx, err := lastSegmentIndex(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		idx = 0
	}

	seg, err := openSegment(cfg.Dir, idx)
	if err != nil {
		return nil, err
	}

	return &Journal{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: idx,
	}, nil
}

// Append frames r, writes it to the current segment, and flushes it to
// stable storage before returning.
func (j *Journal) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))

	buf := make([]byte, headerSize+int(payloadLen)+trailerSize)
	buf[0] = byte(r.Kind)
	binary.BigEndian.PutUint64(buf[1:9], r.Offset)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[headerSize:], r.Data)

	crc := checksum(buf[:headerSize+payloadLen])
	binary.BigEndian.PutUint32(buf[headerSize+payloadLen:], crc)

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.current.append(buf); err != nil {
		return err
	}

	if j.current.offset >= j.segSize {
		return j.rotate()
	}
	return nil
}

func (j *Journal) rotate() error {
	_ = j.current.close()
	j.segIndex++

	seg, err := openSegment(j.dir, j.segIndex)
	if err != nil {
		return err
	}

	log.Debugf("Rotated journal segment to index %d", j.segIndex)
	j.current = seg
	return nil
}

// TruncateThrough removes closed segments whose instructions are all
// at or below the applied offset. The active segment is never removed.
func (j *Journal) TruncateThrough(offset uint64) error {
	files, err := listSegments(j.dir)
	if err != nil {
		return err
	}

	j.mu.Lock()
	active := j.current.path
	j.mu.Unlock()

	for _, path := range files {
		if path == active {
			continue
		}
		maxOffset, err := maxOffsetInSegment(path)
		if err != nil {
			continue
		}
		if maxOffset <= offset {
			if err := os.Remove(path); err == nil {
				log.Debugf("Reclaimed journal segment %s (max offset %d)", path, maxOffset)
			}
		}
	}
	return nil
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.current.close()
}
