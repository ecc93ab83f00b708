package wal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCorrupt is returned when a journal frame fails its checksum.
var ErrCorrupt = errors.New("wal: corrupt record")

type ReplayHandler func(*Record) error

// Replay streams every journaled record in offset order to fn and
// returns the highest offset seen. Offsets must be strictly monotonic
// across segments; a regression means the directory was tampered with
// or mixed between ledgers.
func Replay(dir string, fn ReplayHandler) (lastOffset uint64, err error) {
	files, err := listSegments(dir)
	if err != nil {
		return 0, err
	}

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return lastOffset, err
		}

		for {
			rec, err := readRecord(f)
			if err != nil {
				if err == io.EOF {
					break
				}
				f.Close()
				return lastOffset, fmt.Errorf("%s: %w", path, err)
			}

			if rec.Offset <= lastOffset {
				f.Close()
				return lastOffset, fmt.Errorf("wal: non-monotonic offset %d after %d in %s",
					rec.Offset, lastOffset, path)
			}
			lastOffset = rec.Offset

			if err := fn(rec); err != nil {
				f.Close()
				return lastOffset, err
			}
		}
		f.Close()
	}

	return lastOffset, nil
}

func readRecord(r io.Reader) (*Record, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	kind := Kind(header[0])
	offset := binary.BigEndian.Uint64(header[1:9])
	ts := binary.BigEndian.Uint64(header[9:17])
	l := binary.BigEndian.Uint32(header[17:21])

	rest := make([]byte, l+trailerSize)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, err
	}

	payload := rest[:l]
	crc := binary.BigEndian.Uint32(rest[l:])

	if !checksumValid(append(header, payload...), crc) {
		return nil, ErrCorrupt
	}

	return &Record{
		Kind:   kind,
		Offset: offset,
		Time:   int64(ts),
		Data:   payload,
	}, nil
}
