package wal

import (
	"encoding/binary"
	"io"
	"os"
)

// maxOffsetInSegment scans one segment and returns the highest offset
// it holds. It is used ONLY for checkpoint truncation, so payloads are
// skipped rather than decoded.
func maxOffsetInSegment(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var max uint64

	for {
		header := make([]byte, headerSize)
		if _, err := io.ReadFull(f, header); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return max, nil
			}
			return max, err
		}

		offset := binary.BigEndian.Uint64(header[1:9])
		if offset > max {
			max = offset
		}

		payloadLen := binary.BigEndian.Uint32(header[17:21])
		if _, err := f.Seek(int64(payloadLen+trailerSize), io.SeekCurrent); err != nil {
			return max, err
		}
	}
}
