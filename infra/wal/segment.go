package wal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type segment struct {
	path   string
	file   *os.File
	offset int64
}

func segmentPath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("segment-%06d.wal", index))
}

func openSegment(dir string, index int) (*segment, error) {
	path := segmentPath(dir, index)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &segment{path: path, file: f, offset: fi.Size()}, nil
}

// append writes b and flushes it to stable storage before returning.
func (s *segment) append(b []byte) error {
	n, err := s.file.Write(b)
	if err != nil {
		return err
	}
	s.offset += int64(n)
	return s.file.Sync()
}

func (s *segment) close() error {
	return s.file.Close()
}

// listSegments returns segment paths in index order.
func listSegments(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// lastSegmentIndex returns the highest existing segment index, or -1
// when the directory holds no segments.
func lastSegmentIndex(dir string) (int, error) {
	files, err := listSegments(dir)
	if err != nil {
		return -1, err
	}
	last := -1
	for _, path := range files {
		var idx int
		if _, err := fmt.Sscanf(filepath.Base(path), "segment-%06d.wal", &idx); err != nil {
			continue
		}
		if idx > last {
			last = idx
		}
	}
	return last, nil
}
