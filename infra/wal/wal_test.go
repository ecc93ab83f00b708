package wal

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"google.golang.org/protobuf/proto"

	"darkpool/api/pb"
)

func openTestJournal(t *testing.T, dir string, segSize int64) *Journal {
	t.Helper()
	j, err := Open(Config{Dir: dir, SegmentSize: segSize})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return j
}

func TestJournalAppendReplay(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir, 1<<20)

	want := []*Record{
		NewRecord(KindSubmit, 1, []byte("alpha")),
		NewRecord(KindMatch, 2, nil),
		NewRecord(KindCancel, 3, []byte("gamma")),
	}
	for _, r := range want {
		if err := j.Append(r); err != nil {
			t.Fatalf("Append offset %d: %v", r.Offset, err)
		}
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var got []*Record
	last, err := Replay(dir, func(r *Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if last != 3 {
		t.Fatalf("Replay last offset = %d, want 3", last)
	}
	if len(got) != len(want) {
		t.Fatalf("replayed %d records, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Kind != want[i].Kind || r.Offset != want[i].Offset || r.Time != want[i].Time {
			t.Fatalf("record %d = %+v, want %+v", i, r, want[i])
		}
		if !bytes.Equal(r.Data, want[i].Data) {
			t.Fatalf("record %d payload = %q, want %q", i, r.Data, want[i].Data)
		}
	}
}

func TestJournalReplayDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir, 1<<20)
	if err := j.Append(NewRecord(KindSubmit, 1, []byte("payload"))); err != nil {
		t.Fatalf("Append: %v", err)
	}
	j.Close()

	path := segmentPath(dir, 0)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	raw[headerSize] ^= 0xff // flip one payload byte
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Replay(dir, func(*Record) error { return nil })
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Replay error = %v, want ErrCorrupt", err)
	}
}

func TestJournalResumesHighestSegment(t *testing.T) {
	dir := t.TempDir()

	// A one byte budget rotates after every append.
	j := openTestJournal(t, dir, 1)
	for off := uint64(1); off <= 3; off++ {
		if err := j.Append(NewRecord(KindSubmit, off, []byte("x"))); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	j.Close()

	// Reopen and keep appending. Offsets must stay monotonic across
	// the restart, which requires resuming the newest segment.
	j = openTestJournal(t, dir, 1)
	if err := j.Append(NewRecord(KindMatch, 4, nil)); err != nil {
		t.Fatalf("Append after reopen: %v", err)
	}
	j.Close()

	var offsets []uint64
	last, err := Replay(dir, func(r *Record) error {
		offsets = append(offsets, r.Offset)
		return nil
	})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if last != 4 || len(offsets) != 4 {
		t.Fatalf("replayed offsets %v (last %d), want 1..4", offsets, last)
	}
}

func TestJournalTruncateThrough(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir, 1)
	for off := uint64(1); off <= 4; off++ {
		if err := j.Append(NewRecord(KindSubmit, off, []byte("x"))); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if err := j.TruncateThrough(2); err != nil {
		t.Fatalf("TruncateThrough: %v", err)
	}

	var offsets []uint64
	if _, err := Replay(dir, func(r *Record) error {
		offsets = append(offsets, r.Offset)
		return nil
	}); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(offsets) != 2 || offsets[0] != 3 || offsets[1] != 4 {
		t.Fatalf("offsets after truncate = %v, want [3 4]", offsets)
	}

	// The active segment survives even when everything is applied.
	if err := j.TruncateThrough(100); err != nil {
		t.Fatalf("TruncateThrough: %v", err)
	}
	if err := j.Append(NewRecord(KindDepth, 5, nil)); err != nil {
		t.Fatalf("Append after full truncate: %v", err)
	}
	j.Close()
}

func TestJournalReplayRejectsOffsetRegression(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir, 1<<20)
	j.Append(NewRecord(KindSubmit, 2, nil))
	j.Append(NewRecord(KindSubmit, 2, nil))
	j.Close()

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("Replay accepted a repeated offset")
	}
}

func TestInstructionCodec(t *testing.T) {
	ins := &pb.Instruction{
		Offset: 7,
		Kind:   pb.InstructionKind_INSTRUCTION_SUBMIT_ORDER,
		UnixMs: 1700000000000,
		Submit: &pb.SubmitOrderRequest{
			Order: &pb.Envelope{
				Sender:     bytes.Repeat([]byte{0x11}, 32),
				Nonce:      bytes.Repeat([]byte{0x22}, 24),
				Ciphertext: []byte("sealed"),
			},
		},
	}

	raw, err := EncodeInstruction(ins)
	if err != nil {
		t.Fatalf("EncodeInstruction: %v", err)
	}
	dec, err := DecodeInstruction(raw)
	if err != nil {
		t.Fatalf("DecodeInstruction: %v", err)
	}
	if !proto.Equal(ins, dec) {
		t.Fatalf("round trip mismatch: %v != %v", ins, dec)
	}

	if _, err := DecodeInstruction([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatal("DecodeInstruction accepted garbage")
	}

	if KindOf(pb.InstructionKind_INSTRUCTION_CANCEL_ORDER) != KindCancel {
		t.Fatal("KindOf mapping broken")
	}
}
