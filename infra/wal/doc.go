// Package wal implements the instruction journal: an append-only,
// CRC-framed, segmented log of every instruction accepted by the
// ledger, written before the instruction is executed.
//
// The journal is the recovery source of truth. On boot the service
// replays journaled instructions with offsets above the last applied
// offset and re-executes them against the sealed book. Segments whose
// instructions are all at or below the applied offset are reclaimed by
// the checkpoint job.
//
// Payloads are opaque to the journal itself; the frame header carries
// the instruction kind and offset so segments can be scanned and
// truncated without decoding payloads.
package wal
