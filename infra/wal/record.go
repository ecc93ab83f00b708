package wal

import "time"

// Kind tags a journaled instruction. Values match the wire enum so a
// frame header can be interpreted without decoding the payload.
type Kind uint8

const (
	KindSubmit Kind = iota + 1
	KindMatch
	KindCancel
	KindDepth
)

func (k Kind) String() string {
	switch k {
	case KindSubmit:
		return "SUBMIT"
	case KindMatch:
		return "MATCH"
	case KindCancel:
		return "CANCEL"
	case KindDepth:
		return "DEPTH"
	default:
		return "UNKNOWN"
	}
}

// Record is an immutable journal entry.
type Record struct {
	Kind   Kind
	Offset uint64
	Time   int64 // unix milliseconds
	Data   []byte
}

func NewRecord(k Kind, offset uint64, data []byte) *Record {
	return &Record{
		Kind:   k,
		Offset: offset,
		Time:   time.Now().UnixMilli(),
		Data:   data,
	}
}
