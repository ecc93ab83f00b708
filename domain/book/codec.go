package book

import (
	"encoding/binary"
	"errors"
)

// Encoded sizes in bytes. The codec is fixed-width so that identical state
// always serializes to identical bytes; replay correctness depends on it.
const (
	OrderSize       = 56
	BookSize        = MaxOrders*OrderSize + 8
	MatchResultSize = 40
	DepthSize       = DepthLevels * 8
	ReceiptSize     = 16
	UserIDSize      = 16
)

// ErrShortRecord is returned when a buffer does not have the exact length
// the record type requires.
var ErrShortRecord = errors.New("book: record length mismatch")

func putOrder(b []byte, o *Order) {
	binary.BigEndian.PutUint64(b[0:8], o.Price)
	binary.BigEndian.PutUint64(b[8:16], o.Amount)
	binary.BigEndian.PutUint64(b[16:24], uint64(o.Side))
	binary.BigEndian.PutUint64(b[24:32], uint64(o.Kind))
	binary.BigEndian.PutUint64(b[32:40], o.Owner.Hi)
	binary.BigEndian.PutUint64(b[40:48], o.Owner.Lo)
	binary.BigEndian.PutUint64(b[48:56], o.Active)
}

func getOrder(b []byte) Order {
	return Order{
		Price:  binary.BigEndian.Uint64(b[0:8]),
		Amount: binary.BigEndian.Uint64(b[8:16]),
		Side:   Side(binary.BigEndian.Uint64(b[16:24])),
		Kind:   Kind(binary.BigEndian.Uint64(b[24:32])),
		Owner:  UserID{Hi: binary.BigEndian.Uint64(b[32:40]), Lo: binary.BigEndian.Uint64(b[40:48])},
		Active: binary.BigEndian.Uint64(b[48:56]),
	}
}

// EncodeOrder serializes a single order, the payload of an insertion
// envelope.
func EncodeOrder(o *Order) []byte {
	b := make([]byte, OrderSize)
	putOrder(b, o)
	return b
}

// DecodeOrder is the inverse of EncodeOrder.
func DecodeOrder(b []byte) (Order, error) {
	if len(b) != OrderSize {
		return Order{}, ErrShortRecord
	}
	return getOrder(b), nil
}

// EncodeBook serializes the whole book.
func EncodeBook(ob *OrderBook) []byte {
	b := make([]byte, BookSize)
	EncodeBookInto(b, ob)
	return b
}

// EncodeBookInto serializes the book into a caller-owned buffer of exactly
// BookSize bytes, so plaintext buffers can be pooled and wiped.
func EncodeBookInto(b []byte, ob *OrderBook) error {
	if len(b) != BookSize {
		return ErrShortRecord
	}
	for i := range ob.Slots {
		putOrder(b[i*OrderSize:], &ob.Slots[i])
	}
	binary.BigEndian.PutUint64(b[MaxOrders*OrderSize:], ob.OrderCount)
	return nil
}

// DecodeBook is the inverse of EncodeBook.
func DecodeBook(b []byte) (OrderBook, error) {
	var ob OrderBook
	err := DecodeBookInto(&ob, b)
	return ob, err
}

// DecodeBookInto deserializes into a caller-owned book, the pooled
// counterpart of DecodeBook.
func DecodeBookInto(ob *OrderBook, b []byte) error {
	if len(b) != BookSize {
		return ErrShortRecord
	}
	for i := range ob.Slots {
		ob.Slots[i] = getOrder(b[i*OrderSize:])
	}
	ob.OrderCount = binary.BigEndian.Uint64(b[MaxOrders*OrderSize:])
	return nil
}

// EncodeMatchResult serializes a match result, the payload of a match
// callback envelope.
func EncodeMatchResult(r *MatchResult) []byte {
	b := make([]byte, MatchResultSize)
	binary.BigEndian.PutUint64(b[0:8], r.Matched)
	binary.BigEndian.PutUint64(b[8:16], r.MatchPrice)
	binary.BigEndian.PutUint64(b[16:24], r.MatchAmount)
	binary.BigEndian.PutUint64(b[24:32], r.BuyOrderID)
	binary.BigEndian.PutUint64(b[32:40], r.SellOrderID)
	return b
}

// DecodeMatchResult is the inverse of EncodeMatchResult.
func DecodeMatchResult(b []byte) (MatchResult, error) {
	if len(b) != MatchResultSize {
		return MatchResult{}, ErrShortRecord
	}
	return MatchResult{
		Matched:     binary.BigEndian.Uint64(b[0:8]),
		MatchPrice:  binary.BigEndian.Uint64(b[8:16]),
		MatchAmount: binary.BigEndian.Uint64(b[16:24]),
		BuyOrderID:  binary.BigEndian.Uint64(b[24:32]),
		SellOrderID: binary.BigEndian.Uint64(b[32:40]),
	}, nil
}

// EncodeDepth serializes a depth snapshot.
func EncodeDepth(d *DepthSnapshot) []byte {
	b := make([]byte, DepthSize)
	for i, v := range d {
		binary.BigEndian.PutUint64(b[i*8:], v)
	}
	return b
}

// DecodeDepth is the inverse of EncodeDepth.
func DecodeDepth(b []byte) (DepthSnapshot, error) {
	var d DepthSnapshot
	if len(b) != DepthSize {
		return d, ErrShortRecord
	}
	for i := range d {
		d[i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return d, nil
}

// EncodeReceipt serializes an insert receipt.
func EncodeReceipt(r *InsertReceipt) []byte {
	b := make([]byte, ReceiptSize)
	binary.BigEndian.PutUint64(b[0:8], r.Added)
	binary.BigEndian.PutUint64(b[8:16], r.Slot)
	return b
}

// DecodeReceipt is the inverse of EncodeReceipt.
func DecodeReceipt(b []byte) (InsertReceipt, error) {
	if len(b) != ReceiptSize {
		return InsertReceipt{}, ErrShortRecord
	}
	return InsertReceipt{
		Added: binary.BigEndian.Uint64(b[0:8]),
		Slot:  binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// EncodeUserID serializes an owner identifier, the payload of a
// cancellation envelope.
func EncodeUserID(id UserID) []byte {
	b := make([]byte, UserIDSize)
	binary.BigEndian.PutUint64(b[0:8], id.Hi)
	binary.BigEndian.PutUint64(b[8:16], id.Lo)
	return b
}

// DecodeUserID is the inverse of EncodeUserID.
func DecodeUserID(b []byte) (UserID, error) {
	if len(b) != UserIDSize {
		return UserID{}, ErrShortRecord
	}
	return UserID{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}
