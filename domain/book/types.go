// Package book defines the order book records that flow through the
// confidential engine. Field layout is fixed and word-sized so that the
// circuit package can update everything with 64-bit blends and the codec
// can produce deterministic bytes.
package book

// MaxOrders is the fixed slot capacity of the book. Every operation walks
// all of it regardless of occupancy.
const MaxOrders = 100

// DepthLevels is the length of a depth snapshot: ten buy buckets followed
// by ten sell buckets.
const DepthLevels = 20

// Side of an order.
type Side uint64

const (
	Buy Side = iota
	Sell
)

// Kind distinguishes market orders from limit orders.
type Kind uint64

const (
	Market Kind = iota
	Limit
)

// UserID is the 128-bit owner identifier. It is secret order data and has
// no String method on purpose.
type UserID struct {
	Hi uint64
	Lo uint64
}

// Order is one slot of the book. An order has no identifier field; its
// identity is the index of the slot holding it. Active is 1 when the slot
// holds a live order and 0 otherwise, kept word-sized for blending.
type Order struct {
	Price  uint64
	Amount uint64
	Side   Side
	Kind   Kind
	Owner  UserID
	Active uint64
}

// OrderBook is the persistent confidential state: a fixed slot array plus
// an advisory counter. OrderCount is maintained by insertion (+1) and
// cancellation (-1) only; matching leaves it alone even when it empties
// slots, so the Active flags are the sole truth of occupancy.
type OrderBook struct {
	Slots      [MaxOrders]Order
	OrderCount uint64
}

// MatchResult reports the outcome of one matching pass. When Matched is 0
// every other field is 0. BuyOrderID and SellOrderID are slot indices.
type MatchResult struct {
	Matched     uint64
	MatchPrice  uint64
	MatchAmount uint64
	BuyOrderID  uint64
	SellOrderID uint64
}

// DepthSnapshot is the aggregated volume summary. Indices 0-9 carry the
// buy-side total, 10-19 the sell-side total. Per-price bucketing is
// reserved; today each side's buckets all hold the same figure.
type DepthSnapshot [DepthLevels]uint64

// InsertReceipt tells the submitter where its order landed. Added is 0
// when the book was full and nothing was placed; Slot is only meaningful
// when Added is 1.
type InsertReceipt struct {
	Added uint64
	Slot  uint64
}
