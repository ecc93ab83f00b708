// Package ledger is the durable record of what the service has applied:
// the current sealed order book, the offset of the last applied
// instruction, and the outbox of callback events awaiting broadcast.
//
// All three live in one pebble database so a state transition and the
// event it produced commit in a single synced batch. A crash can lose
// an unjournaled instruction, but it can never persist a state change
// without its event or an event without its state change.
//
// Outbox records move NEW → SENT → ACKED. The broadcaster owns the
// transitions; the checkpoint job prunes ACKED records once the journal
// has been truncated past them.
package ledger
