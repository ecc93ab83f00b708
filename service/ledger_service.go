package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/protobuf/proto"

	"darkpool/api/pb"
	"darkpool/cluster"
	"darkpool/enc"
	"darkpool/infra/ledger"
	"darkpool/infra/sequence"
	"darkpool/infra/wal"
)

/*
LedgerService is the ONLY write entry point into the system.

All coordination between:
- cluster (sealed computation)
- infra (journal, ledger store, sequencer)
happens here. Every instruction walks the same path: allocate an
offset, journal the instruction, execute it against the sealed book,
verify the attestation, and commit state and event in one batch.
*/

// ErrRejected tags instructions that were journaled but produced no
// state change: malformed envelopes and aborted computations. The
// applied offset still advances so replay never re-runs them.
var ErrRejected = errors.New("instruction rejected")

type LedgerService struct {
	mu      sync.Mutex
	engine  *cluster.Engine
	seq     *sequence.Sequencer
	journal *wal.Journal
	store   *ledger.Store

	sealed enc.Sealed // current sealed book, guarded by mu
}

// NewLedgerService wires all dependencies. No globals. No magic.
func NewLedgerService(
	engine *cluster.Engine,
	seq *sequence.Sequencer,
	journal *wal.Journal,
	store *ledger.Store,
) *LedgerService {
	return &LedgerService{
		engine:  engine,
		seq:     seq,
		journal: journal,
		store:   store,
	}
}

// ClusterKey returns the public key callers seal their envelopes to.
func (s *LedgerService) ClusterKey() enc.PublicKey {
	return s.engine.Public()
}

//
// ──────────────────────────────────────────────────────────
// Instructions
// ──────────────────────────────────────────────────────────
//

// SubmitOrder journals and executes an order submission. The order
// stays sealed end to end; the caller learns nothing but the ledger
// offset until the receipt event reaches them.
func (s *LedgerService) SubmitOrder(ctx context.Context, order enc.Envelope) (uint64, error) {
	return s.run(ctx, &pb.Instruction{
		Kind:   pb.InstructionKind_INSTRUCTION_SUBMIT_ORDER,
		Submit: &pb.SubmitOrderRequest{Order: pb.FromEnvelope(&order)},
	})
}

// MatchOrders journals and executes a matching crank. The sealed match
// result is addressed to reply.
func (s *LedgerService) MatchOrders(ctx context.Context, reply enc.PublicKey) (uint64, error) {
	return s.run(ctx, &pb.Instruction{
		Kind:  pb.InstructionKind_INSTRUCTION_MATCH_ORDERS,
		Match: &pb.MatchOrdersRequest{ReplyPubkey: append([]byte(nil), reply[:]...)},
	})
}

// CancelOrder journals and executes a cancellation of the order in
// slot. The ownership proof travels inside the owner envelope.
func (s *LedgerService) CancelOrder(ctx context.Context, slot uint64, owner enc.Envelope) (uint64, error) {
	return s.run(ctx, &pb.Instruction{
		Kind: pb.InstructionKind_INSTRUCTION_CANCEL_ORDER,
		Cancel: &pb.CancelOrderRequest{
			SlotIndex: slot,
			Owner:     pb.FromEnvelope(&owner),
		},
	})
}

// GetDepth journals and executes a depth query. The sealed snapshot is
// addressed to reply.
func (s *LedgerService) GetDepth(ctx context.Context, priceLevels uint64, reply enc.PublicKey) (uint64, error) {
	return s.run(ctx, &pb.Instruction{
		Kind: pb.InstructionKind_INSTRUCTION_GET_DEPTH,
		Depth: &pb.GetDepthRequest{
			PriceLevels: priceLevels,
			ReplyPubkey: append([]byte(nil), reply[:]...),
		},
	})
}

// run assigns the next offset, journals the instruction, and applies
// it. The lock spans both steps so the journal order is the offset
// order, which replay depends on.
func (s *LedgerService) run(ctx context.Context, ins *pb.Instruction) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ins.Offset = s.seq.Next()
	ins.UnixMs = time.Now().UnixMilli()

	data, err := wal.EncodeInstruction(ins)
	if err != nil {
		return 0, err
	}
	if err := s.journal.Append(wal.NewRecord(wal.KindOf(ins.Kind), ins.Offset, data)); err != nil {
		return 0, fmt.Errorf("journal append: %w", err)
	}

	if err := s.applyLocked(ins); err != nil {
		return ins.Offset, err
	}
	return ins.Offset, nil
}

// applyLocked executes a journaled instruction against the sealed book
// and commits the outcome. Live traffic and boot replay share it.
func (s *LedgerService) applyLocked(ins *pb.Instruction) error {
	switch ins.Kind {
	case pb.InstructionKind_INSTRUCTION_SUBMIT_ORDER:
		return s.applySubmit(ins)
	case pb.InstructionKind_INSTRUCTION_MATCH_ORDERS:
		return s.applyMatch(ins)
	case pb.InstructionKind_INSTRUCTION_CANCEL_ORDER:
		return s.applyCancel(ins)
	case pb.InstructionKind_INSTRUCTION_GET_DEPTH:
		return s.applyDepth(ins)
	default:
		return s.reject(ins.Offset, fmt.Errorf("unknown instruction kind %d", ins.Kind))
	}
}

func (s *LedgerService) applySubmit(ins *pb.Instruction) error {
	order, err := pb.ToEnvelope(ins.GetSubmit().GetOrder())
	if err != nil {
		return s.reject(ins.Offset, err)
	}

	sealed, receipt, att, err := s.engine.AddOrder(s.sealed, order)
	if err != nil {
		return s.reject(ins.Offset, err)
	}
	if err := att.Verify(&sealed, &receipt); err != nil {
		return s.reject(ins.Offset, err)
	}

	return s.commit(ins, &sealed, pb.EventKind_EVENT_ORDER_ADDED, order.Sender, &receipt)
}

func (s *LedgerService) applyMatch(ins *pb.Instruction) error {
	reply, err := pb.ToPublicKey(ins.GetMatch().GetReplyPubkey())
	if err != nil {
		return s.reject(ins.Offset, err)
	}

	sealed, result, att, err := s.engine.MatchOrders(s.sealed, reply)
	if err != nil {
		return s.reject(ins.Offset, err)
	}
	if err := att.Verify(&sealed, &result); err != nil {
		return s.reject(ins.Offset, err)
	}

	return s.commit(ins, &sealed, pb.EventKind_EVENT_ORDERS_MATCHED, reply, &result)
}

func (s *LedgerService) applyCancel(ins *pb.Instruction) error {
	owner, err := pb.ToEnvelope(ins.GetCancel().GetOwner())
	if err != nil {
		return s.reject(ins.Offset, err)
	}

	sealed, att, err := s.engine.CancelOrder(s.sealed, ins.GetCancel().GetSlotIndex(), owner)
	if err != nil {
		return s.reject(ins.Offset, err)
	}
	if err := att.Verify(&sealed, nil); err != nil {
		return s.reject(ins.Offset, err)
	}

	// Cancellation discloses nothing, so the event carries no payload.
	return s.commit(ins, &sealed, pb.EventKind_EVENT_ORDER_CANCELLED, owner.Sender, nil)
}

func (s *LedgerService) applyDepth(ins *pb.Instruction) error {
	reply, err := pb.ToPublicKey(ins.GetDepth().GetReplyPubkey())
	if err != nil {
		return s.reject(ins.Offset, err)
	}

	snapshot, att, err := s.engine.Depth(s.sealed, ins.GetDepth().GetPriceLevels(), reply)
	if err != nil {
		return s.reject(ins.Offset, err)
	}
	if err := att.Verify(nil, &snapshot); err != nil {
		return s.reject(ins.Offset, err)
	}

	// Depth never mutates the book; only the applied offset advances.
	return s.commit(ins, nil, pb.EventKind_EVENT_DEPTH, reply, &snapshot)
}

// commit persists the new sealed book (nil for read-only instructions)
// together with the callback event, then publishes the new state.
func (s *LedgerService) commit(
	ins *pb.Instruction,
	sealed *enc.Sealed,
	kind pb.EventKind,
	recipient enc.PublicKey,
	payload *enc.Envelope,
) error {
	evt := &pb.CallbackEvent{
		Offset:    ins.Offset,
		Kind:      kind,
		UnixMs:    ins.UnixMs,
		Recipient: append([]byte(nil), recipient[:]...),
	}
	if payload != nil {
		evt.Payload = pb.FromEnvelope(payload)
	}
	raw, err := proto.Marshal(evt)
	if err != nil {
		return s.reject(ins.Offset, err)
	}

	err = s.store.Commit(sealed, ins.Offset, &ledger.Event{
		Offset:  ins.Offset,
		Kind:    uint8(kind),
		Payload: raw,
	})
	if err != nil {
		return fmt.Errorf("ledger commit: %w", err)
	}

	if sealed != nil {
		s.sealed = *sealed
	}
	log.Debugf("Applied %s at offset %d", wal.KindOf(ins.Kind), ins.Offset)
	return nil
}

// reject advances the applied offset without touching state or outbox,
// so replay skips the instruction, then reports the cause.
func (s *LedgerService) reject(offset uint64, cause error) error {
	if err := s.store.Commit(nil, offset, nil); err != nil {
		return fmt.Errorf("ledger commit: %w", err)
	}
	log.Warnf("Rejected instruction at offset %d: %v", offset, cause)
	return fmt.Errorf("%w: %w", ErrRejected, cause)
}
