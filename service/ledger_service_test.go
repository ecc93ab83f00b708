package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/pebble"
	"google.golang.org/protobuf/proto"

	"darkpool/api/pb"
	"darkpool/cluster"
	"darkpool/domain/book"
	"darkpool/enc"
	"darkpool/infra/ledger"
	"darkpool/infra/sequence"
	"darkpool/infra/wal"
)

type harness struct {
	dir     string
	svc     *LedgerService
	journal *wal.Journal
	store   *ledger.Store
}

// openHarness assembles a full service over dir. Reopening the same dir
// reloads the cluster keyring and recovers from the journal, which is
// exactly what a process restart does.
func openHarness(tb testing.TB, dir string, segSize int64) *harness {
	tb.Helper()

	keys, err := cluster.LoadKeyring(filepath.Join(dir, "cluster.key"))
	if err != nil {
		tb.Fatalf("LoadKeyring: %v", err)
	}
	journal, err := wal.Open(wal.Config{
		Dir:         filepath.Join(dir, "journal"),
		SegmentSize: segSize,
	})
	if err != nil {
		tb.Fatalf("wal.Open: %v", err)
	}
	store, err := ledger.Open(filepath.Join(dir, "ledger"))
	if err != nil {
		tb.Fatalf("ledger.Open: %v", err)
	}

	svc := NewLedgerService(cluster.NewEngine(keys), sequence.New(0), journal, store)
	if err := svc.Recover(filepath.Join(dir, "journal")); err != nil {
		tb.Fatalf("Recover: %v", err)
	}
	return &harness{dir: dir, svc: svc, journal: journal, store: store}
}

func (h *harness) close() {
	h.journal.Close()
	h.store.Close()
}

func newCaller(tb testing.TB) *enc.Keypair {
	tb.Helper()
	kp, err := enc.GenerateKeypair(rand.Reader)
	if err != nil {
		tb.Fatalf("GenerateKeypair: %v", err)
	}
	return kp
}

func limitOrder(side book.Side, price, amount, owner uint64) book.Order {
	return book.Order{
		Price:  price,
		Amount: amount,
		Side:   side,
		Kind:   book.Limit,
		Owner:  book.UserID{Lo: owner},
		Active: 1,
	}
}

func sealOrder(tb testing.TB, kp *enc.Keypair, to enc.PublicKey, ord book.Order) enc.Envelope {
	tb.Helper()
	env, err := kp.SealTo(to, book.EncodeOrder(&ord))
	if err != nil {
		tb.Fatalf("SealTo: %v", err)
	}
	return env
}

// openEvent fetches the outbox record at offset and decrypts its
// payload envelope with the recipient's keypair.
func openEvent(tb testing.TB, h *harness, offset uint64, kp *enc.Keypair) (*pb.CallbackEvent, []byte) {
	tb.Helper()

	rec, err := h.store.Event(offset)
	if err != nil {
		tb.Fatalf("Event(%d): %v", offset, err)
	}
	evt := &pb.CallbackEvent{}
	if err := proto.Unmarshal(rec.Payload, evt); err != nil {
		tb.Fatalf("unmarshal event: %v", err)
	}
	if evt.Offset != offset {
		tb.Fatalf("event offset = %d, want %d", evt.Offset, offset)
	}
	if evt.Payload == nil {
		return evt, nil
	}
	env, err := pb.ToEnvelope(evt.Payload)
	if err != nil {
		tb.Fatalf("event payload: %v", err)
	}
	pt, err := kp.Open(env)
	if err != nil {
		tb.Fatalf("open event payload: %v", err)
	}
	return evt, pt
}

func TestSubmitOrderFlow(t *testing.T) {
	h := openHarness(t, t.TempDir(), 1<<20)
	defer h.close()

	caller := newCaller(t)
	ctx := context.Background()

	env := sealOrder(t, caller, h.svc.ClusterKey(), limitOrder(book.Buy, 100, 5, 11))
	offset, err := h.svc.SubmitOrder(ctx, env)
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if offset != 1 {
		t.Fatalf("offset = %d, want 1", offset)
	}

	evt, pt := openEvent(t, h, offset, caller)
	if evt.Kind != pb.EventKind_EVENT_ORDER_ADDED {
		t.Fatalf("event kind = %v, want ORDER_ADDED", evt.Kind)
	}
	pub := caller.Public()
	if !bytes.Equal(evt.Recipient, pub[:]) {
		t.Fatal("event recipient is not the submitter")
	}
	receipt, err := book.DecodeReceipt(pt)
	if err != nil {
		t.Fatalf("DecodeReceipt: %v", err)
	}
	if receipt.Added != 1 || receipt.Slot != 0 {
		t.Fatalf("receipt = %+v, want Added=1 Slot=0", receipt)
	}

	applied, err := h.store.Applied()
	if err != nil || applied != 1 {
		t.Fatalf("applied = %d, %v; want 1", applied, err)
	}
}

func TestMatchOrdersFlow(t *testing.T) {
	h := openHarness(t, t.TempDir(), 1<<20)
	defer h.close()

	buyer := newCaller(t)
	seller := newCaller(t)
	crank := newCaller(t)
	ctx := context.Background()
	key := h.svc.ClusterKey()

	if _, err := h.svc.SubmitOrder(ctx, sealOrder(t, buyer, key, limitOrder(book.Buy, 110, 5, 1))); err != nil {
		t.Fatalf("submit buy: %v", err)
	}
	if _, err := h.svc.SubmitOrder(ctx, sealOrder(t, seller, key, limitOrder(book.Sell, 100, 5, 2))); err != nil {
		t.Fatalf("submit sell: %v", err)
	}

	offset, err := h.svc.MatchOrders(ctx, crank.Public())
	if err != nil {
		t.Fatalf("MatchOrders: %v", err)
	}
	if offset != 3 {
		t.Fatalf("offset = %d, want 3", offset)
	}

	evt, pt := openEvent(t, h, offset, crank)
	if evt.Kind != pb.EventKind_EVENT_ORDERS_MATCHED {
		t.Fatalf("event kind = %v, want ORDERS_MATCHED", evt.Kind)
	}
	res, err := book.DecodeMatchResult(pt)
	if err != nil {
		t.Fatalf("DecodeMatchResult: %v", err)
	}
	if res.Matched != 1 || res.MatchPrice != 105 || res.MatchAmount != 5 {
		t.Fatalf("match result = %+v", res)
	}
	if res.BuyOrderID != 0 || res.SellOrderID != 1 {
		t.Fatalf("match ids = (%d,%d), want (0,1)", res.BuyOrderID, res.SellOrderID)
	}
}

func TestMatchDrainsOnePairPerCall(t *testing.T) {
	h := openHarness(t, t.TempDir(), 1<<20)
	defer h.close()

	crank := newCaller(t)
	ctx := context.Background()
	key := h.svc.ClusterKey()

	// Two independently crossable pairs from four owners.
	for i, ord := range []book.Order{
		limitOrder(book.Buy, 110, 5, 1),
		limitOrder(book.Sell, 100, 5, 2),
		limitOrder(book.Buy, 300, 7, 3),
		limitOrder(book.Sell, 200, 7, 4),
	} {
		if _, err := h.svc.SubmitOrder(ctx, sealOrder(t, newCaller(t), key, ord)); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	matchOnce := func() book.MatchResult {
		t.Helper()
		offset, err := h.svc.MatchOrders(ctx, crank.Public())
		if err != nil {
			t.Fatalf("MatchOrders: %v", err)
		}
		_, pt := openEvent(t, h, offset, crank)
		res, err := book.DecodeMatchResult(pt)
		if err != nil {
			t.Fatalf("DecodeMatchResult: %v", err)
		}
		return res
	}

	first := matchOnce()
	if first.Matched != 1 || first.BuyOrderID != 0 || first.SellOrderID != 1 {
		t.Fatalf("first crank = %+v, want pair (0,1)", first)
	}
	second := matchOnce()
	if second.Matched != 1 || second.BuyOrderID != 2 || second.SellOrderID != 3 {
		t.Fatalf("second crank = %+v, want pair (2,3)", second)
	}
	third := matchOnce()
	if third.Matched != 0 {
		t.Fatalf("third crank = %+v, want no match on a drained book", third)
	}
}

func TestCancelAndDepthFlow(t *testing.T) {
	h := openHarness(t, t.TempDir(), 1<<20)
	defer h.close()

	caller := newCaller(t)
	watcher := newCaller(t)
	ctx := context.Background()
	key := h.svc.ClusterKey()

	if _, err := h.svc.SubmitOrder(ctx, sealOrder(t, caller, key, limitOrder(book.Buy, 100, 7, 42))); err != nil {
		t.Fatalf("submit: %v", err)
	}

	depthOf := func() book.DepthSnapshot {
		t.Helper()
		offset, err := h.svc.GetDepth(ctx, 0, watcher.Public())
		if err != nil {
			t.Fatalf("GetDepth: %v", err)
		}
		evt, pt := openEvent(t, h, offset, watcher)
		if evt.Kind != pb.EventKind_EVENT_DEPTH {
			t.Fatalf("event kind = %v, want DEPTH", evt.Kind)
		}
		snap, err := book.DecodeDepth(pt)
		if err != nil {
			t.Fatalf("DecodeDepth: %v", err)
		}
		return snap
	}

	if snap := depthOf(); snap[0] != 7 {
		t.Fatalf("buy depth = %d, want 7", snap[0])
	}

	ownerProof, err := caller.SealTo(key, book.EncodeUserID(book.UserID{Lo: 42}))
	if err != nil {
		t.Fatalf("seal owner proof: %v", err)
	}
	offset, err := h.svc.CancelOrder(ctx, 0, ownerProof)
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	evt, pt := openEvent(t, h, offset, caller)
	if evt.Kind != pb.EventKind_EVENT_ORDER_CANCELLED {
		t.Fatalf("event kind = %v, want ORDER_CANCELLED", evt.Kind)
	}
	if pt != nil {
		t.Fatal("cancel event carries a payload")
	}

	if snap := depthOf(); snap[0] != 0 {
		t.Fatalf("buy depth after cancel = %d, want 0", snap[0])
	}
}

func TestRejectedInstruction(t *testing.T) {
	h := openHarness(t, t.TempDir(), 1<<20)
	defer h.close()

	caller := newCaller(t)
	ctx := context.Background()

	// Proper framing, garbage ciphertext. The engine aborts, the
	// offset is consumed, and nothing is staged.
	env := sealOrder(t, caller, h.svc.ClusterKey(), limitOrder(book.Buy, 100, 5, 1))
	env.Ciphertext[0] ^= 0xff

	offset, err := h.svc.SubmitOrder(ctx, env)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("SubmitOrder error = %v, want ErrRejected", err)
	}
	if !errors.Is(err, cluster.ErrAborted) {
		t.Fatalf("SubmitOrder error = %v, want ErrAborted in chain", err)
	}
	if offset != 1 {
		t.Fatalf("offset = %d, want 1", offset)
	}

	applied, err := h.store.Applied()
	if err != nil || applied != 1 {
		t.Fatalf("applied = %d, %v; want 1", applied, err)
	}
	if _, err := h.store.Event(offset); !errors.Is(err, pebble.ErrNotFound) {
		t.Fatalf("Event = %v, want ErrNotFound", err)
	}

	// The book is untouched; the next submit lands in slot 0.
	good := sealOrder(t, caller, h.svc.ClusterKey(), limitOrder(book.Buy, 100, 5, 1))
	offset, err = h.svc.SubmitOrder(ctx, good)
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	_, pt := openEvent(t, h, offset, caller)
	receipt, err := book.DecodeReceipt(pt)
	if err != nil || receipt.Added != 1 || receipt.Slot != 0 {
		t.Fatalf("receipt = %+v, %v; want Added=1 Slot=0", receipt, err)
	}
}

func TestCheckpointReclaimsStorage(t *testing.T) {
	dir := t.TempDir()
	// One record per journal segment.
	h := openHarness(t, dir, 1)
	defer h.close()

	caller := newCaller(t)
	ctx := context.Background()
	key := h.svc.ClusterKey()

	var offsets []uint64
	for i := uint64(1); i <= 3; i++ {
		offset, err := h.svc.SubmitOrder(ctx, sealOrder(t, caller, key, limitOrder(book.Buy, 100+i, 1, i)))
		if err != nil {
			t.Fatalf("SubmitOrder: %v", err)
		}
		offsets = append(offsets, offset)
	}

	for _, off := range offsets {
		if err := h.store.MarkSent(off); err != nil {
			t.Fatalf("MarkSent: %v", err)
		}
		if err := h.store.MarkAcked(off); err != nil {
			t.Fatalf("MarkAcked: %v", err)
		}
	}

	if err := h.svc.checkpoint(); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}

	// Journal fully reclaimed up to the active segment.
	var left []uint64
	if _, err := wal.Replay(filepath.Join(dir, "journal"), func(r *wal.Record) error {
		left = append(left, r.Offset)
		return nil
	}); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("journal still holds offsets %v", left)
	}

	// Acked outbox records pruned.
	for _, off := range offsets {
		if _, err := h.store.Event(off); !errors.Is(err, pebble.ErrNotFound) {
			t.Fatalf("Event(%d) = %v, want ErrNotFound", off, err)
		}
	}

	// The service keeps accepting instructions afterwards.
	offset, err := h.svc.SubmitOrder(ctx, sealOrder(t, caller, key, limitOrder(book.Sell, 200, 1, 9)))
	if err != nil || offset != 4 {
		t.Fatalf("SubmitOrder after checkpoint = %d, %v; want 4", offset, err)
	}
}

func BenchmarkSubmitOrder(b *testing.B) {
	h := openHarness(b, b.TempDir(), 64<<20)
	defer h.close()

	caller := newCaller(b)
	ctx := context.Background()
	env := sealOrder(b, caller, h.svc.ClusterKey(), limitOrder(book.Buy, 100, 1, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.svc.SubmitOrder(ctx, env); err != nil {
			b.Fatal(err)
		}
	}
}
