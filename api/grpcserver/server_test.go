package grpcserver

import (
	"context"
	"crypto/rand"
	"path/filepath"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"darkpool/api/pb"
	"darkpool/cluster"
	"darkpool/domain/book"
	"darkpool/enc"
	"darkpool/infra/ledger"
	"darkpool/infra/sequence"
	"darkpool/infra/wal"
	"darkpool/service"
)

// newServer stands up a full service stack under a temp dir and wraps
// it in the gRPC adapter. Handlers are invoked directly; the listener
// and HTTP/2 plumbing belong to grpc-go, not to this package.
func newServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	keys, err := cluster.LoadKeyring(filepath.Join(dir, "cluster.key"))
	if err != nil {
		t.Fatalf("LoadKeyring: %v", err)
	}
	journal, err := wal.Open(wal.Config{
		Dir:         filepath.Join(dir, "journal"),
		SegmentSize: 1 << 20,
	})
	if err != nil {
		t.Fatalf("wal.Open: %v", err)
	}
	store, err := ledger.Open(filepath.Join(dir, "ledger"))
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() {
		journal.Close()
		store.Close()
	})

	svc := service.NewLedgerService(cluster.NewEngine(keys), sequence.New(0), journal, store)
	if err := svc.Recover(filepath.Join(dir, "journal")); err != nil {
		t.Fatalf("Recover: %v", err)
	}
	return NewServer(svc)
}

func sealedOrder(t *testing.T, kp *enc.Keypair, to enc.PublicKey) *pb.Envelope {
	t.Helper()
	ord := book.Order{
		Price:  100,
		Amount: 5,
		Side:   book.Buy,
		Kind:   book.Limit,
		Owner:  book.UserID{Lo: 7},
		Active: 1,
	}
	env, err := kp.SealTo(to, book.EncodeOrder(&ord))
	if err != nil {
		t.Fatalf("SealTo: %v", err)
	}
	return pb.FromEnvelope(&env)
}

func TestClusterKeyRPC(t *testing.T) {
	srv := newServer(t)

	reply, err := srv.ClusterKey(context.Background(), &pb.ClusterKeyRequest{})
	if err != nil {
		t.Fatalf("ClusterKey: %v", err)
	}
	if len(reply.Pubkey) != enc.KeySize {
		t.Fatalf("pubkey is %d bytes, want %d", len(reply.Pubkey), enc.KeySize)
	}
	want := srv.svc.ClusterKey()
	got, err := pb.ToPublicKey(reply.Pubkey)
	if err != nil {
		t.Fatalf("ToPublicKey: %v", err)
	}
	if got != want {
		t.Fatal("ClusterKey reply does not match the engine key")
	}
}

func TestSubmitOrderRPC(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	caller, err := enc.GenerateKeypair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	key, err := pb.ToPublicKey(mustClusterKey(t, srv))
	if err != nil {
		t.Fatalf("ToPublicKey: %v", err)
	}

	ack, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		Order: sealedOrder(t, caller, key),
	})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if ack.Offset != 1 || ack.Status != "accepted" {
		t.Fatalf("ack = %+v", ack)
	}

	// Read-only depth query still consumes the next offset.
	pub := caller.Public()
	ack, err = srv.GetDepth(ctx, &pb.GetDepthRequest{ReplyPubkey: pub[:]})
	if err != nil {
		t.Fatalf("GetDepth: %v", err)
	}
	if ack.Offset != 2 {
		t.Fatalf("depth offset = %d, want 2", ack.Offset)
	}
}

func TestSubmitOrderRPCValidation(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	// Missing envelope never reaches the journal.
	_, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing order: code = %s, want InvalidArgument", status.Code(err))
	}

	// An envelope the engine cannot open is journaled, rejected, and
	// reported as the caller's fault.
	caller, err := enc.GenerateKeypair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	key, err := pb.ToPublicKey(mustClusterKey(t, srv))
	if err != nil {
		t.Fatalf("ToPublicKey: %v", err)
	}
	env := sealedOrder(t, caller, key)
	env.Ciphertext[0] ^= 0xff

	_, err = srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{Order: env})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("tampered order: code = %s, want InvalidArgument", status.Code(err))
	}

	// The rejected instruction burned offset 1.
	ack, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		Order: sealedOrder(t, caller, key),
	})
	if err != nil {
		t.Fatalf("SubmitOrder after rejection: %v", err)
	}
	if ack.Offset != 2 {
		t.Fatalf("offset = %d, want 2", ack.Offset)
	}
}

func TestCancelAndMatchRPC(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	caller, err := enc.GenerateKeypair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	key, err := pb.ToPublicKey(mustClusterKey(t, srv))
	if err != nil {
		t.Fatalf("ToPublicKey: %v", err)
	}

	if _, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		Order: sealedOrder(t, caller, key),
	}); err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	proof, err := caller.SealTo(key, book.EncodeUserID(book.UserID{Lo: 7}))
	if err != nil {
		t.Fatalf("SealTo: %v", err)
	}
	ack, err := srv.CancelOrder(ctx, &pb.CancelOrderRequest{
		SlotIndex: 0,
		Owner:     pb.FromEnvelope(&proof),
	})
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if ack.Offset != 2 {
		t.Fatalf("cancel offset = %d, want 2", ack.Offset)
	}

	pub := caller.Public()
	ack, err = srv.MatchOrders(ctx, &pb.MatchOrdersRequest{ReplyPubkey: pub[:]})
	if err != nil {
		t.Fatalf("MatchOrders: %v", err)
	}
	if ack.Offset != 3 {
		t.Fatalf("match offset = %d, want 3", ack.Offset)
	}

	if _, err := srv.MatchOrders(ctx, &pb.MatchOrdersRequest{ReplyPubkey: []byte("short")}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad reply key: code = %s, want InvalidArgument", status.Code(err))
	}
}

func mustClusterKey(t *testing.T, srv *Server) []byte {
	t.Helper()
	reply, err := srv.ClusterKey(context.Background(), &pb.ClusterKeyRequest{})
	if err != nil {
		t.Fatalf("ClusterKey: %v", err)
	}
	return reply.Pubkey
}
