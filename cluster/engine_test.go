package cluster

import (
	"crypto/rand"
	"errors"
	"testing"

	"darkpool/domain/book"
	"darkpool/enc"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	keys, err := NewKeyring(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return NewEngine(keys)
}

func newCaller(t *testing.T) *enc.Keypair {
	t.Helper()
	kp, err := enc.GenerateKeypair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return kp
}

func sealOrder(t *testing.T, e *Engine, caller *enc.Keypair, ord book.Order) enc.Envelope {
	t.Helper()
	env, err := caller.SealTo(e.Public(), book.EncodeOrder(&ord))
	if err != nil {
		t.Fatal(err)
	}
	return env
}

func mustAdd(t *testing.T, e *Engine, state enc.Sealed, caller *enc.Keypair, ord book.Order) (enc.Sealed, book.InsertReceipt) {
	t.Helper()
	next, out, att, err := e.AddOrder(state, sealOrder(t, e, caller, ord))
	if err != nil {
		t.Fatal(err)
	}
	if err := att.Verify(&next, &out); err != nil {
		t.Fatal(err)
	}
	pt, err := caller.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	receipt, err := book.DecodeReceipt(pt)
	if err != nil {
		t.Fatal(err)
	}
	return next, receipt
}

func TestEngineAddOrder(t *testing.T) {
	e := newTestEngine(t)
	caller := newCaller(t)

	state, err := e.NewBook()
	if err != nil {
		t.Fatal(err)
	}

	ord := book.Order{
		Price: 104, Amount: 10, Side: book.Buy, Kind: book.Limit,
		Owner: book.UserID{Lo: 1}, Active: 1,
	}
	next, receipt := mustAdd(t, e, state, caller, ord)
	if receipt.Added != 1 || receipt.Slot != 0 {
		t.Fatalf("receipt = %+v, want Added=1 Slot=0", receipt)
	}
	if len(next.Ciphertext) != book.BookSize+enc.TagSize {
		t.Fatalf("sealed state is %d bytes, want %d", len(next.Ciphertext), book.BookSize+enc.TagSize)
	}
}

func TestEngineMatchFlow(t *testing.T) {
	e := newTestEngine(t)
	buyer := newCaller(t)
	seller := newCaller(t)
	crank := newCaller(t)

	state, err := e.NewBook()
	if err != nil {
		t.Fatal(err)
	}
	state, _ = mustAdd(t, e, state, buyer, book.Order{
		Price: 104, Amount: 10, Side: book.Buy, Kind: book.Limit,
		Owner: book.UserID{Lo: 1}, Active: 1,
	})
	state, _ = mustAdd(t, e, state, seller, book.Order{
		Price: 100, Amount: 10, Side: book.Sell, Kind: book.Limit,
		Owner: book.UserID{Lo: 2}, Active: 1,
	})

	next, out, att, err := e.MatchOrders(state, crank.Public())
	if err != nil {
		t.Fatal(err)
	}
	if err := att.Verify(&next, &out); err != nil {
		t.Fatal(err)
	}
	pt, err := crank.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	res, err := book.DecodeMatchResult(pt)
	if err != nil {
		t.Fatal(err)
	}
	if res.Matched != 1 || res.MatchPrice != 102 || res.MatchAmount != 10 {
		t.Fatalf("result = %+v, want matched @102 x10", res)
	}

	// Both sides drained: the depth snapshot is all zero.
	depthEnv, att, err := e.Depth(next, 10, crank.Public())
	if err != nil {
		t.Fatal(err)
	}
	if err := att.Verify(nil, &depthEnv); err != nil {
		t.Fatal(err)
	}
	pt, err = crank.Open(depthEnv)
	if err != nil {
		t.Fatal(err)
	}
	depth, err := book.DecodeDepth(pt)
	if err != nil {
		t.Fatal(err)
	}
	if depth != (book.DepthSnapshot{}) {
		t.Fatalf("depth = %v, want empty", depth)
	}
}

func TestEngineCancelOwnership(t *testing.T) {
	e := newTestEngine(t)
	owner := newCaller(t)
	intruder := newCaller(t)

	ownerID := book.UserID{Hi: 7, Lo: 8}

	state, err := e.NewBook()
	if err != nil {
		t.Fatal(err)
	}
	state, receipt := mustAdd(t, e, state, owner, book.Order{
		Price: 100, Amount: 30, Side: book.Buy, Kind: book.Limit,
		Owner: ownerID, Active: 1,
	})

	// A foreign identity at the right slot must not take the order down.
	env, err := intruder.SealTo(e.Public(), book.EncodeUserID(book.UserID{Lo: 999}))
	if err != nil {
		t.Fatal(err)
	}
	state, att, err := e.CancelOrder(state, receipt.Slot, env)
	if err != nil {
		t.Fatal(err)
	}
	if err := att.Verify(&state, nil); err != nil {
		t.Fatal(err)
	}
	if got := depthTotal(t, e, state, owner); got != 30 {
		t.Fatalf("buy depth after foreign cancel = %d, want 30", got)
	}

	env, err = owner.SealTo(e.Public(), book.EncodeUserID(ownerID))
	if err != nil {
		t.Fatal(err)
	}
	state, _, err = e.CancelOrder(state, receipt.Slot, env)
	if err != nil {
		t.Fatal(err)
	}
	if got := depthTotal(t, e, state, owner); got != 0 {
		t.Fatalf("buy depth after owner cancel = %d, want 0", got)
	}
}

func depthTotal(t *testing.T, e *Engine, state enc.Sealed, viewer *enc.Keypair) uint64 {
	t.Helper()
	env, _, err := e.Depth(state, 10, viewer.Public())
	if err != nil {
		t.Fatal(err)
	}
	pt, err := viewer.Open(env)
	if err != nil {
		t.Fatal(err)
	}
	depth, err := book.DecodeDepth(pt)
	if err != nil {
		t.Fatal(err)
	}
	return depth[0]
}

func TestEngineAborts(t *testing.T) {
	e := newTestEngine(t)
	caller := newCaller(t)

	state, err := e.NewBook()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("tampered state", func(t *testing.T) {
		bad := state
		bad.Ciphertext = append([]byte(nil), state.Ciphertext...)
		bad.Ciphertext[0] ^= 1
		_, _, _, err := e.MatchOrders(bad, caller.Public())
		if !errors.Is(err, ErrAborted) {
			t.Fatalf("err = %v, want ErrAborted", err)
		}
	})

	t.Run("tampered order envelope", func(t *testing.T) {
		ord := book.Order{Price: 1, Amount: 1, Side: book.Buy, Kind: book.Limit, Active: 1}
		env := sealOrder(t, e, caller, ord)
		env.Ciphertext = append([]byte(nil), env.Ciphertext...)
		env.Ciphertext[3] ^= 1
		_, _, _, err := e.AddOrder(state, env)
		if !errors.Is(err, ErrAborted) {
			t.Fatalf("err = %v, want ErrAborted", err)
		}
	})

	t.Run("misshapen payload", func(t *testing.T) {
		env, err := caller.SealTo(e.Public(), []byte("not an order"))
		if err != nil {
			t.Fatal(err)
		}
		_, _, _, err = e.AddOrder(state, env)
		if !errors.Is(err, ErrAborted) {
			t.Fatalf("err = %v, want ErrAborted", err)
		}
	})

	t.Run("foreign cluster state", func(t *testing.T) {
		other := newTestEngine(t)
		foreign, err := other.NewBook()
		if err != nil {
			t.Fatal(err)
		}
		_, _, _, err = e.MatchOrders(foreign, caller.Public())
		if !errors.Is(err, ErrAborted) {
			t.Fatalf("err = %v, want ErrAborted", err)
		}
	})

	t.Run("digest mismatch", func(t *testing.T) {
		next, out, att, err := e.MatchOrders(state, caller.Public())
		if err != nil {
			t.Fatal(err)
		}
		swapped := next
		swapped.Ciphertext = append([]byte(nil), next.Ciphertext...)
		swapped.Ciphertext[0] ^= 1
		if err := att.Verify(&swapped, &out); !errors.Is(err, ErrAborted) {
			t.Fatalf("err = %v, want ErrAborted", err)
		}
		if err := att.Verify(&next, nil); !errors.Is(err, ErrAborted) {
			t.Fatalf("missing output: err = %v, want ErrAborted", err)
		}
	})
}
