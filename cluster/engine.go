package cluster

import (
	"errors"
	"fmt"

	"darkpool/domain/book"
	"darkpool/domain/circuit"
	"darkpool/enc"
	"darkpool/infra/memory"
)

// ErrAborted marks an invocation that produced no trustworthy output:
// container authentication failed, a payload had the wrong shape, or an
// output digest did not verify. Nothing from an aborted invocation may be
// persisted or published.
var ErrAborted = errors.New("cluster: computation aborted")

func abort(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrAborted, stage, err)
}

// Engine evaluates one instruction per call against a sealed book. Every
// call opens the state, runs the fixed-shape circuit, reseals, and attests
// to what it produced. The engine itself is stateless; callers thread the
// sealed state through.
type Engine struct {
	keys    *Keyring
	books   *memory.Pool[book.OrderBook]
	scratch *memory.Scratch
}

func NewEngine(keys *Keyring) *Engine {
	return &Engine{
		keys:    keys,
		books:   memory.NewPool(func() *book.OrderBook { return &book.OrderBook{} }),
		scratch: memory.NewScratch(book.BookSize),
	}
}

// Public returns the cluster public key callers seal instructions to.
func (e *Engine) Public() enc.PublicKey {
	return e.keys.Public()
}

// NewBook seals an empty book, the state a fresh ledger starts from.
func (e *Engine) NewBook() (enc.Sealed, error) {
	ob := e.books.Get()
	defer e.books.Release(ob)
	return e.sealBook(ob)
}

// AddOrder inserts the order carried by env into the sealed book. The
// receipt envelope goes back to whoever sealed the order.
func (e *Engine) AddOrder(state enc.Sealed, env enc.Envelope) (enc.Sealed, enc.Envelope, Attestation, error) {
	ob, err := e.openBook(state)
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, err
	}
	defer e.books.Release(ob)

	pt, err := e.keys.id.Open(env)
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, abort("open order", err)
	}
	ord, err := book.DecodeOrder(pt)
	enc.Wipe(pt)
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, abort("decode order", err)
	}

	var receipt book.InsertReceipt
	*ob, receipt = circuit.AddOrder(*ob, ord)

	sealed, err := e.sealBook(ob)
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, err
	}
	out, err := e.sealReply(env.Sender, book.EncodeReceipt(&receipt))
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, abort("seal receipt", err)
	}
	return sealed, out, attest(&sealed, &out), nil
}

// MatchOrders runs one matching pass and seals the result to reply.
func (e *Engine) MatchOrders(state enc.Sealed, reply enc.PublicKey) (enc.Sealed, enc.Envelope, Attestation, error) {
	ob, err := e.openBook(state)
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, err
	}
	defer e.books.Release(ob)

	var res book.MatchResult
	*ob, res = circuit.MatchOrders(*ob)

	sealed, err := e.sealBook(ob)
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, err
	}
	out, err := e.sealReply(reply, book.EncodeMatchResult(&res))
	if err != nil {
		return enc.Sealed{}, enc.Envelope{}, Attestation{}, abort("seal result", err)
	}
	return sealed, out, attest(&sealed, &out), nil
}

// CancelOrder deactivates the slot if the envelope proves the owner. The
// outcome itself is never disclosed, so there is no result envelope.
func (e *Engine) CancelOrder(state enc.Sealed, slot uint64, owner enc.Envelope) (enc.Sealed, Attestation, error) {
	ob, err := e.openBook(state)
	if err != nil {
		return enc.Sealed{}, Attestation{}, err
	}
	defer e.books.Release(ob)

	pt, err := e.keys.id.Open(owner)
	if err != nil {
		return enc.Sealed{}, Attestation{}, abort("open owner", err)
	}
	id, err := book.DecodeUserID(pt)
	enc.Wipe(pt)
	if err != nil {
		return enc.Sealed{}, Attestation{}, abort("decode owner", err)
	}

	*ob = circuit.CancelOrder(*ob, slot, id)

	sealed, err := e.sealBook(ob)
	if err != nil {
		return enc.Sealed{}, Attestation{}, err
	}
	return sealed, attest(&sealed, nil), nil
}

// Depth aggregates resting amounts per side and seals the snapshot to
// reply. State is read-only here.
func (e *Engine) Depth(state enc.Sealed, priceLevels uint64, reply enc.PublicKey) (enc.Envelope, Attestation, error) {
	ob, err := e.openBook(state)
	if err != nil {
		return enc.Envelope{}, Attestation{}, err
	}
	defer e.books.Release(ob)

	depth := circuit.BookDepth(*ob, priceLevels)

	out, err := e.sealReply(reply, book.EncodeDepth(&depth))
	if err != nil {
		return enc.Envelope{}, Attestation{}, abort("seal depth", err)
	}
	return out, attest(nil, &out), nil
}

func (e *Engine) openBook(state enc.Sealed) (*book.OrderBook, error) {
	pt, err := enc.OpenBox(&e.keys.book, state)
	if err != nil {
		return nil, abort("open state", err)
	}
	ob := e.books.Get()
	err = book.DecodeBookInto(ob, pt)
	enc.Wipe(pt)
	if err != nil {
		e.books.Release(ob)
		return nil, abort("decode state", err)
	}
	return ob, nil
}

func (e *Engine) sealBook(ob *book.OrderBook) (enc.Sealed, error) {
	buf := e.scratch.Get()
	defer e.scratch.Put(buf)

	if err := book.EncodeBookInto(buf, ob); err != nil {
		return enc.Sealed{}, abort("encode state", err)
	}
	sealed, err := enc.SealBox(&e.keys.book, buf)
	if err != nil {
		return enc.Sealed{}, abort("seal state", err)
	}
	return sealed, nil
}

func (e *Engine) sealReply(to enc.PublicKey, plaintext []byte) (enc.Envelope, error) {
	env, err := e.keys.id.SealTo(to, plaintext)
	enc.Wipe(plaintext)
	return env, err
}
