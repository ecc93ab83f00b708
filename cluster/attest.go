package cluster

import (
	"fmt"

	"github.com/zeebo/blake3"

	"darkpool/enc"
)

// DigestSize is the width of an attestation digest.
const DigestSize = 32

// Attestation carries blake3 digests of the containers an invocation
// produced. The ledger recomputes the digests over what it is about to
// persist and refuses the invocation on any mismatch, so a corrupted or
// substituted output can never reach the state store or the event stream.
type Attestation struct {
	// State covers the new sealed book, zero when the invocation left
	// state untouched.
	State [DigestSize]byte
	// Output covers the result envelope, zero when the invocation
	// produced none.
	Output [DigestSize]byte
}

// Verify recomputes digests over the outputs the caller is about to accept.
// A nil container asserts the corresponding digest is zero.
func (a *Attestation) Verify(state *enc.Sealed, output *enc.Envelope) error {
	want := attest(state, output)
	if a.State != want.State {
		return fmt.Errorf("%w: state digest mismatch", ErrAborted)
	}
	if a.Output != want.Output {
		return fmt.Errorf("%w: output digest mismatch", ErrAborted)
	}
	return nil
}

func attest(state *enc.Sealed, output *enc.Envelope) Attestation {
	var a Attestation
	if state != nil {
		raw, _ := state.MarshalBinary()
		a.State = digest(raw)
	}
	if output != nil {
		raw, _ := output.MarshalBinary()
		a.Output = digest(raw)
	}
	return a
}

func digest(raw []byte) (d [DigestSize]byte) {
	h := blake3.New()
	h.Write(raw)
	h.Sum(d[:0])
	return d
}
