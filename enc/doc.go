// Package enc implements the two confidential container formats that cross
// the engine boundary.
//
// An Envelope carries ciphertext between a caller and the cluster. The
// caller seals to the cluster's x25519 identity, the cluster seals replies
// back to the caller's key, and either side opens with the shared key
// derived from the exchange. A Sealed box carries the cluster's private
// state under a symmetric key that never leaves the cluster package.
//
// Both containers use XChaCha20-Poly1305 with keys derived through blake3.
// The matching core itself never imports this package; plaintext only
// exists between open and seal inside the cluster engine.
package enc
