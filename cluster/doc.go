// Package cluster evaluates confidential instructions against the sealed
// order book. It stands in for the multiparty cluster of the production
// substrate: the Engine opens the containers an instruction references,
// runs the matching circuit, reseals, and attests to the outputs it
// produced. The keyring never leaves this package, so no other layer can
// observe plaintext order data.
package cluster
