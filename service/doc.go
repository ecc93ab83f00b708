// Package service orchestrates the core components of the dark pool:
// the sealed matching engine, the instruction journal, the ledger
// store, and the offset sequencer.
//
// It provides the single write path for submit, match, cancel, and
// depth instructions, decoupled from network transports like gRPC.
package service
