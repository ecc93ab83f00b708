// Package oblivious provides the branch-free primitives the circuit package
// is built from. Every conditional effect in the engine is expressed as a
// blend over these helpers so that control flow and memory access never
// depend on order contents.
//
// Values of type Bit are always exactly 0 or 1. Callers must keep them in
// that domain; the helpers assume it.
package oblivious
