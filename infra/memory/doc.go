// Package memory provides typed object pools for the plaintext scratch
// space the computation engine works in. Pools here wipe objects before
// reuse so decrypted order data never lingers between invocations.
package memory
