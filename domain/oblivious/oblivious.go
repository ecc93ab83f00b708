package oblivious

import "math/bits"

// Bit is a boolean carried as a full machine word, 0 or 1.
type Bit uint64

// mask widens a Bit to an all-zeros or all-ones word.
func (b Bit) mask() uint64 {
	return -uint64(b)
}

// Select returns a when bit is 1 and b when bit is 0, without branching.
func Select(bit Bit, a, b uint64) uint64 {
	emit(OpSelect)
	return b ^ (bit.mask() & (a ^ b))
}

// SelectBit is Select restricted to the Bit domain.
func SelectBit(bit, a, b Bit) Bit {
	emit(OpSelect)
	return b ^ (bit & (a ^ b))
}

// Eq returns 1 when a == b.
func Eq(a, b uint64) Bit {
	emit(OpEq)
	x := a ^ b
	// x|-x has its top bit set exactly when x != 0.
	return Bit(((x | -x) >> 63) ^ 1)
}

// Eq128 returns 1 when the two 128-bit values (hi,lo pairs) are equal.
func Eq128(aHi, aLo, bHi, bLo uint64) Bit {
	emit(OpEq128)
	x := (aHi ^ bHi) | (aLo ^ bLo)
	return Bit(((x | -x) >> 63) ^ 1)
}

// Lt returns 1 when a < b, treating both as unsigned.
func Lt(a, b uint64) Bit {
	emit(OpLt)
	_, borrow := bits.Sub64(a, b, 0)
	return Bit(borrow)
}

// Ge returns 1 when a >= b.
func Ge(a, b uint64) Bit {
	return Not(Lt(a, b))
}

// Min returns the smaller of a and b as a blend.
func Min(a, b uint64) uint64 {
	return Select(Lt(a, b), a, b)
}

// And, Or and Not operate on Bits. They compile to single instructions and
// are recorded on the trace like every other primitive.

func And(a, b Bit) Bit {
	emit(OpAnd)
	return a & b
}

func Or(a, b Bit) Bit {
	emit(OpOr)
	return a | b
}

func Not(a Bit) Bit {
	emit(OpNot)
	return a ^ 1
}
