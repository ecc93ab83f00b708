package oblivious

import (
	"math"
	"testing"
)

func TestSelect(t *testing.T) {
	if got := Select(1, 7, 9); got != 7 {
		t.Errorf("Select(1,7,9) = %d, want 7", got)
	}
	if got := Select(0, 7, 9); got != 9 {
		t.Errorf("Select(0,7,9) = %d, want 9", got)
	}
	if got := Select(1, math.MaxUint64, 0); got != math.MaxUint64 {
		t.Errorf("Select(1,max,0) = %d, want max", got)
	}
	if got := Select(0, math.MaxUint64, 0); got != 0 {
		t.Errorf("Select(0,max,0) = %d, want 0", got)
	}
}

func TestEq(t *testing.T) {
	cases := []struct {
		a, b uint64
		want Bit
	}{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
		{math.MaxUint64, math.MaxUint64, 1},
		{math.MaxUint64, math.MaxUint64 - 1, 0},
		{1 << 63, 1 << 63, 1},
		{1 << 63, 0, 0},
	}
	for _, c := range cases {
		if got := Eq(c.a, c.b); got != c.want {
			t.Errorf("Eq(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestEq128(t *testing.T) {
	if Eq128(1, 2, 1, 2) != 1 {
		t.Error("equal 128-bit values not detected")
	}
	if Eq128(1, 2, 1, 3) != 0 {
		t.Error("low-word difference not detected")
	}
	if Eq128(1, 2, 9, 2) != 0 {
		t.Error("high-word difference not detected")
	}
	if Eq128(0, 0, 0, 0) != 1 {
		t.Error("zero values should compare equal")
	}
}

func TestLtGe(t *testing.T) {
	cases := []struct {
		a, b   uint64
		lt, ge Bit
	}{
		{0, 0, 0, 1},
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{100, 104, 1, 0},
		{104, 100, 0, 1},
		{math.MaxUint64, 0, 0, 1},
		{0, math.MaxUint64, 1, 0},
		{math.MaxUint64, math.MaxUint64, 0, 1},
	}
	for _, c := range cases {
		if got := Lt(c.a, c.b); got != c.lt {
			t.Errorf("Lt(%d,%d) = %d, want %d", c.a, c.b, got, c.lt)
		}
		if got := Ge(c.a, c.b); got != c.ge {
			t.Errorf("Ge(%d,%d) = %d, want %d", c.a, c.b, got, c.ge)
		}
	}
}

func TestMin(t *testing.T) {
	if got := Min(5, 3); got != 3 {
		t.Errorf("Min(5,3) = %d, want 3", got)
	}
	if got := Min(3, 5); got != 3 {
		t.Errorf("Min(3,5) = %d, want 3", got)
	}
	if got := Min(4, 4); got != 4 {
		t.Errorf("Min(4,4) = %d, want 4", got)
	}
}

func TestBitOps(t *testing.T) {
	if And(1, 1) != 1 || And(1, 0) != 0 || And(0, 1) != 0 || And(0, 0) != 0 {
		t.Error("And truth table broken")
	}
	if Or(1, 1) != 1 || Or(1, 0) != 1 || Or(0, 1) != 1 || Or(0, 0) != 0 {
		t.Error("Or truth table broken")
	}
	if Not(0) != 1 || Not(1) != 0 {
		t.Error("Not truth table broken")
	}
	if SelectBit(1, 0, 1) != 0 || SelectBit(0, 0, 1) != 1 {
		t.Error("SelectBit broken")
	}
}

// The recorder must observe identical op sequences for inputs that differ
// only in values, and the sequence must match what the helpers are
// documented to decompose into.
func TestTraceShape(t *testing.T) {
	run := func(a, b uint64) *Trace {
		tr := &Trace{}
		tr.Attach()
		defer tr.Detach()
		Min(a, b)
		Ge(a, b)
		return tr
	}

	t1 := run(1, 2)
	t2 := run(math.MaxUint64, 0)
	if !t1.Equal(t2) {
		t.Fatalf("trace shapes differ across inputs: %v vs %v", t1.Ops, t2.Ops)
	}

	want := []Op{OpLt, OpSelect, OpLt, OpNot}
	if len(t1.Ops) != len(want) {
		t.Fatalf("trace length %d, want %d", len(t1.Ops), len(want))
	}
	for i := range want {
		if t1.Ops[i] != want[i] {
			t.Fatalf("trace[%d] = %v, want %v", i, t1.Ops[i], want[i])
		}
	}
}
