package oblivious

// Op identifies one primitive invocation on the trace. Traces carry op
// kinds only, never operand values, so recording cannot leak order data.
type Op uint8

const (
	OpSelect Op = iota + 1
	OpEq
	OpEq128
	OpLt
	OpAnd
	OpOr
	OpNot
)

func (o Op) String() string {
	switch o {
	case OpSelect:
		return "select"
	case OpEq:
		return "eq"
	case OpEq128:
		return "eq128"
	case OpLt:
		return "lt"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	default:
		return "unknown"
	}
}

// recorder receives every primitive op while attached. The nil check in
// emit branches on the recorder itself, never on operand values, so it
// does not disturb the data-independence of the primitives.
var recorder func(Op)

func emit(op Op) {
	if recorder != nil {
		recorder(op)
	}
}

// Trace accumulates the op sequence of everything executed between
// Attach and Detach. The engine runs one invocation at a time, and Trace
// relies on that: it must not be attached while primitives run on other
// goroutines.
type Trace struct {
	Ops []Op
}

// Attach starts recording onto t, replacing any previous recorder.
func (t *Trace) Attach() {
	recorder = func(op Op) { t.Ops = append(t.Ops, op) }
}

// Detach stops recording.
func (t *Trace) Detach() {
	recorder = nil
}

// Equal reports whether two traces have identical shape.
func (t *Trace) Equal(other *Trace) bool {
	if len(t.Ops) != len(other.Ops) {
		return false
	}
	for i := range t.Ops {
		if t.Ops[i] != other.Ops[i] {
			return false
		}
	}
	return true
}
