package acir

// OpcodeType enumerates the opcode kinds of a compiled circuit.
type OpcodeType int

const (
	_                           = 0
	OpcodeAssertZero OpcodeType = iota
	OpcodeDirective
	OpcodeBlackBoxFuncCall
	OpcodeMemoryOp
	OpcodeMemoryInit
	OpcodeBrilligCall
	OpcodeCall
)

func (t OpcodeType) String() string {
	switch t {
	case OpcodeAssertZero:
		return "AssertZero"
	case OpcodeDirective:
		return "Directive"
	case OpcodeBlackBoxFuncCall:
		return "BlackBoxFuncCall"
	case OpcodeMemoryOp:
		return "MemoryOp"
	case OpcodeMemoryInit:
		return "MemoryInit"
	case OpcodeBrilligCall:
		return "BrilligCall"
	case OpcodeCall:
		return "Call"
	}
	return "Unknown"
}

// Directive instructs the witness solver to decompose an expression into
// limbs of the given radix. It carries no algebraic constraint; by the time
// a circuit reaches this backend the solver has already consumed it.
type Directive struct {
	A     Expression
	B     []Witness
	Radix uint32
}

// Opcode is one entry of a circuit's opcode list. Type selects the variant;
// only the matching payload field is meaningful.
type Opcode struct {
	Type       OpcodeType
	AssertZero Expression
	Directive  Directive
}

// NewAssertZero returns an opcode constraining e to equal zero.
func NewAssertZero(e Expression) Opcode {
	return Opcode{
		Type:       OpcodeAssertZero,
		AssertZero: e,
	}
}

// NewDirective returns a solver-hint opcode.
func NewDirective(d Directive) Opcode {
	return Opcode{
		Type:      OpcodeDirective,
		Directive: d,
	}
}
