package bridge

import (
	"fmt"

	"github.com/Sun-Jc/arkworks-backend/acir"
	"github.com/Sun-Jc/arkworks-backend/field"
	"github.com/consensys/gnark/constraint"
)

// GateMulTerm is one quadratic term Coeff * values[Left] * values[Right],
// with the coefficient already in the prover field.
type GateMulTerm struct {
	Coeff constraint.Element
	Left  acir.Witness
	Right acir.Witness
}

// GateAddTerm is one linear term Coeff * values[W].
type GateAddTerm struct {
	Coeff constraint.Element
	W     acir.Witness
}

// Gate is a normalized arithmetic constraint: an ACIR assert-zero expression
// with every coefficient converted into the prover field. Each gate becomes
// exactly one R1CS constraint.
type Gate struct {
	MulTerms []GateMulTerm
	AddTerms []GateAddTerm
	Constant constraint.Element
}

func gateFromExpression(f field.Field, e *acir.Expression) Gate {
	g := Gate{
		MulTerms: make([]GateMulTerm, len(e.MulTerms)),
		AddTerms: make([]GateAddTerm, len(e.LinearTerms)),
		Constant: field.FromACIR(f, e.Constant),
	}
	for i, t := range e.MulTerms {
		g.MulTerms[i] = GateMulTerm{
			Coeff: field.FromACIR(f, t.Coeff),
			Left:  t.Left,
			Right: t.Right,
		}
	}
	for i, t := range e.LinearTerms {
		g.AddTerms[i] = GateAddTerm{
			Coeff: field.FromACIR(f, t.Coeff),
			W:     t.W,
		}
	}
	return g
}

// ExtractGates walks the circuit's opcode list in order and converts each
// AssertZero opcode into a Gate. Directives contribute nothing; they were
// consumed by the witness solver and carry no constraint semantics. Any
// other opcode kind fails the extraction immediately.
func ExtractGates(f field.Field, c *acir.Circuit) ([]Gate, error) {
	gates := make([]Gate, 0, len(c.Opcodes))
	for i, op := range c.Opcodes {
		switch op.Type {
		case acir.OpcodeAssertZero:
			gates = append(gates, gateFromExpression(f, &op.AssertZero))
		case acir.OpcodeDirective:
		default:
			return nil, fmt.Errorf("opcode %d (%s): %w", i, op.Type, ErrUnsupportedOpcode)
		}
	}
	return gates, nil
}
