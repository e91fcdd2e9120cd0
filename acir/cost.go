package acir

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOpcode is returned when a circuit contains an opcode kind
// other than AssertZero or Directive. This backend handles purely-arithmetic
// circuits only; such a circuit cannot be translated, and the error is not
// recoverable.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

// NumOpcodes estimates the proving-side cost of a circuit in backend opcodes.
// An AssertZero opcode with k multiplication terms costs k+1: one auxiliary
// constraint per multiplication plus one for the linear combination. A
// Directive costs nothing. Any other opcode kind makes the circuit
// unrepresentable by this backend.
func NumOpcodes(c *Circuit) (int, error) {
	total := 0
	for i, op := range c.Opcodes {
		switch op.Type {
		case OpcodeAssertZero:
			total += op.AssertZero.NumMulTerms() + 1
		case OpcodeDirective:
		default:
			return 0, fmt.Errorf("opcode %d (%s): %w", i, op.Type, ErrUnsupportedOpcode)
		}
	}
	return total, nil
}
