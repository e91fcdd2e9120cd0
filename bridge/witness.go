package bridge

import (
	"github.com/Sun-Jc/arkworks-backend/acir"
	"github.com/Sun-Jc/arkworks-backend/field"
	"github.com/consensys/gnark/constraint"
)

// BindValues turns a sparse solved-witness assignment into a total dense
// table over [0, numVars), converting each value into the prover field.
// A witness without a solved value is bound to zero; this is the expected
// state for unused variables (and for every variable when assignment is nil),
// not an error.
func BindValues(f field.Field, numVars int, assignment acir.WitnessMap) []constraint.Element {
	values := make([]constraint.Element, numVars)
	for i := 0; i < numVars; i++ {
		if v, ok := assignment[acir.Witness(i)]; ok {
			values[i] = field.FromACIR(f, v)
		}
	}
	return values
}
