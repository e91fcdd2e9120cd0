// Package r1cs provides an assignment-carrying rank-1 constraint system: a
// list of A*B = C rows over allocated variables, each variable seeded with a
// concrete field value at allocation time so satisfaction can be checked
// directly. It is the reference target of the bridge; other proving backends
// can replace it through the bridge.ConstraintSystem interface.
package r1cs

import "github.com/consensys/gnark/constraint"

// VariableKind discriminates a variable handle.
type VariableKind int

const (
	_                    = 0
	KindOne VariableKind = iota // the fixed unit constant
	KindInstance                // allocated, verifier-visible
	KindWitness                 // allocated, prover-only
)

// Visibility tags an allocation request as public or private. The constraint
// system currently allocates both identically (see NewVariable), but the tag
// is part of the call so backends that distinguish instance rows from witness
// rows can honor it.
type Visibility int

const (
	_                 = 0
	Public Visibility = iota
	Private
)

// Variable is a handle to a constraint-system variable. The zero value is
// not a valid handle; use One or an allocation method.
type Variable struct {
	Kind  VariableKind
	Index int
}

// One returns the handle of the fixed unit constant.
func One() Variable {
	return Variable{Kind: KindOne}
}

// IsAllocated reports whether v refers to a genuine allocated variable, as
// opposed to the unit constant or an uninitialized handle.
func (v Variable) IsAllocated() bool {
	return v.Kind == KindInstance || v.Kind == KindWitness
}

// Term is one Coeff * V entry of a linear combination.
type Term struct {
	Coeff constraint.Element
	V     Variable
}

// LinearCombination is a sum of terms over constraint-system variables.
type LinearCombination []Term
