package r1cs

import (
	"fmt"

	"github.com/Sun-Jc/arkworks-backend/field"
	"github.com/consensys/gnark/constraint"
)

// R1C is one constraint A * B = C.
type R1C struct {
	A, B, C LinearCombination
}

// ConstraintSystem accumulates variables and constraints over a prover field.
// Not safe for concurrent use; a synthesis run assumes exclusive ownership.
type ConstraintSystem struct {
	field field.Field

	// instance[0] is the unit constant
	instance []constraint.Element
	witness  []constraint.Element

	constraints []R1C
}

func NewConstraintSystem(f field.Field) *ConstraintSystem {
	return &ConstraintSystem{
		field:    f,
		instance: []constraint.Element{f.One()},
	}
}

func (cs *ConstraintSystem) Field() field.Field {
	return cs.field
}

// NewInstanceVariable allocates a verifier-visible variable assigned v.
func (cs *ConstraintSystem) NewInstanceVariable(v constraint.Element) (Variable, error) {
	cs.instance = append(cs.instance, v)
	return Variable{Kind: KindInstance, Index: len(cs.instance) - 1}, nil
}

// NewWitnessVariable allocates a prover-only variable assigned v.
func (cs *ConstraintSystem) NewWitnessVariable(v constraint.Element) (Variable, error) {
	cs.witness = append(cs.witness, v)
	return Variable{Kind: KindWitness, Index: len(cs.witness) - 1}, nil
}

// NewVariable allocates a variable assigned v with the given visibility.
// Both visibilities currently allocate a witness-kind variable; a backend
// that separates instance rows from witness rows would branch on vis here.
func (cs *ConstraintSystem) NewVariable(vis Visibility, v constraint.Element) (Variable, error) {
	switch vis {
	case Public, Private:
		return cs.NewWitnessVariable(v)
	default:
		return Variable{}, fmt.Errorf("invalid visibility %d", vis)
	}
}

// EnforceConstraint appends the constraint a * b = c. Every variable
// referenced by the three combinations must belong to this system.
func (cs *ConstraintSystem) EnforceConstraint(a, b, c LinearCombination) error {
	for _, lc := range []LinearCombination{a, b, c} {
		for _, t := range lc {
			if err := cs.checkVariable(t.V); err != nil {
				return err
			}
		}
	}
	cs.constraints = append(cs.constraints, R1C{A: a, B: b, C: c})
	return nil
}

func (cs *ConstraintSystem) checkVariable(v Variable) error {
	switch v.Kind {
	case KindOne:
		return nil
	case KindInstance:
		if v.Index < 1 || v.Index >= len(cs.instance) {
			return fmt.Errorf("instance variable %d not allocated", v.Index)
		}
	case KindWitness:
		if v.Index < 0 || v.Index >= len(cs.witness) {
			return fmt.Errorf("witness variable %d not allocated", v.Index)
		}
	default:
		return fmt.Errorf("invalid variable kind %d", v.Kind)
	}
	return nil
}

// AssignedValue returns the value a variable was seeded with.
func (cs *ConstraintSystem) AssignedValue(v Variable) constraint.Element {
	switch v.Kind {
	case KindOne:
		return cs.instance[0]
	case KindInstance:
		return cs.instance[v.Index]
	case KindWitness:
		return cs.witness[v.Index]
	}
	return constraint.Element{}
}

func (cs *ConstraintSystem) evalLinearCombination(lc LinearCombination) constraint.Element {
	var acc constraint.Element
	for _, t := range lc {
		acc = cs.field.Add(acc, cs.field.Mul(t.Coeff, cs.AssignedValue(t.V)))
	}
	return acc
}

// IsSatisfied reports whether every constraint holds under the assigned
// values.
func (cs *ConstraintSystem) IsSatisfied() bool {
	for _, r1c := range cs.constraints {
		a := cs.evalLinearCombination(r1c.A)
		b := cs.evalLinearCombination(r1c.B)
		c := cs.evalLinearCombination(r1c.C)
		if cs.field.Mul(a, b) != c {
			return false
		}
	}
	return true
}

func (cs *ConstraintSystem) NbConstraints() int {
	return len(cs.constraints)
}

func (cs *ConstraintSystem) NbInstanceVariables() int {
	return len(cs.instance) - 1
}

func (cs *ConstraintSystem) NbWitnessVariables() int {
	return len(cs.witness)
}

// Constraints returns the accumulated constraints.
func (cs *ConstraintSystem) Constraints() []R1C {
	return cs.constraints
}
