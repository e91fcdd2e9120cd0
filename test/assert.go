package test

import (
	"testing"

	"github.com/Sun-Jc/arkworks-backend/bridge"
	"github.com/Sun-Jc/arkworks-backend/field"
	"github.com/Sun-Jc/arkworks-backend/r1cs"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Satisfied synthesizes c into a fresh constraint system and requires the
// result to be satisfied under the bound witness values.
func (a *Assert) Satisfied(f field.Field, c *bridge.Circuit) *r1cs.ConstraintSystem {
	cs := r1cs.NewConstraintSystem(f)
	if err := c.Synthesize(cs); err != nil {
		a.t.Fatal(err)
	}
	if !cs.IsSatisfied() {
		a.t.Fatal("should be satisfied")
	}
	return cs
}

// Unsatisfied synthesizes c and requires the result to be unsatisfied;
// synthesis itself must still succeed.
func (a *Assert) Unsatisfied(f field.Field, c *bridge.Circuit) *r1cs.ConstraintSystem {
	cs := r1cs.NewConstraintSystem(f)
	if err := c.Synthesize(cs); err != nil {
		a.t.Fatal(err)
	}
	if cs.IsSatisfied() {
		a.t.Fatal("should not be satisfied")
	}
	return cs
}
