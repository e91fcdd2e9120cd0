package r1cs_test

import (
	"testing"

	"github.com/Sun-Jc/arkworks-backend/field"
	"github.com/Sun-Jc/arkworks-backend/r1cs"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func bn254Field() field.Field {
	return field.GetFieldFromOrder(fr.Modulus())
}

func TestAllocation(t *testing.T) {
	f := bn254Field()
	cs := r1cs.NewConstraintSystem(f)

	v1, err := cs.NewVariable(r1cs.Public, f.One())
	require.NoError(t, err)
	v2, err := cs.NewVariable(r1cs.Private, f.FromInterface(2))
	require.NoError(t, err)

	// both visibilities allocate witness-kind variables
	require.Equal(t, r1cs.KindWitness, v1.Kind)
	require.Equal(t, r1cs.KindWitness, v2.Kind)
	require.True(t, v1.IsAllocated())
	require.Equal(t, 2, cs.NbWitnessVariables())
	require.Equal(t, 0, cs.NbInstanceVariables())

	require.False(t, r1cs.One().IsAllocated())
	require.True(t, f.IsOne(cs.AssignedValue(r1cs.One())))
	require.Equal(t, f.FromInterface(2), cs.AssignedValue(v2))
}

func TestEnforceConstraintValidation(t *testing.T) {
	f := bn254Field()
	cs := r1cs.NewConstraintSystem(f)

	dangling := r1cs.Variable{Kind: r1cs.KindWitness, Index: 7}
	lc := r1cs.LinearCombination{{Coeff: f.One(), V: dangling}}
	err := cs.EnforceConstraint(lc, nil, nil)
	require.Error(t, err)
	require.Equal(t, 0, cs.NbConstraints())

	var zero r1cs.Variable
	err = cs.EnforceConstraint(nil, r1cs.LinearCombination{{Coeff: f.One(), V: zero}}, nil)
	require.Error(t, err)
}

func TestSatisfaction(t *testing.T) {
	f := bn254Field()

	build := func(xVal, yVal uint64) *r1cs.ConstraintSystem {
		cs := r1cs.NewConstraintSystem(f)
		x, err := cs.NewWitnessVariable(f.FromInterface(xVal))
		require.NoError(t, err)
		y, err := cs.NewWitnessVariable(f.FromInterface(yVal))
		require.NoError(t, err)

		// ONE * (x - y) = 0
		one := r1cs.LinearCombination{{Coeff: f.One(), V: r1cs.One()}}
		diff := r1cs.LinearCombination{
			{Coeff: f.One(), V: x},
			{Coeff: f.Neg(f.One()), V: y},
		}
		require.NoError(t, cs.EnforceConstraint(one, diff, nil))
		return cs
	}

	require.True(t, build(3, 3).IsSatisfied())
	require.False(t, build(3, 4).IsSatisfied())
}

func TestMulConstraint(t *testing.T) {
	f := bn254Field()
	cs := r1cs.NewConstraintSystem(f)

	a, _ := cs.NewWitnessVariable(f.FromInterface(3))
	b, _ := cs.NewWitnessVariable(f.FromInterface(5))
	c, _ := cs.NewWitnessVariable(f.FromInterface(15))

	lcA := r1cs.LinearCombination{{Coeff: f.One(), V: a}}
	lcB := r1cs.LinearCombination{{Coeff: f.One(), V: b}}
	lcC := r1cs.LinearCombination{{Coeff: f.One(), V: c}}
	require.NoError(t, cs.EnforceConstraint(lcA, lcB, lcC))
	require.Equal(t, 1, cs.NbConstraints())
	require.True(t, cs.IsSatisfied())
}

func TestEmptySystemIsSatisfied(t *testing.T) {
	cs := r1cs.NewConstraintSystem(bn254Field())
	require.True(t, cs.IsSatisfied())
	require.Equal(t, 0, cs.NbConstraints())
}

func TestInstanceAllocation(t *testing.T) {
	f := bn254Field()
	cs := r1cs.NewConstraintSystem(f)

	v, err := cs.NewInstanceVariable(f.FromInterface(9))
	require.NoError(t, err)
	require.Equal(t, r1cs.KindInstance, v.Kind)
	require.Equal(t, 1, cs.NbInstanceVariables())
	require.Equal(t, f.FromInterface(9), cs.AssignedValue(v))
}
