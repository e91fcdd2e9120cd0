package acir

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MulTerm is one quadratic term Coeff * Left * Right.
type MulTerm struct {
	Coeff fr.Element
	Left  Witness
	Right Witness
}

// LinearTerm is one linear term Coeff * W.
type LinearTerm struct {
	Coeff fr.Element
	W     Witness
}

// Expression is the polynomial
//
//	sum(MulTerms) + sum(LinearTerms) + Constant
//
// over circuit witnesses. An AssertZero opcode constrains it to zero.
type Expression struct {
	MulTerms    []MulTerm
	LinearTerms []LinearTerm
	Constant    fr.Element
}

func (e *Expression) NumMulTerms() int {
	return len(e.MulTerms)
}

// IsConstant reports whether the expression has no witness terms.
func (e *Expression) IsConstant() bool {
	return len(e.MulTerms) == 0 && len(e.LinearTerms) == 0
}
