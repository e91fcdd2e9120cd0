// Package field abstracts the proving-side field arithmetic over gnark's
// constraint.Element representation, and converts between the circuit
// compiler's element encoding (BN254 fr) and the proving-side encoding.
package field

import (
	"fmt"
	"math/big"

	"github.com/Sun-Jc/arkworks-backend/field/babybear"
	"github.com/Sun-Jc/arkworks-backend/field/bn254"
	"github.com/consensys/gnark/constraint"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
	SerializedLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(babybear.ScalarField) == 0 {
		return &babybear.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
