package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
)

// FromACIR converts a compiler-side element into the prover field f.
// The conversion goes through the element's canonical integer representative,
// read from its fixed-width (32-byte big-endian) serialization.
func FromACIR(f Field, e fr.Element) constraint.Element {
	b := e.Bytes()
	var x big.Int
	x.SetBytes(b[:])
	return f.FromInterface(&x)
}

// ToACIR is the inverse of FromACIR. For a same-characteristic field the
// round trip is the identity; for a smaller field the representative is
// reduced modulo the compiler field's order.
func ToACIR(f Field, c constraint.Element) fr.Element {
	var e fr.Element
	e.SetBigInt(f.ToBigInt(c))
	return e
}
