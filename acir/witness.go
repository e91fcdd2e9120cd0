// Package acir holds the in-memory form of a compiled arithmetic circuit:
// witnesses, expressions, opcodes and the circuit itself. Elements use the
// compiler's native BN254 encoding (gnark-crypto fr); the bridge package
// converts them to the proving-side encoding.
package acir

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Witness identifies one circuit variable. Indices are dense in [0, NumVars).
type Witness uint32

// WitnessMap is a sparse assignment of solved values to witnesses, as
// produced by the external witness solver. It may be partial or empty.
type WitnessMap map[Witness]fr.Element

func (m WitnessMap) Get(w Witness) (fr.Element, bool) {
	v, ok := m[w]
	return v, ok
}

func (m WitnessMap) Assign(w Witness, v fr.Element) {
	m[w] = v
}

// WitnessSet is a set of witness indices.
type WitnessSet struct {
	b bitset.BitSet
}

func NewWitnessSet(ws ...Witness) *WitnessSet {
	s := &WitnessSet{}
	for _, w := range ws {
		s.Add(w)
	}
	return s
}

func (s *WitnessSet) Add(w Witness) {
	s.b.Set(uint(w))
}

func (s *WitnessSet) Contains(w Witness) bool {
	return s.b.Test(uint(w))
}

func (s *WitnessSet) Len() int {
	return int(s.b.Count())
}

// Union returns a new set containing the witnesses of both sets.
func (s *WitnessSet) Union(o *WitnessSet) *WitnessSet {
	return &WitnessSet{b: *s.b.Union(&o.b)}
}

// Witnesses returns the members in ascending order.
func (s *WitnessSet) Witnesses() []Witness {
	res := make([]Witness, 0, s.Len())
	for i, ok := s.b.NextSet(0); ok; i, ok = s.b.NextSet(i + 1) {
		res = append(res, Witness(i))
	}
	return res
}
