package acir

// Circuit is a compiled circuit: an ordered opcode list plus the declared
// partition of its witnesses.
type Circuit struct {
	// CurrentWitnessIndex is the highest witness index the compiler
	// allocated; witness indices are dense in [0, CurrentWitnessIndex].
	CurrentWitnessIndex uint32

	Opcodes []Opcode

	// PublicParameters and ReturnValues together form the public inputs.
	PublicParameters  *WitnessSet
	PrivateParameters *WitnessSet
	ReturnValues      *WitnessSet
}

// NumVars returns the total number of circuit variables.
func (c *Circuit) NumVars() int {
	return int(c.CurrentWitnessIndex) + 1
}

// PublicInputs returns the union of the public parameters and the return
// values, i.e. every witness visible to the verifier.
func (c *Circuit) PublicInputs() *WitnessSet {
	pub := c.PublicParameters
	if pub == nil {
		pub = NewWitnessSet()
	}
	ret := c.ReturnValues
	if ret == nil {
		ret = NewWitnessSet()
	}
	return pub.Union(ret)
}
