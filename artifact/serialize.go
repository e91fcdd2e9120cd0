package artifact

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/Sun-Jc/arkworks-backend/acir"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"
)

// Wire form of the circuit bytecode. Field elements travel as their 32-byte
// big-endian canonical encoding; witness sets as ascending index lists.

type wireMulTerm struct {
	Coeff []byte `cbor:"0,keyasint"`
	Left  uint32 `cbor:"1,keyasint"`
	Right uint32 `cbor:"2,keyasint"`
}

type wireLinearTerm struct {
	Coeff []byte `cbor:"0,keyasint"`
	W     uint32 `cbor:"1,keyasint"`
}

type wireExpression struct {
	MulTerms    []wireMulTerm    `cbor:"0,keyasint,omitempty"`
	LinearTerms []wireLinearTerm `cbor:"1,keyasint,omitempty"`
	Constant    []byte           `cbor:"2,keyasint"`
}

type wireDirective struct {
	A     wireExpression `cbor:"0,keyasint"`
	B     []uint32       `cbor:"1,keyasint,omitempty"`
	Radix uint32         `cbor:"2,keyasint"`
}

type wireOpcode struct {
	Type       uint8           `cbor:"0,keyasint"`
	AssertZero *wireExpression `cbor:"1,keyasint,omitempty"`
	Directive  *wireDirective  `cbor:"2,keyasint,omitempty"`
}

type wireCircuit struct {
	CurrentWitnessIndex uint32       `cbor:"0,keyasint"`
	Opcodes             []wireOpcode `cbor:"1,keyasint,omitempty"`
	PublicParameters    []uint32     `cbor:"2,keyasint,omitempty"`
	PrivateParameters   []uint32     `cbor:"3,keyasint,omitempty"`
	ReturnValues        []uint32     `cbor:"4,keyasint,omitempty"`
}

func elementToWire(e fr.Element) []byte {
	b := e.Bytes()
	return b[:]
}

func elementFromWire(b []byte) (fr.Element, error) {
	var e fr.Element
	if len(b) != fr.Bytes {
		return e, fmt.Errorf("field element: expected %d bytes, got %d", fr.Bytes, len(b))
	}
	e.SetBytes(b)
	return e, nil
}

func expressionToWire(e *acir.Expression) wireExpression {
	w := wireExpression{
		MulTerms:    make([]wireMulTerm, len(e.MulTerms)),
		LinearTerms: make([]wireLinearTerm, len(e.LinearTerms)),
		Constant:    elementToWire(e.Constant),
	}
	for i, t := range e.MulTerms {
		w.MulTerms[i] = wireMulTerm{Coeff: elementToWire(t.Coeff), Left: uint32(t.Left), Right: uint32(t.Right)}
	}
	for i, t := range e.LinearTerms {
		w.LinearTerms[i] = wireLinearTerm{Coeff: elementToWire(t.Coeff), W: uint32(t.W)}
	}
	return w
}

func expressionFromWire(w *wireExpression) (acir.Expression, error) {
	var e acir.Expression
	if len(w.MulTerms) > 0 {
		e.MulTerms = make([]acir.MulTerm, len(w.MulTerms))
	}
	if len(w.LinearTerms) > 0 {
		e.LinearTerms = make([]acir.LinearTerm, len(w.LinearTerms))
	}
	var err error
	if e.Constant, err = elementFromWire(w.Constant); err != nil {
		return e, err
	}
	for i, t := range w.MulTerms {
		coeff, err := elementFromWire(t.Coeff)
		if err != nil {
			return e, err
		}
		e.MulTerms[i] = acir.MulTerm{Coeff: coeff, Left: acir.Witness(t.Left), Right: acir.Witness(t.Right)}
	}
	for i, t := range w.LinearTerms {
		coeff, err := elementFromWire(t.Coeff)
		if err != nil {
			return e, err
		}
		e.LinearTerms[i] = acir.LinearTerm{Coeff: coeff, W: acir.Witness(t.W)}
	}
	return e, nil
}

func witnessSetToWire(s *acir.WitnessSet) []uint32 {
	if s == nil {
		return nil
	}
	ws := s.Witnesses()
	res := make([]uint32, len(ws))
	for i, w := range ws {
		res[i] = uint32(w)
	}
	return res
}

func witnessSetFromWire(ws []uint32) *acir.WitnessSet {
	s := acir.NewWitnessSet()
	for _, w := range ws {
		s.Add(acir.Witness(w))
	}
	return s
}

func encodeBytecode(c *acir.Circuit) (string, error) {
	wire := wireCircuit{
		CurrentWitnessIndex: c.CurrentWitnessIndex,
		Opcodes:             make([]wireOpcode, len(c.Opcodes)),
		PublicParameters:    witnessSetToWire(c.PublicParameters),
		PrivateParameters:   witnessSetToWire(c.PrivateParameters),
		ReturnValues:        witnessSetToWire(c.ReturnValues),
	}
	for i, op := range c.Opcodes {
		w := wireOpcode{Type: uint8(op.Type)}
		switch op.Type {
		case acir.OpcodeAssertZero:
			expr := expressionToWire(&op.AssertZero)
			w.AssertZero = &expr
		case acir.OpcodeDirective:
			a := expressionToWire(&op.Directive.A)
			d := wireDirective{A: a, Radix: op.Directive.Radix}
			for _, b := range op.Directive.B {
				d.B = append(d.B, uint32(b))
			}
			w.Directive = &d
		}
		wire.Opcodes[i] = w
	}

	raw, err := cbor.Marshal(wire)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return "", err
	}
	if _, err := zw.Write(raw); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decodeBytecode(bytecode string) (*acir.Circuit, error) {
	compressed, err := base64.StdEncoding.DecodeString(bytecode)
	if err != nil {
		return nil, err
	}
	zr := flate.NewReader(bytes.NewReader(compressed))
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}

	var wire wireCircuit
	if err := cbor.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}

	c := &acir.Circuit{
		CurrentWitnessIndex: wire.CurrentWitnessIndex,
		Opcodes:             make([]acir.Opcode, len(wire.Opcodes)),
		PublicParameters:    witnessSetFromWire(wire.PublicParameters),
		PrivateParameters:   witnessSetFromWire(wire.PrivateParameters),
		ReturnValues:        witnessSetFromWire(wire.ReturnValues),
	}
	for i, w := range wire.Opcodes {
		op := acir.Opcode{Type: acir.OpcodeType(w.Type)}
		switch op.Type {
		case acir.OpcodeAssertZero:
			if w.AssertZero == nil {
				return nil, fmt.Errorf("opcode %d: missing assert-zero payload", i)
			}
			if op.AssertZero, err = expressionFromWire(w.AssertZero); err != nil {
				return nil, fmt.Errorf("opcode %d: %w", i, err)
			}
		case acir.OpcodeDirective:
			if w.Directive == nil {
				return nil, fmt.Errorf("opcode %d: missing directive payload", i)
			}
			if op.Directive.A, err = expressionFromWire(&w.Directive.A); err != nil {
				return nil, fmt.Errorf("opcode %d: %w", i, err)
			}
			op.Directive.Radix = w.Directive.Radix
			for _, b := range w.Directive.B {
				op.Directive.B = append(op.Directive.B, acir.Witness(b))
			}
		}
		c.Opcodes[i] = op
	}
	return c, nil
}
