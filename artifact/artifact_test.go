package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sun-Jc/arkworks-backend/acir"
	"github.com/Sun-Jc/arkworks-backend/artifact"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func testCircuit() *acir.Circuit {
	var three fr.Element
	three.SetUint64(3)
	negOne := fr.One()
	negOne.Neg(&negOne)

	return &acir.Circuit{
		CurrentWitnessIndex: 4,
		Opcodes: []acir.Opcode{
			acir.NewAssertZero(acir.Expression{
				MulTerms:    []acir.MulTerm{{Coeff: three, Left: 0, Right: 1}},
				LinearTerms: []acir.LinearTerm{{Coeff: negOne, W: 2}},
				Constant:    fr.One(),
			}),
			acir.NewDirective(acir.Directive{
				A:     acir.Expression{LinearTerms: []acir.LinearTerm{{Coeff: fr.One(), W: 2}}},
				B:     []acir.Witness{3, 4},
				Radix: 256,
			}),
		},
		PublicParameters:  acir.NewWitnessSet(0),
		PrivateParameters: acir.NewWitnessSet(1, 2),
		ReturnValues:      acir.NewWitnessSet(4),
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_circuit")

	want := testCircuit()
	require.NoError(t, artifact.WriteProgramToFile(want, "0.34.0", path))

	got, err := artifact.ReadProgramFromFile(path)
	require.NoError(t, err)

	require.Equal(t, want.CurrentWitnessIndex, got.CurrentWitnessIndex)
	require.Equal(t, len(want.Opcodes), len(got.Opcodes))
	for i := range want.Opcodes {
		require.Equal(t, want.Opcodes[i].Type, got.Opcodes[i].Type)
	}
	require.Equal(t, want.Opcodes[0].AssertZero, got.Opcodes[0].AssertZero)
	require.Equal(t, want.Opcodes[1].Directive.Radix, got.Opcodes[1].Directive.Radix)
	require.Equal(t, want.Opcodes[1].Directive.B, got.Opcodes[1].Directive.B)
	require.Equal(t, want.Opcodes[1].Directive.A, got.Opcodes[1].Directive.A)
	require.Equal(t, want.PublicParameters.Witnesses(), got.PublicParameters.Witnesses())
	require.Equal(t, want.PrivateParameters.Witnesses(), got.PrivateParameters.Witnesses())
	require.Equal(t, want.ReturnValues.Witnesses(), got.ReturnValues.Witnesses())
	require.Equal(t, want.PublicInputs().Witnesses(), got.PublicInputs().Witnesses())
}

func TestReadMissingFile(t *testing.T) {
	_, err := artifact.ReadProgramFromFile(filepath.Join(t.TempDir(), "no_such_circuit"))
	require.ErrorIs(t, err, artifact.ErrPathNotValid)
}

func TestReadMalformedEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := artifact.ReadProgramFromFile(path)
	require.ErrorIs(t, err, artifact.ErrProgramDeserialization)
}

func TestReadMalformedBytecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badcode.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"0.34.0","bytecode":"!!!not base64!!!"}`), 0o644))

	_, err := artifact.ReadProgramFromFile(path)
	require.ErrorIs(t, err, artifact.ErrProgramDeserialization)
}
