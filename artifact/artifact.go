// Package artifact reads and writes compiled-program artifacts: a versioned
// JSON envelope carrying the circuit bytecode as base64-encoded, compressed
// CBOR. Loading is a thin I/O wrapper around the acir package; the two error
// conditions it distinguishes are an unreadable path and undeserializable
// content.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Sun-Jc/arkworks-backend/acir"
	"github.com/consensys/gnark/logger"
)

var (
	// ErrPathNotValid means the artifact file does not exist or cannot be
	// read.
	ErrPathNotValid = errors.New("not a valid path; run `nargo compile` to generate missing build artifacts or `nargo prove` to construct a proof")

	// ErrProgramDeserialization means the artifact content could not be
	// decoded into a circuit.
	ErrProgramDeserialization = errors.New("could not deserialize build program")
)

// Program is the on-disk artifact envelope.
type Program struct {
	Version      string `json:"version"`
	Bytecode     string `json:"bytecode"`
	DebugSymbols string `json:"debug_symbols,omitempty"`
}

// ReadProgramFromFile loads the artifact at path (a ".json" extension is
// appended if missing) and decodes its bytecode into a circuit.
func ReadProgramFromFile(path string) (*acir.Circuit, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrPathNotValid)
	}
	var prog Program
	if err := json.Unmarshal(raw, &prog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProgramDeserialization, err)
	}
	circuit, err := decodeBytecode(prog.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProgramDeserialization, err)
	}

	log := logger.Logger()
	log.Debug().
		Str("path", path).
		Str("version", prog.Version).
		Int("nbOpcodes", len(circuit.Opcodes)).
		Msg("loaded compiled program")

	return circuit, nil
}

// WriteProgramToFile serializes the circuit into an artifact at path (a
// ".json" extension is appended if missing).
func WriteProgramToFile(c *acir.Circuit, version, path string) error {
	bytecode, err := encodeBytecode(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(Program{
		Version:  version,
		Bytecode: bytecode,
	})
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	return os.WriteFile(path, raw, 0o644)
}
