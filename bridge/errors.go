package bridge

import (
	"errors"

	"github.com/Sun-Jc/arkworks-backend/acir"
)

var (
	// ErrUnsupportedOpcode aborts gate extraction when the circuit contains
	// an opcode kind this backend cannot translate.
	ErrUnsupportedOpcode = acir.ErrUnsupportedOpcode

	// ErrAliasInconsistency means an alias entry does not resolve to a
	// genuine allocated variable. This is a caller-contract violation, not a
	// data error; it aborts synthesis.
	ErrAliasInconsistency = errors.New("alias does not resolve to an allocated variable")

	// ErrCircuitConsumed is returned when a circuit is synthesized twice.
	// A Circuit binds one (circuit, witness) pair and is consumed by its
	// first Synthesize call.
	ErrCircuitConsumed = errors.New("circuit already consumed by a previous synthesis")
)
