// Package bridge translates a compiled arithmetic circuit into a rank-1
// constraint system. Each assert-zero gate is flattened into one constraint
// ONE * acc = 0, with a fresh auxiliary variable per multiplication term;
// witnesses shared with an enclosing proof can be aliased to variables the
// caller has already allocated.
package bridge

import (
	"fmt"

	"github.com/Sun-Jc/arkworks-backend/acir"
	"github.com/Sun-Jc/arkworks-backend/field"
	"github.com/Sun-Jc/arkworks-backend/r1cs"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

// ConstraintSystem is what the synthesizer needs from a proving backend.
// r1cs.ConstraintSystem is the reference implementation.
type ConstraintSystem interface {
	// NewVariable allocates a variable assigned the given value. vis tags
	// the allocation as public or private; backends may ignore the tag.
	NewVariable(vis r1cs.Visibility, v constraint.Element) (r1cs.Variable, error)

	// EnforceConstraint appends the constraint a * b = c.
	EnforceConstraint(a, b, c r1cs.LinearCombination) error
}

// Circuit is a synthesis-ready circuit: normalized gates, the public-input
// set, a total dense value table, and optional aliases into an enclosing
// constraint system. It is built once per (circuit, witness) pair and
// consumed by its first Synthesize call.
type Circuit struct {
	field  field.Field
	gates  []Gate
	public *acir.WitnessSet
	values []constraint.Element

	// aliases maps local witnesses to variables the caller already
	// allocated, so an embedded circuit does not re-allocate shared ones
	aliases map[acir.Witness]r1cs.Variable

	log      zerolog.Logger
	consumed bool
}

// Option configures FromCircuit.
type Option func(*Circuit) error

// WithAlias binds a local witness to an externally allocated variable.
func WithAlias(w acir.Witness, v r1cs.Variable) Option {
	return func(c *Circuit) error {
		c.aliases[w] = v
		return nil
	}
}

// WithAliases binds several witnesses at once.
func WithAliases(m map[acir.Witness]r1cs.Variable) Option {
	return func(c *Circuit) error {
		for w, v := range m {
			c.aliases[w] = v
		}
		return nil
	}
}

// WithLogger overrides the logger used during synthesis.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Circuit) error {
		c.log = l
		return nil
	}
}

// FromCircuit extracts the arithmetic gates of circ, binds the solved
// witness values (assignment may be partial or nil) and returns the
// synthesis input. It fails if circ contains a non-arithmetic opcode.
func FromCircuit(f field.Field, circ *acir.Circuit, assignment acir.WitnessMap, opts ...Option) (*Circuit, error) {
	gates, err := ExtractGates(f, circ)
	if err != nil {
		return nil, err
	}
	c := &Circuit{
		field:   f,
		gates:   gates,
		public:  circ.PublicInputs(),
		values:  BindValues(f, circ.NumVars(), assignment),
		aliases: make(map[acir.Witness]r1cs.Variable),
		log:     logger.Logger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NbGates returns the number of arithmetic gates.
func (c *Circuit) NbGates() int {
	return len(c.gates)
}

// Synthesize emits one constraint per gate into cs, allocating one variable
// per non-aliased witness and one auxiliary variable per multiplication
// term. It consumes the circuit; a second call returns ErrCircuitConsumed.
// On failure cs may be partially populated and should be discarded.
func (c *Circuit) Synthesize(cs ConstraintSystem) error {
	if c.consumed {
		return ErrCircuitConsumed
	}
	c.consumed = true

	// allocation pass: one handle per witness, in ascending index order so
	// fresh variables are numbered deterministically
	vars := make([]r1cs.Variable, len(c.values))
	for i := range c.values {
		w := acir.Witness(i)
		if alias, ok := c.aliases[w]; ok {
			if !alias.IsAllocated() {
				return fmt.Errorf("witness %d: %w", i, ErrAliasInconsistency)
			}
			vars[i] = alias
			continue
		}
		vis := r1cs.Private
		if c.public.Contains(w) {
			vis = r1cs.Public
		}
		v, err := cs.NewVariable(vis, c.values[i])
		if err != nil {
			return fmt.Errorf("allocate witness %d: %w", i, err)
		}
		vars[i] = v
	}

	// gate emission pass
	nbAux := 0
	for gateIdx, gate := range c.gates {
		acc := make(r1cs.LinearCombination, 0, len(gate.MulTerms)+len(gate.AddTerms)+1)

		for _, mt := range gate.MulTerms {
			// degree reduction: the quadratic term becomes a fresh
			// variable seeded with the numeric product of the bound values
			prod := c.field.Mul(c.values[mt.Left], c.values[mt.Right])
			aux, err := cs.NewVariable(r1cs.Private, prod)
			if err != nil {
				return fmt.Errorf("gate %d: allocate product variable: %w", gateIdx, err)
			}
			nbAux++
			acc = append(acc, r1cs.Term{Coeff: mt.Coeff, V: aux})
		}

		for _, at := range gate.AddTerms {
			acc = append(acc, r1cs.Term{Coeff: at.Coeff, V: vars[at.W]})
		}

		acc = append(acc, r1cs.Term{Coeff: gate.Constant, V: r1cs.One()})

		one := r1cs.LinearCombination{{Coeff: c.field.One(), V: r1cs.One()}}
		if err := cs.EnforceConstraint(one, acc, nil); err != nil {
			return fmt.Errorf("gate %d: %w", gateIdx, err)
		}
	}

	c.log.Debug().
		Int("nbGates", len(c.gates)).
		Int("nbWitnesses", len(c.values)).
		Int("nbAliased", len(c.aliases)).
		Int("nbAuxiliary", nbAux).
		Msg("synthesized acir circuit")

	return nil
}
