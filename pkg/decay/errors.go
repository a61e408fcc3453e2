package decay

import (
	"errors"
	"fmt"
)

// Fatal parse errors. All of them abort the build: when Parse returns one of
// these (usually wrapped in a *ParseError carrying the source position), no
// registry is returned.
var (
	// ErrUnterminatedChannel is a lexical error: a channel statement is not
	// closed by ';' before Enddecay or end of input.
	ErrUnterminatedChannel = errors.New("unterminated channel statement")

	// ErrDuplicateAlias marks an Alias redefining a name to a different target.
	ErrDuplicateAlias = errors.New("duplicate alias")

	// ErrConflictingConjugate marks a ChargeConj pairing a name that is
	// already paired with a different partner.
	ErrConflictingConjugate = errors.New("conflicting charge-conjugate pair")

	// ErrNestedDecay marks a Decay opened while another block is still open.
	ErrNestedDecay = errors.New("nested Decay block")

	// ErrUnterminatedDecay marks a Decay block with no Enddecay before end of input.
	ErrUnterminatedDecay = errors.New("unterminated Decay block")

	// ErrDuplicateDecay marks a second Decay block for the same particle name.
	ErrDuplicateDecay = errors.New("duplicate Decay block")

	// ErrInvalidFraction marks a channel whose first token is not a
	// non-negative real number.
	ErrInvalidFraction = errors.New("invalid branching fraction")

	// ErrInvalidModelParam marks a non-numeric token after the model name.
	ErrInvalidModelParam = errors.New("invalid model parameter")

	// ErrInvalidChannel marks a channel whose model name cannot be located.
	ErrInvalidChannel = errors.New("invalid decay channel")

	// ErrMalformedStatement marks a declaration with the wrong token count
	// or a channel statement outside a Decay block.
	ErrMalformedStatement = errors.New("malformed statement")

	// ErrNoConjugate marks a name for which no charge conjugate can be
	// resolved from explicit pairs, the self-conjugate set, or the particle
	// lookup collaborator.
	ErrNoConjugate = errors.New("no charge conjugate known")

	// ErrMissingSourceDecay marks a CDecay whose conjugate partner has no
	// Decay block to mirror.
	ErrMissingSourceDecay = errors.New("missing source Decay block for CDecay")
)

// Query-time errors. They are per-call and never invalidate the registry.
var (
	// ErrDecayNotFound marks a query for a particle with no registered block.
	ErrDecayNotFound = errors.New("decay not found")

	// ErrDepthExceeded marks a traversal deeper than the configured bound.
	ErrDepthExceeded = errors.New("maximum decay depth exceeded")
)

// ParseError decorates a fatal parse error with its source position.
type ParseError struct {
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
