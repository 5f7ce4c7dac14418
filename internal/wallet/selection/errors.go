package selection

import "errors"

var (
	// ErrInvalidRequest marks malformed caller input: bad addresses,
	// zero amounts, unknown pools or actions. Recoverable by the caller
	// correcting the request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInputsExhausted means the available input set cannot cover the
	// target plus fee. Surfaced to the end user as insufficient balance.
	// A selection never partially succeeds.
	ErrInputsExhausted = errors.New("inputs exhausted")

	// ErrSelectionInvariant is an internal consistency failure. It is a
	// defect in the engine, never a user balance problem, and must be
	// logged rather than shown as one.
	ErrSelectionInvariant = errors.New("selection invariant violation")
)
