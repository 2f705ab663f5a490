package rules

import "errors"

var (
	// ErrUnknownMove is returned when a beats/losesTo entry names a move
	// that is not part of the compiled move set.
	ErrUnknownMove = errors.New("relation references unknown move")
	// ErrEmptyMoveSet is returned when a compilation leaves no moves at all.
	ErrEmptyMoveSet = errors.New("compiled variant has no moves")
	// ErrMissingVerb is returned by Verb when a beats edge exists but no
	// verb was ever declared for the pair. It is deliberately not checked
	// at compile time; see the Verb Table notes on Compile.
	ErrMissingVerb = errors.New("no verb declared for pair")
)
