package rules

import "errors"

var (
	// ErrRejected is returned by ApplyMove for any request that does not
	// match a currently legal move.
	ErrRejected   = errors.New("move rejected")
	ErrInvalidFEN = errors.New("invalid FEN")
	ErrInvalidUCI = errors.New("invalid coordinate move")
)
