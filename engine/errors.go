package engine

import "errors"

var (
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrCheatUnavailable = errors.New("cheating is only available in chaos mode")
)
