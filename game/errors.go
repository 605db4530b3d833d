package game

import "errors"

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrNoMove      = errors.New("bot has no legal move")
)
