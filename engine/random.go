package engine

import "chaos-chess/rules"

// DefaultCaptureBias is how often the random strategy looks at captures only.
const DefaultCaptureBias = 0.10

// RandomMove samples a legal move uniformly. With probability captureBias
// it first narrows the pool to captures, when there are any.
func RandomMove(s *rules.GameState, rng Rand, captureBias float64) (rules.Move, bool) {
	moves := s.AllLegalMoves()
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	pool := moves
	if rng.Float64() < captureBias {
		if caps := captures(moves); len(caps) > 0 {
			pool = caps
		}
	}
	return pool[rng.Intn(len(pool))], true
}
