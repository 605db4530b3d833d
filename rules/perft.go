package rules

// Perft counts the leaf positions reachable in exactly depth plies.
func Perft(s GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := s.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(s.Play(m.From, m.LegalMove), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's coordinate notation.
func PerftDivide(s GameState, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range s.AllLegalMoves() {
		out[m.UCI()] = Perft(s.Play(m.From, m.LegalMove), depth-1)
	}
	return out
}
