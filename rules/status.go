package rules

// IsCheckmate reports whether the side to move is checkmated.
func (s *GameState) IsCheckmate() bool {
	return s.IsInCheck(s.Turn) && !s.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (s *GameState) IsStalemate() bool {
	return !s.IsInCheck(s.Turn) && !s.HasLegalMoves()
}

// Settle evaluates the position as if it had just been reached and fills
// GameOver, Result and Reason accordingly. ParseFEN calls it so positions
// loaded mid-game report mate and stalemate the same way ApplyMove does.
func (s *GameState) Settle() {
	s.GameOver, s.Result, s.Reason = false, ResultNone, ReasonNone
	if s.HasLegalMoves() {
		return
	}
	s.GameOver = true
	if s.IsInCheck(s.Turn) {
		s.Result = Winner(s.Turn.Opposite())
		s.Reason = ReasonCheckmate
		return
	}
	s.Result = ResultDraw
	s.Reason = ReasonStalemate
}
