package rules

// LegalMoves returns every legal move for the piece on from. The result is
// empty when from is off-board, empty, or holds a piece of the side not to
// move. The state is not modified.
func (s *GameState) LegalMoves(from Square) []LegalMove {
	p := s.Board.At(from)
	if p.IsNone() || p.Color != s.Turn {
		return nil
	}
	pseudo := s.pseudoMoves(from, p, make([]LegalMove, 0, 32))
	legal := pseudo[:0]
	for _, mv := range pseudo {
		next := s.advance(from, mv)
		if !next.IsInCheck(p.Color) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// AllLegalMoves returns the legal moves of every piece of the side to move,
// scanning the board row by row from row 0.
func (s *GameState) AllLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p.IsNone() || p.Color != s.Turn {
				continue
			}
			from := Square{Row: row, Col: col}
			for _, mv := range s.LegalMoves(from) {
				moves = append(moves, Move{From: from, LegalMove: mv})
			}
		}
	}
	return moves
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (s *GameState) HasLegalMoves() bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p.IsNone() || p.Color != s.Turn {
				continue
			}
			if len(s.LegalMoves(Square{Row: row, Col: col})) > 0 {
				return true
			}
		}
	}
	return false
}

// pseudoMoves appends the moves of p on from that respect its movement
// pattern and board occupancy, ignoring own-king safety.
func (s *GameState) pseudoMoves(from Square, p Piece, dst []LegalMove) []LegalMove {
	switch p.Kind {
	case Pawn:
		return s.pawnMoves(from, p.Color, dst)
	case Knight:
		return s.stepMoves(from, p.Color, knightOffsets[:], dst)
	case Bishop:
		return s.slideMoves(from, p.Color, bishopDirections[:], dst)
	case Rook:
		return s.slideMoves(from, p.Color, rookDirections[:], dst)
	case Queen:
		dst = s.slideMoves(from, p.Color, rookDirections[:], dst)
		return s.slideMoves(from, p.Color, bishopDirections[:], dst)
	case King:
		dst = s.stepMoves(from, p.Color, kingOffsets[:], dst)
		return s.castleMoves(from, p.Color, dst)
	default:
		return dst
	}
}

func (s *GameState) pawnMoves(from Square, c Color, dst []LegalMove) []LegalMove {
	dir := pawnDir(c)
	lastRow := promotionRow(c)

	one := from.Offset(dir, 0)
	if one.OnBoard() && s.Board.IsEmpty(one) {
		dst = appendPawnMove(dst, LegalMove{To: one}, one.Row == lastRow)
		two := from.Offset(2*dir, 0)
		if from.Row == pawnStartRow(c) && s.Board.IsEmpty(two) {
			dst = append(dst, LegalMove{To: two, DoublePawn: true})
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := s.Board.At(to)
		switch {
		case !target.IsNone() && target.Color != c:
			dst = appendPawnMove(dst, LegalMove{To: to, Capture: true}, to.Row == lastRow)
		case target.IsNone() && to == s.EnPassant && s.Board.At(Sq(from.Row, to.Col)) == (Piece{Color: c.Opposite(), Kind: Pawn}):
			dst = append(dst, LegalMove{To: to, Capture: true, EnPassant: true})
		}
	}
	return dst
}

// appendPawnMove expands a move onto the far rank into one candidate per
// promotion kind.
func appendPawnMove(dst []LegalMove, mv LegalMove, promotes bool) []LegalMove {
	if !promotes {
		return append(dst, mv)
	}
	for _, k := range PromotionKinds {
		mv.Promotion = k
		dst = append(dst, mv)
	}
	return dst
}

func (s *GameState) stepMoves(from Square, c Color, offsets []offset, dst []LegalMove) []LegalMove {
	for _, o := range offsets {
		to := from.Offset(o.dr, o.dc)
		if !to.OnBoard() {
			continue
		}
		target := s.Board.At(to)
		if target.IsNone() {
			dst = append(dst, LegalMove{To: to})
		} else if target.Color != c {
			dst = append(dst, LegalMove{To: to, Capture: true})
		}
	}
	return dst
}

func (s *GameState) slideMoves(from Square, c Color, dirs []offset, dst []LegalMove) []LegalMove {
	for _, d := range dirs {
		to := from.Offset(d.dr, d.dc)
		for to.OnBoard() {
			target := s.Board.At(to)
			if !target.IsNone() {
				if target.Color != c {
					dst = append(dst, LegalMove{To: to, Capture: true})
				}
				break
			}
			dst = append(dst, LegalMove{To: to})
			to = to.Offset(d.dr, d.dc)
		}
	}
	return dst
}

// castleMoves adds castling candidates. The king's square, the square it
// crosses and its destination must all be unattacked; the generic legality
// filter still runs on the result.
func (s *GameState) castleMoves(from Square, c Color, dst []LegalMove) []LegalMove {
	row := homeRow(c)
	if from != Sq(row, 4) {
		return dst
	}
	rights := s.Castling[c]
	if !rights.Kingside && !rights.Queenside {
		return dst
	}
	enemy := c.Opposite()
	if s.Board.isAttacked(from, enemy) {
		return dst
	}
	rook := Piece{Color: c, Kind: Rook}

	if rights.Kingside && s.Board.At(Sq(row, 7)) == rook &&
		s.Board.IsEmpty(Sq(row, 5)) && s.Board.IsEmpty(Sq(row, 6)) &&
		!s.Board.isAttacked(Sq(row, 5), enemy) && !s.Board.isAttacked(Sq(row, 6), enemy) {
		dst = append(dst, LegalMove{To: Sq(row, 6), Castle: CastleKingside})
	}
	if rights.Queenside && s.Board.At(Sq(row, 0)) == rook &&
		s.Board.IsEmpty(Sq(row, 1)) && s.Board.IsEmpty(Sq(row, 2)) && s.Board.IsEmpty(Sq(row, 3)) &&
		!s.Board.isAttacked(Sq(row, 3), enemy) && !s.Board.isAttacked(Sq(row, 2), enemy) {
		dst = append(dst, LegalMove{To: Sq(row, 2), Castle: CastleQueenside})
	}
	return dst
}
