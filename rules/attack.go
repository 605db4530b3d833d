package rules

type offset struct{ dr, dc int }

var knightOffsets = [8]offset{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var rookDirections = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirections = [4]offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// IsSquareAttacked reports whether any piece of color by attacks sq.
// Pawns attack diagonally only; sliders stop at the first occupied square,
// which is itself attacked.
func (s *GameState) IsSquareAttacked(sq Square, by Color) bool {
	return s.Board.isAttacked(sq, by)
}

// IsInCheck reports whether the king of color c is attacked. A side without
// a king is never in check.
func (s *GameState) IsInCheck(c Color) bool {
	ksq, ok := s.Board.KingSquare(c)
	if !ok {
		return false
	}
	return s.Board.isAttacked(ksq, c.Opposite())
}

// isAttacked looks outward from sq for an attacker of color by, which is
// equivalent to testing every attack set of that color.
func (b *Board) isAttacked(sq Square, by Color) bool {
	// A pawn of color by sits one row behind sq relative to its push direction.
	behind := -pawnDir(by)
	for _, dc := range [2]int{-1, 1} {
		if p := b.At(sq.Offset(behind, dc)); p.Kind == Pawn && p.Color == by {
			return true
		}
	}
	for _, o := range knightOffsets {
		if p := b.At(sq.Offset(o.dr, o.dc)); p.Kind == Knight && p.Color == by {
			return true
		}
	}
	for _, o := range kingOffsets {
		if p := b.At(sq.Offset(o.dr, o.dc)); p.Kind == King && p.Color == by {
			return true
		}
	}
	if b.rayHits(sq, rookDirections[:], by, Rook) {
		return true
	}
	return b.rayHits(sq, bishopDirections[:], by, Bishop)
}

// rayHits walks each direction from sq to the first occupied square and
// reports whether it holds a slider of color by moving like kind or a queen.
func (b *Board) rayHits(sq Square, dirs []offset, by Color, kind PieceKind) bool {
	for _, d := range dirs {
		cur := sq.Offset(d.dr, d.dc)
		for cur.OnBoard() {
			p := b.At(cur)
			if !p.IsNone() {
				if p.Color == by && (p.Kind == kind || p.Kind == Queen) {
					return true
				}
				break
			}
			cur = cur.Offset(d.dr, d.dc)
		}
	}
	return false
}
