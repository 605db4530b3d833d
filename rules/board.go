package rules

// Board is the 8x8 piece grid indexed [row][col]. It is a value type:
// assigning a Board copies it.
type Board [8][8]Piece

// At returns the piece on sq. Off-board squares read as NoPiece.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b[sq.Row][sq.Col]
}

// Set places p on sq.
func (b *Board) Set(sq Square, p Piece) { b[sq.Row][sq.Col] = p }

// Clear empties sq.
func (b *Board) Clear(sq Square) { b[sq.Row][sq.Col] = NoPiece }

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool { return b.At(sq).IsNone() }

// KingSquare locates the king of color c.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p.Kind == King && p.Color == c {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many pieces matching p are on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b[row][col] == p {
				n++
			}
		}
	}
	return n
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial arrangement.
func StartingBoard() Board {
	var b Board
	for col := 0; col < 8; col++ {
		b[0][col] = Piece{Color: Black, Kind: backRank[col]}
		b[1][col] = Piece{Color: Black, Kind: Pawn}
		b[6][col] = Piece{Color: White, Kind: Pawn}
		b[7][col] = Piece{Color: White, Kind: backRank[col]}
	}
	return b
}

// homeRow is the back rank of color c.
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pawnStartRow is the rank a pawn of color c may double-step from.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRow is the far rank for pawns of color c.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// pawnDir is the row delta of a single pawn step for color c.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}
