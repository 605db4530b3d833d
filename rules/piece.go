package rules

// Color identifies the side owning a piece or the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type. NoKind marks an empty square.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the officers a pawn may promote to, in generation order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Letter returns the upper-case SAN letter for the kind ('P' for pawns).
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// kindFromLetter converts a case-insensitive piece letter to its kind.
func kindFromLetter(ch byte) PieceKind {
	switch ch {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return NoKind
	}
}

// IsPromotion reports whether a pawn may promote to k.
func (k PieceKind) IsPromotion() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// Piece is a (color, kind) pair. The zero value is NoPiece; its Color
// defaults to White and carries no meaning.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool { return p.Kind == NoKind }

// FENChar returns the FEN character for the piece: upper case for White.
func (p Piece) FENChar() byte {
	ch := p.Kind.Letter()
	if p.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string {
	if p.IsNone() {
		return "none"
	}
	return p.Color.String() + " " + p.Kind.String()
}
