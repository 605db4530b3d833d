package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a GameState from a FEN string. The clock fields are
// optional. History starts empty.
func ParseFEN(fen string) (GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return GameState{}, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}

	s := GameState{EnPassant: NoSquare, FullMoveNumber: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return GameState{}, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for row, rankStr := range ranks {
		col := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			kind := kindFromLetter(ch)
			if kind == NoKind {
				return GameState{}, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if col >= 8 {
				return GameState{}, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, 8-row)
			}
			color := White
			if ch >= 'a' {
				color = Black
			}
			s.Board[row][col] = Piece{Color: color, Kind: kind}
			col++
		}
		if col != 8 {
			return GameState{}, fmt.Errorf("%w: rank %d does not cover 8 files", ErrInvalidFEN, 8-row)
		}
	}
	for _, c := range [2]Color{White, Black} {
		if n := s.Board.Count(Piece{Color: c, Kind: King}); n != 1 {
			return GameState{}, fmt.Errorf("%w: %v has %d kings", ErrInvalidFEN, c, n)
		}
	}

	switch fields[1] {
	case "w":
		s.Turn = White
	case "b":
		s.Turn = Black
	default:
		return GameState{}, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				s.Castling[White].Kingside = true
			case 'Q':
				s.Castling[White].Queenside = true
			case 'k':
				s.Castling[Black].Kingside = true
			case 'q':
				s.Castling[Black].Queenside = true
			default:
				return GameState{}, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return GameState{}, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, fields[3])
		}
		if !validEnPassant(&s.Board, sq, s.Turn) {
			return GameState{}, fmt.Errorf("%w: en passant square %v does not fit the position", ErrInvalidFEN, sq)
		}
		s.EnPassant = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return GameState{}, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		s.HalfMoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return GameState{}, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFEN, fields[5])
		}
		s.FullMoveNumber = n
	}

	s.Settle()
	return s, nil
}

// validEnPassant reports whether ep can be the square an enemy pawn just
// skipped: rank 6 with White to move or rank 3 with Black to move, empty,
// with that pawn on the square beyond it.
func validEnPassant(b *Board, ep Square, turn Color) bool {
	them := turn.Opposite()
	if ep.Row != pawnStartRow(them)+pawnDir(them) || !b.IsEmpty(ep) {
		return false
	}
	return b.At(ep.Offset(pawnDir(them), 0)) == Piece{Color: them, Kind: Pawn}
}

// MustParseFEN is ParseFEN for fixtures; it panics on invalid input.
func MustParseFEN(fen string) GameState {
	s, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// FEN serializes the position. History and the game-over fields are not
// represented.
func (s *GameState) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if s.Turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if s.Castling[White].Kingside {
		rights += "K"
	}
	if s.Castling[White].Queenside {
		rights += "Q"
	}
	if s.Castling[Black].Kingside {
		rights += "k"
	}
	if s.Castling[Black].Queenside {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')
	sb.WriteString(s.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", s.HalfMoveClock, s.FullMoveNumber)
	return sb.String()
}
