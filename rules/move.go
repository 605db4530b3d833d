package rules

import (
	"fmt"
	"strings"
)

// CastleSide tells which rook a castling move uses.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	CastleKingside
	CastleQueenside
)

func (c CastleSide) String() string {
	switch c {
	case CastleKingside:
		return "king"
	case CastleQueenside:
		return "queen"
	default:
		return "none"
	}
}

// LegalMove is a destination produced by move generation for a known origin.
type LegalMove struct {
	To         Square
	Capture    bool
	Promotion  PieceKind // NoKind unless the pawn reaches the far rank
	Castle     CastleSide
	DoublePawn bool // sets the en passant target
	EnPassant  bool
}

// Move pairs an origin square with one of its legal moves.
type Move struct {
	From Square
	LegalMove
}

// UCI renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	return uciString(m.From, m.To, m.Promotion)
}

func (m Move) String() string { return m.UCI() }

// MoveRecord describes everything that happened when a move was applied.
// Records are appended to GameState.History and never modified.
type MoveRecord struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece // NoPiece when nothing was taken; the pawn for en passant
	Promotion PieceKind
	Castle    CastleSide
	EnPassant bool

	// Computed against the position after the move.
	Check     bool
	Checkmate bool
	Stalemate bool
}

// IsCapture reports whether the move removed an enemy piece.
func (r MoveRecord) IsCapture() bool { return !r.Captured.IsNone() }

// UCI renders the record in coordinate notation.
func (r MoveRecord) UCI() string {
	return uciString(r.From, r.To, r.Promotion)
}

func uciString(from, to Square, promo PieceKind) string {
	s := from.String() + to.String()
	if promo != NoKind {
		s += strings.ToLower(string(promo.Letter()))
	}
	return s
}

// ParseUCI splits a coordinate move ("e2e4", "e7e8q") into its parts.
// The promotion kind is NoKind when no suffix is given.
func ParseUCI(s string) (from, to Square, promo PieceKind, err error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidUCI, s)
	}
	if from, err = ParseSquare(s[0:2]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidUCI, s)
	}
	if to, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidUCI, s)
	}
	if len(s) == 5 {
		promo = kindFromLetter(s[4])
		if !promo.IsPromotion() {
			return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: bad promotion in %q", ErrInvalidUCI, s)
		}
	}
	return from, to, promo, nil
}
