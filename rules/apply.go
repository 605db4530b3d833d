package rules

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Rand is the randomness source used to pick a promotion piece when the
// caller supplies none.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

type applyConfig struct {
	promotion PieceKind
	rng       Rand
}

// ApplyOption customizes a single ApplyMove call.
type ApplyOption func(*applyConfig)

// WithPromotion selects the piece a pawn reaching the far rank becomes.
// It is ignored for moves that do not promote.
func WithPromotion(k PieceKind) ApplyOption {
	return func(c *applyConfig) { c.promotion = k }
}

// WithRand sets the source used for the random promotion choice made when
// no WithPromotion option is given.
func WithRand(r Rand) ApplyOption {
	return func(c *applyConfig) { c.rng = r }
}

// ApplyMove validates from→to against LegalMoves and, when it matches,
// returns the successor state and the record of the move. The receiver is
// left untouched. Any coordinates are accepted: requests that do not
// correspond to a legal move fail with an error wrapping ErrRejected.
func (s *GameState) ApplyMove(from, to Square, opts ...ApplyOption) (GameState, MoveRecord, error) {
	cfg := applyConfig{rng: globalRand{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	if s.GameOver {
		return GameState{}, MoveRecord{}, fmt.Errorf("%w: game is over", ErrRejected)
	}
	if !from.OnBoard() || !to.OnBoard() {
		return GameState{}, MoveRecord{}, fmt.Errorf("%w: %v to %v is off the board", ErrRejected, from, to)
	}
	mover := s.Board.At(from)
	if mover.IsNone() {
		return GameState{}, MoveRecord{}, fmt.Errorf("%w: no piece on %v", ErrRejected, from)
	}
	if mover.Color != s.Turn {
		return GameState{}, MoveRecord{}, fmt.Errorf("%w: %v is not %v's piece", ErrRejected, from, s.Turn)
	}

	mv, ok := matchMove(s.LegalMoves(from), to, cfg)
	if !ok {
		return GameState{}, MoveRecord{}, fmt.Errorf("%w: %v to %v is not legal", ErrRejected, from, to)
	}

	rec := MoveRecord{
		From:      from,
		To:        to,
		Piece:     mover,
		Promotion: mv.Promotion,
		Castle:    mv.Castle,
		EnPassant: mv.EnPassant,
	}
	if mv.EnPassant {
		rec.Captured = s.Board.At(Sq(from.Row, to.Col))
	} else {
		rec.Captured = s.Board.At(to)
	}

	next := s.advance(from, mv)

	inCheck := next.IsInCheck(next.Turn)
	hasMoves := next.HasLegalMoves()
	switch {
	case inCheck && !hasMoves:
		rec.Check = true
		rec.Checkmate = true
		next.GameOver = true
		next.Result = Winner(mover.Color)
		next.Reason = ReasonCheckmate
	case !hasMoves:
		rec.Stalemate = true
		next.GameOver = true
		next.Result = ResultDraw
		next.Reason = ReasonStalemate
	case inCheck:
		rec.Check = true
	}

	history := make([]MoveRecord, len(s.History), len(s.History)+1)
	copy(history, s.History)
	next.History = append(history, rec)
	return next, rec, nil
}

// matchMove finds the candidate for destination to. Promotions without an
// explicit piece choose uniformly among the four officers.
func matchMove(candidates []LegalMove, to Square, cfg applyConfig) (LegalMove, bool) {
	promo := NoKind
	for _, mv := range candidates {
		if mv.To != to {
			continue
		}
		if mv.Promotion == NoKind {
			return mv, true
		}
		if promo == NoKind {
			promo = cfg.promotion
			if promo == NoKind {
				promo = PromotionKinds[cfg.rng.Intn(len(PromotionKinds))]
			}
			if !promo.IsPromotion() {
				return LegalMove{}, false
			}
		}
		if mv.Promotion == promo {
			return mv, true
		}
	}
	return LegalMove{}, false
}

// Play returns the state after from/mv without validating it and without
// touching History or the game-over fields. The move must come from
// LegalMoves or AllLegalMoves of s. Search uses it to expand nodes cheaply.
func (s *GameState) Play(from Square, mv LegalMove) GameState {
	return s.advance(from, mv)
}

// advance performs the board mutation and bookkeeping of one ply on a copy.
// History is shared read-only with s; ApplyMove replaces it before appending.
func (s *GameState) advance(from Square, mv LegalMove) GameState {
	next := *s
	b := &next.Board
	mover := b.At(from)
	us := mover.Color
	them := us.Opposite()

	captured := b.At(mv.To)
	if mv.EnPassant {
		capSq := Sq(from.Row, mv.To.Col)
		captured = b.At(capSq)
		b.Clear(capSq)
	}

	b.Clear(from)
	if mv.Promotion != NoKind {
		b.Set(mv.To, Piece{Color: us, Kind: mv.Promotion})
	} else {
		b.Set(mv.To, mover)
	}

	row := homeRow(us)
	switch mv.Castle {
	case CastleKingside:
		b.Clear(Sq(row, 7))
		b.Set(Sq(row, 5), Piece{Color: us, Kind: Rook})
	case CastleQueenside:
		b.Clear(Sq(row, 0))
		b.Set(Sq(row, 3), Piece{Color: us, Kind: Rook})
	}

	if mover.Kind == King {
		next.Castling[us] = CastlingRights{}
	}
	if from == Sq(row, 7) {
		next.Castling[us].Kingside = false
	} else if from == Sq(row, 0) {
		next.Castling[us].Queenside = false
	}
	// Anything landing on an enemy corner has captured the unmoved rook, or
	// the right is already gone.
	enemyRow := homeRow(them)
	if mv.To == Sq(enemyRow, 7) {
		next.Castling[them].Kingside = false
	} else if mv.To == Sq(enemyRow, 0) {
		next.Castling[them].Queenside = false
	}

	next.EnPassant = NoSquare
	if mv.DoublePawn {
		next.EnPassant = Sq((from.Row+mv.To.Row)/2, from.Col)
	}

	if mover.Kind == Pawn || !captured.IsNone() {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if us == Black {
		next.FullMoveNumber++
	}
	next.Turn = them
	return next
}
