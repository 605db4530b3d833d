package rules

import "golang.org/x/exp/slices"

// CastlingRights holds one side's remaining castling permissions.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Result is the outcome of a finished game.
type Result uint8

const (
	ResultNone Result = iota
	ResultWhite
	ResultBlack
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultWhite:
		return "1-0"
	case ResultBlack:
		return "0-1"
	case ResultDraw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Winner maps a winning color to its Result.
func Winner(c Color) Result {
	if c == White {
		return ResultWhite
	}
	return ResultBlack
}

// Reason explains why a game ended.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonCheckmate
	ReasonStalemate
)

func (r Reason) String() string {
	switch r {
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// GameState is the complete position plus game bookkeeping. New states are
// only produced by NewGame, ParseFEN or by applying a move to a prior state;
// the receiver of ApplyMove and Play is never modified.
type GameState struct {
	Board          Board
	Turn           Color
	Castling       [2]CastlingRights // indexed by Color
	EnPassant      Square            // NoSquare when no double-step happened last ply
	HalfMoveClock  int               // tracked, never used to end the game
	FullMoveNumber int
	History        []MoveRecord

	GameOver bool
	Result   Result
	Reason   Reason
}

// NewGame returns the standard initial position with White to move.
func NewGame() GameState {
	return GameState{
		Board:          StartingBoard(),
		Turn:           White,
		Castling:       [2]CastlingRights{{true, true}, {true, true}},
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// Clone returns a deep copy that shares no mutable storage with s.
func (s *GameState) Clone() GameState {
	c := *s
	c.History = slices.Clone(s.History)
	return c
}

// LastMove returns the most recent history entry, if any.
func (s *GameState) LastMove() (MoveRecord, bool) {
	if len(s.History) == 0 {
		return MoveRecord{}, false
	}
	return s.History[len(s.History)-1], true
}

// Ply returns the number of half-moves played so far.
func (s *GameState) Ply() int { return len(s.History) }
