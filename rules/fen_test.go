package rules_test

import (
	"errors"
	"testing"

	"chaos-chess/rules"
)

func TestNewGameMatchesStartFEN(t *testing.T) {
	s := rules.NewGame()
	if got := s.FEN(); got != rules.FENStartPos {
		t.Fatalf("FEN: got %q want %q", got, rules.FENStartPos)
	}
}

func TestFENRoundTripAfterMoves(t *testing.T) {
	s, _ := play(t, rules.NewGame(), "e2e4", "c7c5", "g1f3")
	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := s.FEN(); got != want {
		t.Fatalf("FEN: got %q want %q", got, want)
	}
	parsed := mustFEN(t, want)
	if parsed.Board != s.Board || parsed.Castling != s.Castling || parsed.Turn != s.Turn {
		t.Fatalf("parsed position differs from played position")
	}
}

func TestParseFENOptionalClocks(t *testing.T) {
	s := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - -")
	if s.HalfMoveClock != 0 || s.FullMoveNumber != 1 {
		t.Fatalf("clocks: got %d %d want 0 1", s.HalfMoveClock, s.FullMoveNumber)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkz - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1",
	}
	for _, fen := range bad {
		if _, err := rules.ParseFEN(fen); !errors.Is(err, rules.ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): got err %v want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseFENRejectsImpossibleEnPassant(t *testing.T) {
	bad := []string{
		"4k3/8/8/3PK3/8/8/8/8 w - e6 0 1",     // own king behind the square
		"4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1",    // nothing behind the square
		"4k3/8/8/3Pp3/8/8/8/4K3 w - e3 0 1",   // wrong rank for White to move
		"4k3/8/4p3/3Pp3/8/8/8/4K3 w - e6 0 1", // square occupied
		"4k3/8/8/8/3pP3/8/8/4K3 b - e6 0 1",   // wrong rank for Black to move
		"4k3/8/8/3PP3/8/8/8/4K3 w - e6 0 1",   // own pawn behind the square
	}
	for _, fen := range bad {
		if _, err := rules.ParseFEN(fen); !errors.Is(err, rules.ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): got err %v want ErrInvalidFEN", fen, err)
		}
	}

	for _, fen := range []string{
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
	} {
		if _, err := rules.ParseFEN(fen); err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
		}
	}
}
