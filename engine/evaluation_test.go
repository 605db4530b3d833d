package engine

import (
	"testing"

	"chaos-chess/rules"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	s := rules.NewGame()
	if got := Evaluate(&s); got != 0 {
		t.Fatalf("start position eval: got %d want 0", got)
	}
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	white := mustFEN(t, "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	black := mustFEN(t, "4k3/8/8/3n4/8/8/8/4K3 b - - 0 1")
	if a, b := Evaluate(&white), Evaluate(&black); a != -b || a <= 0 {
		t.Fatalf("mirrored positions: white %d black %d", a, b)
	}
}

func TestEvaluateMaterial(t *testing.T) {
	s := mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if got := Evaluate(&s); got < PieceValue[rules.Queen]-100 {
		t.Fatalf("extra queen eval: got %d", got)
	}
}

func TestEvaluateCheckBonus(t *testing.T) {
	blackInCheck := mustFEN(t, "R3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if got, base := Evaluate(&blackInCheck), material(&blackInCheck); got != base+CheckBonus {
		t.Fatalf("black in check: got %d want %d", got, base+CheckBonus)
	}

	whiteInCheck := mustFEN(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	if got, base := Evaluate(&whiteInCheck), material(&whiteInCheck); got != base-CheckBonus {
		t.Fatalf("white in check: got %d want %d", got, base-CheckBonus)
	}

	quiet := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if Evaluate(&quiet) != material(&quiet) {
		t.Fatalf("no check should add no bonus")
	}
}
