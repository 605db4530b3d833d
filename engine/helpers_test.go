package engine

import (
	"testing"

	"chaos-chess/rules"
)

// fixedRand returns the same draw every time.
type fixedRand struct {
	i int
	f float64
}

func (r fixedRand) Intn(n int) int   { return r.i % n }
func (r fixedRand) Float64() float64 { return r.f }

func mustFEN(t testing.TB, fen string) rules.GameState {
	t.Helper()
	s, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	return s
}
