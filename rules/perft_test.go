package rules_test

import (
	"testing"

	"chaos-chess/rules"
)

func mustFEN(t testing.TB, fen string) rules.GameState {
	t.Helper()
	s, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return s
}

func TestPerftInitialPosition(t *testing.T) {
	s := rules.NewGame()
	if got := rules.Perft(s, 1); got != 20 {
		t.Fatalf("perft depth1: got %d want %d", got, 20)
	}
	if got := rules.Perft(s, 2); got != 400 {
		t.Fatalf("perft depth2: got %d want %d", got, 400)
	}
	if got := rules.Perft(s, 3); got != 8902 {
		t.Fatalf("perft depth3: got %d want %d", got, 8902)
	}
}

func TestPerftInitialDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 4 perft in short mode")
	}
	if got := rules.Perft(rules.NewGame(), 4); got != 197281 {
		t.Fatalf("initial depth4: got %d want %d", got, 197281)
	}
}

// Reference counts from the Chess Programming Wiki perft suite.
func TestPerftPositions(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		counts []uint64
	}{
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
		{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079}},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
		{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustFEN(t, tt.fen)
			for i, want := range tt.counts {
				depth := i + 1
				if got := rules.Perft(s, depth); got != want {
					t.Fatalf("%s depth%d: got %d want %d", tt.name, depth, got, want)
				}
			}
		})
	}
}

func TestPerftKiwipeteDepth3(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping kiwipete depth 3 in short mode")
	}
	s := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := rules.Perft(s, 3); got != 97862 {
		t.Fatalf("kiwipete depth3: got %d want %d", got, 97862)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	s := rules.NewGame()
	div := rules.PerftDivide(s, 2)
	if len(div) != 20 {
		t.Fatalf("divide root moves: got %d want %d", len(div), 20)
	}
	var sum uint64
	for m, n := range div {
		if n != 20 {
			t.Errorf("divide %s: got %d want %d", m, n, 20)
		}
		sum += n
	}
	if sum != 400 {
		t.Fatalf("divide total: got %d want %d", sum, 400)
	}
}
