package engine

import (
	"testing"
	"time"

	"chaos-chess/rules"
)

func TestSearchFindsMateInOne(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"white back rank", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8"},
		{"black back rank", "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", "a8a1"},
	}
	for _, tt := range tests {
		for _, depth := range []int{2, 3} {
			s := mustFEN(t, tt.fen)
			res := Search(&s, depth)
			if !res.Found || res.Move.UCI() != tt.want {
				t.Fatalf("%s depth %d: got %s want %s", tt.name, depth, res.Move.UCI(), tt.want)
			}
			if abs(res.Score) < Checkmate {
				t.Fatalf("%s depth %d: score %d is not a mate score", tt.name, depth, res.Score)
			}
		}
	}
}

func TestSearchPrefersFasterMate(t *testing.T) {
	// Ra8 mates at once; other lines mate later or not at all.
	s := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	res := Search(&s, 3)
	if res.Score != Checkmate+2 {
		t.Fatalf("mate score: got %d want %d", res.Score, Checkmate+2)
	}
}

func TestSearchWinsHangingQueen(t *testing.T) {
	s := mustFEN(t, "4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1")
	res := Search(&s, 2)
	if res.Move.UCI() != "d1d5" {
		t.Fatalf("got %s want d1d5", res.Move.UCI())
	}
}

func TestSearchMinimizesForBlack(t *testing.T) {
	s := mustFEN(t, "3qk3/8/8/8/3Q4/8/8/4K3 b - - 0 1")
	res := Search(&s, 2)
	if res.Move.UCI() != "d8d4" {
		t.Fatalf("got %s want d8d4", res.Move.UCI())
	}
	if res.Score >= 0 {
		t.Fatalf("black winning a queen should score negative, got %d", res.Score)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	s := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	first := Search(&s, 3)
	for i := 0; i < 3; i++ {
		again := Search(&s, 3)
		if again.Move != first.Move || again.Score != first.Score || again.Nodes != first.Nodes {
			t.Fatalf("run %d: got %s/%d/%d want %s/%d/%d", i, again.Move.UCI(), again.Score, again.Nodes,
				first.Move.UCI(), first.Score, first.Nodes)
		}
	}
}

func TestSearchNoLegalMoves(t *testing.T) {
	s := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if res := Search(&s, DefaultDepth); res.Found {
		t.Fatalf("stalemated side should have no move, got %s", res.Move.UCI())
	}
}

func TestSearchDefaultDepthFromStart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 4 search in short mode")
	}
	s := rules.NewGame()
	start := time.Now()
	res := Search(&s, DefaultDepth)
	t.Logf("depth %d: best=%s score=%d nodes=%d time=%v", DefaultDepth, res.Move.UCI(), res.Score, res.Nodes, time.Since(start))
	if !res.Found {
		t.Fatalf("no move found from the start position")
	}
	if _, _, err := s.ApplyMove(res.Move.From, res.Move.To); err != nil {
		t.Fatalf("search returned an illegal move %s: %v", res.Move.UCI(), err)
	}
}

func TestOrderMovesCapturesFirst(t *testing.T) {
	s := mustFEN(t, "4k3/8/8/3q4/2P5/1n6/8/1R2K3 w - - 0 1")
	ordered := orderMoves(&s, s.AllLegalMoves(), nil)
	if len(ordered) < 2 || !ordered[0].Capture || !ordered[1].Capture {
		t.Fatalf("captures not first: %v", ordered)
	}
	if ordered[0].UCI() != "c4d5" || ordered[1].UCI() != "b1b3" {
		t.Fatalf("MVV-LVA order: got %s, %s want c4d5, b1b3", ordered[0].UCI(), ordered[1].UCI())
	}
	seenQuiet := false
	for _, m := range ordered {
		if !m.Capture {
			seenQuiet = true
		} else if seenQuiet {
			t.Fatalf("capture %s after a quiet move", m.UCI())
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestOrderMovesKillersFollowCaptures(t *testing.T) {
	s := mustFEN(t, "4k3/8/8/3q4/2P5/1n6/8/1R2K3 w - - 0 1")
	moves := s.AllLegalMoves()
	var quiet []rules.Move
	for _, m := range moves {
		if !m.Capture {
			quiet = append(quiet, m)
		}
	}
	last := quiet[len(quiet)-1]
	killers := [2]rules.Move{last, {}}

	ordered := orderMoves(&s, moves, &killers)
	if len(ordered) != len(moves) {
		t.Fatalf("ordering changed the move count: %d vs %d", len(ordered), len(moves))
	}
	if ordered[2] != last {
		t.Fatalf("killer %s not placed after the captures: %v", last.UCI(), ordered)
	}
}

func TestSearchReportsCutStatistics(t *testing.T) {
	s := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	res := Search(&s, 3)
	if res.Cuts.BetaCutoffs == 0 || res.Cuts.LeafEvals == 0 {
		t.Fatalf("no cut statistics: %v", res.Cuts)
	}
	if res.Cuts.KillerCutoffs > res.Cuts.BetaCutoffs || res.Cuts.LeafEvals >= res.Nodes {
		t.Fatalf("inconsistent statistics: %v nodes %d", res.Cuts, res.Nodes)
	}
}
