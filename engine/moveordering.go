package engine

import (
	"sort"

	"golang.org/x/exp/slices"

	"chaos-chess/rules"
)

// Most Valuable Victim - Least Valuable Aggressor, indexed [victim][attacker].
var mvvLva = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// orderMoves puts captures first, best MVV-LVA score leading, then the
// killer moves for this ply, then the remaining quiet moves. Generation order
// is kept among equals. killers may be nil.
func orderMoves(s *rules.GameState, moves []rules.Move, killers *[2]rules.Move) []rules.Move {
	ordered := make([]rules.Move, 0, len(moves))
	ordered = append(ordered, captures(moves)...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return captureScore(s, ordered[i]) > captureScore(s, ordered[j])
	})
	isKiller := func(m rules.Move) bool {
		return killers != nil && (m == killers[0] || m == killers[1])
	}
	if killers != nil {
		for _, k := range killers {
			if !k.Capture && slices.Contains(moves, k) {
				ordered = append(ordered, k)
			}
		}
	}
	for _, m := range moves {
		if !m.Capture && !isKiller(m) {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

func captureScore(s *rules.GameState, m rules.Move) int {
	attacker := s.Board.At(m.From).Kind
	victim := rules.Pawn
	if !m.EnPassant {
		victim = s.Board.At(m.To).Kind
	}
	return mvvLva[victim][attacker]
}

// captures returns the capturing moves of moves, in order.
func captures(moves []rules.Move) []rules.Move {
	var out []rules.Move
	for _, m := range moves {
		if m.Capture {
			out = append(out, m)
		}
	}
	return out
}
