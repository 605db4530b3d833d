package engine

import "chaos-chess/rules"

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int = 1_000_000
	Checkmate int = 100_000
	DrawScore int = 0

	DefaultDepth = 4
)

// SearchResult is the outcome of a fixed-depth search.
type SearchResult struct {
	Move  rules.Move
	Found bool // false when the side to move has no legal move
	Score int  // White's perspective
	Nodes uint64
	Cuts  CutStatistics
}

type searcher struct {
	nodes   uint64
	cuts    CutStatistics
	killers killerTable
}

// Search runs a fixed-depth minimax with alpha-beta pruning and returns the
// root move that is best for the side to move. Among equal scores the move
// met first in search order wins, so the result is deterministic.
func Search(s *rules.GameState, depth int) SearchResult {
	if depth < 1 {
		depth = 1
	}
	moves := orderMoves(s, s.AllLegalMoves(), nil)
	if len(moves) == 0 {
		return SearchResult{}
	}

	sr := searcher{killers: newKillerTable(depth)}
	maximizing := s.Turn == rules.White
	alpha, beta := -MaxScore, MaxScore
	res := SearchResult{Found: true}

	for i, m := range moves {
		child := s.Play(m.From, m.LegalMove)
		score := sr.alphaBeta(&child, depth-1, 1, alpha, beta)

		if i == 0 || (maximizing && score > res.Score) || (!maximizing && score < res.Score) {
			res.Move = m
			res.Score = score
		}
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
	}
	res.Nodes = sr.nodes + 1
	res.Cuts = sr.cuts
	return res
}

func (sr *searcher) alphaBeta(s *rules.GameState, depth, ply int, alpha, beta int) int {
	sr.nodes++

	if depth <= 0 {
		sr.cuts.LeafEvals++
		return Evaluate(s)
	}

	moves := s.AllLegalMoves()
	if len(moves) == 0 {
		if s.IsInCheck(s.Turn) {
			sr.cuts.MateNodes++
			// Mates found with more depth left are closer to the root.
			mate := Checkmate + depth
			if s.Turn == rules.White {
				return -mate
			}
			return mate
		}
		sr.cuts.StaleNodes++
		return DrawScore
	}
	killers := &sr.killers[ply]
	moves = orderMoves(s, moves, killers)

	maximizing := s.Turn == rules.White
	best := MaxScore
	if maximizing {
		best = -MaxScore
	}
	for _, m := range moves {
		child := s.Play(m.From, m.LegalMove)
		score := sr.alphaBeta(&child, depth-1, ply+1, alpha, beta)
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if alpha >= beta {
			sr.cutoff(m, ply)
			break
		}
	}
	return best
}

// cutoff records a beta cutoff caused by m at ply.
func (sr *searcher) cutoff(m rules.Move, ply int) {
	sr.cuts.BetaCutoffs++
	if m.Capture {
		return
	}
	if m == sr.killers[ply][0] || m == sr.killers[ply][1] {
		sr.cuts.KillerCutoffs++
	}
	sr.killers.insert(m, ply)
}
