package engine

import "fmt"

// CutStatistics counts how a search spent its nodes.
type CutStatistics struct {
	BetaCutoffs   uint64
	KillerCutoffs uint64 // beta cutoffs caused by a killer move
	LeafEvals     uint64
	MateNodes     uint64
	StaleNodes    uint64
}

func (c CutStatistics) String() string {
	return fmt.Sprintf("beta cutoffs %d (killers %d), leaf evals %d, mates %d, stalemates %d",
		c.BetaCutoffs, c.KillerCutoffs, c.LeafEvals, c.MateNodes, c.StaleNodes)
}
