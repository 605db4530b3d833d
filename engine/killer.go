package engine

import "chaos-chess/rules"

// killerTable keeps, per ply, the last two quiet moves that caused a beta
// cutoff. The zero Move never matches a generated move.
type killerTable [][2]rules.Move

func newKillerTable(depth int) killerTable {
	return make(killerTable, depth+1)
}

func (k killerTable) insert(m rules.Move, ply int) {
	if m != k[ply][0] {
		k[ply][1] = k[ply][0]
		k[ply][0] = m
	}
}
