package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// referenceDivide runs a divide with dragontoothmg's generator.
func referenceDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		out[strings.ToLower(m.String())] = referencePerft(&b, depth-1)
		undo()
	}
	return out
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		undo := b.Apply(m)
		n += referencePerft(b, depth-1)
		undo()
	}
	return n
}

// compareDivide lists every root move whose count differs.
func compareDivide(ours, ref map[string]uint64) []string {
	keys := make(map[string]struct{}, len(ours)+len(ref))
	for k := range ours {
		keys[k] = struct{}{}
	}
	for k := range ref {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var out []string
	for _, k := range sorted {
		a, okA := ours[k]
		b, okB := ref[k]
		switch {
		case !okA:
			out = append(out, fmt.Sprintf("%s: missing (reference %d)", k, b))
		case !okB:
			out = append(out, fmt.Sprintf("%s: extra (ours %d)", k, a))
		case a != b:
			out = append(out, fmt.Sprintf("%s: ours %d reference %d", k, a, b))
		}
	}
	return out
}
