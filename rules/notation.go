package rules

import (
	"strconv"
	"strings"
)

// FormatSAN renders rec in standard algebraic notation. prev must be the
// state the move was applied to.
func FormatSAN(prev *GameState, rec MoveRecord) string {
	var sb strings.Builder
	switch {
	case rec.Castle == CastleKingside:
		sb.WriteString("O-O")
	case rec.Castle == CastleQueenside:
		sb.WriteString("O-O-O")
	case rec.Piece.Kind == Pawn:
		if rec.IsCapture() {
			sb.WriteByte(rec.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(rec.To.String())
		if rec.Promotion != NoKind {
			sb.WriteByte('=')
			sb.WriteByte(rec.Promotion.Letter())
		}
	default:
		sb.WriteByte(rec.Piece.Kind.Letter())
		sb.WriteString(disambiguation(prev, rec))
		if rec.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(rec.To.String())
	}

	if rec.Checkmate {
		sb.WriteByte('#')
	} else if rec.Check {
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin prefix needed when other pieces of the
// same kind and color can also reach rec.To: the file if it is unique among
// them, else the rank if unique, else both.
func disambiguation(prev *GameState, rec MoveRecord) string {
	var rivals []Square
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Sq(row, col)
			if sq == rec.From || prev.Board.At(sq) != rec.Piece {
				continue
			}
			for _, mv := range prev.LegalMoves(sq) {
				if mv.To == rec.To {
					rivals = append(rivals, sq)
					break
				}
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	fileUnique, rankUnique := true, true
	for _, sq := range rivals {
		if sq.Col == rec.From.Col {
			fileUnique = false
		}
		if sq.Row == rec.From.Row {
			rankUnique = false
		}
	}
	switch {
	case fileUnique:
		return string(rec.From.File())
	case rankUnique:
		return string(rec.From.Rank())
	default:
		return rec.From.String()
	}
}

// FormatHistory renders a game's moves as numbered SAN, e.g.
// "1. e4 e5 2. Nf3". start is the state the history was played from.
func FormatHistory(start GameState, history []MoveRecord) (string, error) {
	var sb strings.Builder
	cur := start
	for i, rec := range history {
		if cur.Turn == White || i == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(cur.FullMoveNumber))
			if cur.Turn == White {
				sb.WriteString(". ")
			} else {
				sb.WriteString("... ")
			}
		} else {
			sb.WriteByte(' ')
		}
		next, applied, err := cur.ApplyMove(rec.From, rec.To, WithPromotion(rec.Promotion))
		if err != nil {
			return "", err
		}
		sb.WriteString(FormatSAN(&cur, applied))
		cur = next
	}
	return sb.String(), nil
}
