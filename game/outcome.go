package game

import "chaos-chess/rules"

// Ending says how a game finished.
type Ending uint8

const (
	EndNone Ending = iota
	EndCheckmate
	EndStalemate
	EndDeclared // chaos: the bot reached its win turn
	EndCheat    // chaos: the bot overrode a checkmate against it
)

func (e Ending) String() string {
	switch e {
	case EndCheckmate:
		return "checkmate"
	case EndStalemate:
		return "stalemate"
	case EndDeclared:
		return "declared victory"
	case EndCheat:
		return "cheat"
	default:
		return "none"
	}
}

// Outcome is the session's verdict on the game. In chaos mode it can
// disagree with the rules result carried by the state.
type Outcome struct {
	Over   bool
	Result rules.Result
	Ending Ending
}

func outcomeOf(s *rules.GameState) Outcome {
	if !s.GameOver {
		return Outcome{}
	}
	out := Outcome{Over: true, Result: s.Result}
	switch s.Reason {
	case rules.ReasonCheckmate:
		out.Ending = EndCheckmate
	case rules.ReasonStalemate:
		out.Ending = EndStalemate
	}
	return out
}

func botVictory(bot rules.Color, ending Ending) Outcome {
	return Outcome{Over: true, Result: rules.Winner(bot), Ending: ending}
}
