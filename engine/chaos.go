package engine

import "chaos-chess/rules"

// ChaosConfig tunes the chaos strategy.
type ChaosConfig struct {
	MaxWinTurn       int     // win turn is drawn uniformly from 1..MaxWinTurn
	CorruptionTurns  int     // turns until corruption reaches 1
	CaptureThreshold float64 // corruption above which captures may be preferred
}

// DefaultChaosConfig returns the standard chaos tuning.
func DefaultChaosConfig() ChaosConfig {
	return ChaosConfig{
		MaxWinTurn:       50,
		CorruptionTurns:  30,
		CaptureThreshold: 0.3,
	}
}

// Reaction weights for a human move that neither captured nor gave check.
const (
	badReactionWeight     = 0.35
	neutralReactionWeight = 0.40
)

// ChaosSession carries the chaos strategy's state across one game. It is
// owned by a single game and is not safe for concurrent use.
type ChaosSession struct {
	cfg     ChaosConfig
	rng     Rand
	turn    int
	winTurn int
}

// NewChaosSession creates a session and draws its win turn.
func NewChaosSession(cfg ChaosConfig, rng Rand) *ChaosSession {
	if cfg.MaxWinTurn < 1 {
		cfg.MaxWinTurn = 1
	}
	if cfg.CorruptionTurns < 1 {
		cfg.CorruptionTurns = 1
	}
	c := &ChaosSession{cfg: cfg, rng: rng}
	c.Reset()
	return c
}

// Reset starts a new game: the turn counter returns to zero and a new win
// turn is drawn.
func (c *ChaosSession) Reset() {
	c.turn = 0
	c.winTurn = 1 + c.rng.Intn(c.cfg.MaxWinTurn)
}

// Turn returns how many times Next has been called since Reset.
func (c *ChaosSession) Turn() int { return c.turn }

// WinTurn returns the turn on which the bot declares victory.
func (c *ChaosSession) WinTurn() int { return c.winTurn }

// Corruption grows linearly from 0 to 1 over CorruptionTurns turns.
func (c *ChaosSession) Corruption() float64 {
	return min(1, float64(c.turn)/float64(c.cfg.CorruptionTurns))
}

// Next advances the turn counter and produces the bot's response for s.
// On the win turn it declares victory without a move; otherwise it reacts
// to the human's last move and picks a move, favoring captures as
// corruption grows.
func (c *ChaosSession) Next(s *rules.GameState) Result {
	c.turn++
	if c.turn == c.winTurn {
		return Result{
			BotWins: true,
			Mood:    MoodVictory,
			Comment: pickComment(c.rng, MoodVictory),
		}
	}

	mood := c.react(s)
	res := Result{Mood: mood, Comment: pickComment(c.rng, mood)}

	moves := s.AllLegalMoves()
	if len(moves) == 0 {
		return res
	}
	pool := moves
	if corruption := c.Corruption(); corruption > c.cfg.CaptureThreshold && c.rng.Float64() < corruption {
		if caps := captures(moves); len(caps) > 0 {
			pool = caps
		}
	}
	res.Move, res.HasMove = pool[c.rng.Intn(len(pool))], true
	return res
}

// Cheat turns a checkmate against the bot into a bot victory. Callers use
// it only in chaos mode, when the human's move has just mated the bot.
func (c *ChaosSession) Cheat() Result {
	return Result{
		BotWins: true,
		Cheated: true,
		Mood:    MoodCheat,
		Comment: pickComment(c.rng, MoodCheat),
	}
}

// react classifies the human's preceding move.
func (c *ChaosSession) react(s *rules.GameState) Mood {
	last, ok := s.LastMove()
	if !ok {
		return MoodNeutral
	}
	if last.IsCapture() || last.Check {
		return MoodGood
	}
	r := c.rng.Float64()
	switch {
	case r < badReactionWeight:
		return MoodBad
	case r < badReactionWeight+neutralReactionWeight:
		return MoodNeutral
	default:
		return MoodChaotic
	}
}
