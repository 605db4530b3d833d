package engine

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"chaos-chess/rules"
)

// Strategy selects how the computer side chooses its moves.
type Strategy uint8

const (
	StrategyRandom Strategy = iota
	StrategySearch
	StrategyChaos
)

func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategySearch:
		return "search"
	case StrategyChaos:
		return "chaos"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy accepts the names produced by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return StrategyRandom, nil
	case "search", "minimax":
		return StrategySearch, nil
	case "chaos":
		return StrategyChaos, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Config configures a Selector.
type Config struct {
	Strategy    Strategy
	Depth       int     // search plies
	CaptureBias float64 // random strategy
	Chaos       ChaosConfig
}

// DefaultConfig returns the search strategy at the standard depth.
func DefaultConfig() Config {
	return Config{
		Strategy:    StrategySearch,
		Depth:       DefaultDepth,
		CaptureBias: DefaultCaptureBias,
		Chaos:       DefaultChaosConfig(),
	}
}

// Result is a selector decision: the move, if any, plus what the
// presentation layer needs to react to it.
type Result struct {
	Move    rules.Move
	HasMove bool

	Comment string
	Mood    Mood
	BotWins bool // chaos: the bot declares victory, no move is made
	Cheated bool // chaos: a checkmate against the bot was overridden

	Score int    // search: evaluation from White's perspective
	Nodes uint64 // search: nodes visited
}

// Selector produces moves for the computer side. A Selector belongs to one
// game; chaos mode keeps per-game state in it.
type Selector struct {
	cfg    Config
	rng    Rand
	chaos  *ChaosSession
	logger *zap.Logger
}

// NewSelector builds a selector. A nil rng is replaced by a clock-seeded
// source and a nil logger by a no-op logger.
func NewSelector(cfg Config, rng Rand, logger *zap.Logger) *Selector {
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Depth < 1 {
		cfg.Depth = DefaultDepth
	}
	s := &Selector{cfg: cfg, rng: rng, logger: logger}
	if cfg.Strategy == StrategyChaos {
		s.chaos = NewChaosSession(cfg.Chaos, rng)
	}
	return s
}

// Strategy reports the configured strategy.
func (s *Selector) Strategy() Strategy { return s.cfg.Strategy }

// Chaos returns the chaos session, or nil outside chaos mode.
func (s *Selector) Chaos() *ChaosSession { return s.chaos }

// NewGame resets per-game state. A new selector is ready for its first
// game; call NewGame before each later one.
func (s *Selector) NewGame() {
	if s.chaos != nil {
		s.chaos.Reset()
	}
}

// SelectMove chooses a move for the side to move in state. When there is no
// legal move the result has HasMove false; detecting mate or stalemate is
// the caller's job.
func (s *Selector) SelectMove(state *rules.GameState) Result {
	start := time.Now()
	var res Result

	switch s.cfg.Strategy {
	case StrategyRandom:
		res.Move, res.HasMove = RandomMove(state, s.rng, s.cfg.CaptureBias)
	case StrategySearch:
		sr := Search(state, s.cfg.Depth)
		res = Result{Move: sr.Move, HasMove: sr.Found, Score: sr.Score, Nodes: sr.Nodes}
	case StrategyChaos:
		res = s.chaos.Next(state)
	}

	fields := []zap.Field{
		zap.Stringer("strategy", s.cfg.Strategy),
		zap.Bool("has_move", res.HasMove),
		zap.Duration("elapsed", time.Since(start)),
	}
	if res.HasMove {
		fields = append(fields, zap.String("move", res.Move.UCI()))
	}
	switch s.cfg.Strategy {
	case StrategySearch:
		fields = append(fields, zap.Int("score", res.Score), zap.Uint64("nodes", res.Nodes), zap.Int("depth", s.cfg.Depth))
	case StrategyChaos:
		fields = append(fields,
			zap.Int("turn", s.chaos.Turn()),
			zap.Float64("corruption", s.chaos.Corruption()),
			zap.Bool("bot_wins", res.BotWins),
			zap.Stringer("mood", res.Mood),
		)
	}
	s.logger.Debug("move selected", fields...)
	return res
}

// Cheat overrides a checkmate against the bot. It fails outside chaos mode.
func (s *Selector) Cheat() (Result, error) {
	if s.chaos == nil {
		return Result{}, ErrCheatUnavailable
	}
	res := s.chaos.Cheat()
	s.logger.Debug("checkmate overridden", zap.Int("turn", s.chaos.Turn()), zap.String("comment", res.Comment))
	return res, nil
}
