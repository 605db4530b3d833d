// Package game runs one human-versus-computer game on top of the rules and
// engine packages.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chaos-chess/engine"
	"chaos-chess/rules"
)

// Options configures a Session.
type Options struct {
	Human rules.Color
	Start *rules.GameState // nil means the standard initial position
	Rand  rules.Rand       // promotion choice when a human move names none
}

// Turn describes one completed call to HumanMove or BotMove.
type Turn struct {
	Moved  bool // false when the bot declared victory or had no move
	Record rules.MoveRecord
	SAN    string

	Comment string
	Mood    engine.Mood
	Cheated bool

	Outcome Outcome
}

// Session owns the current state of one game, the selector playing the
// computer side and the game's identity. Methods are safe for concurrent
// use; each call is one ply.
type Session struct {
	mu sync.Mutex

	id       uuid.UUID
	human    rules.Color
	start    rules.GameState
	state    rules.GameState
	outcome  Outcome
	selector *engine.Selector
	rng      rules.Rand
	logger   *zap.Logger
}

// NewSession starts a game with sel as it stands, without drawing a new
// chaos win turn. A nil logger is replaced by a no-op logger.
func NewSession(sel *engine.Selector, opts Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		human:    opts.Human,
		selector: sel,
		rng:      opts.Rand,
		logger:   logger,
	}
	s.reset(opts.Start)
	return s
}

// Reset starts a new game under a fresh ID. start may be nil.
func (s *Session) Reset(start *rules.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selector.NewGame()
	s.reset(start)
}

func (s *Session) reset(start *rules.GameState) {
	if start != nil {
		s.start = start.Clone()
	} else {
		s.start = rules.NewGame()
	}
	s.state = s.start.Clone()
	s.outcome = outcomeOf(&s.state)
	s.id = uuid.New()

	s.logger.Info("game started",
		zap.String("session_id", s.id.String()),
		zap.Stringer("human", s.human),
		zap.Stringer("strategy", s.selector.Strategy()),
		zap.String("fen", s.state.FEN()),
	)
}

// ID identifies the current game.
func (s *Session) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Human returns the human's color.
func (s *Session) Human() rules.Color { return s.human }

// State returns a copy of the current position.
func (s *Session) State() rules.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Outcome reports whether the game is over and how.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// LegalMoves lists the destinations for the piece on sq.
func (s *Session) LegalMoves(sq rules.Square) []rules.LegalMove {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome.Over || !sq.OnBoard() {
		return nil
	}
	return s.state.LegalMoves(sq)
}

// History formats the moves played so far in SAN.
func (s *Session) History() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rules.FormatHistory(s.start, s.state.History)
}

// HumanMove validates and plays the human's move. In chaos mode a move
// that checkmates the bot is overridden into a bot victory.
func (s *Session) HumanMove(from, to rules.Square, promotion rules.PieceKind) (Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.Over {
		return Turn{}, ErrGameOver
	}
	if s.state.Turn != s.human {
		return Turn{}, ErrNotYourTurn
	}

	opts := []rules.ApplyOption{rules.WithPromotion(promotion)}
	if s.rng != nil {
		opts = append(opts, rules.WithRand(s.rng))
	}
	turn, err := s.apply(from, to, opts...)
	if err != nil {
		return Turn{}, err
	}

	switch {
	case turn.Record.Checkmate && s.selector.Strategy() == engine.StrategyChaos:
		res, err := s.selector.Cheat()
		if err != nil {
			return Turn{}, fmt.Errorf("override checkmate: %w", err)
		}
		turn.Comment, turn.Mood, turn.Cheated = res.Comment, res.Mood, true
		s.finish(botVictory(s.human.Opposite(), EndCheat))
	case s.state.GameOver:
		s.finish(outcomeOf(&s.state))
	}
	turn.Outcome = s.outcome
	return turn, nil
}

// BotMove asks the selector for the computer's move and plays it.
func (s *Session) BotMove() (Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.Over {
		return Turn{}, ErrGameOver
	}
	if s.state.Turn == s.human {
		return Turn{}, ErrNotYourTurn
	}

	res := s.selector.SelectMove(&s.state)
	if res.BotWins {
		s.finish(botVictory(s.state.Turn, EndDeclared))
		return Turn{Comment: res.Comment, Mood: res.Mood, Outcome: s.outcome}, nil
	}
	if !res.HasMove {
		return Turn{Comment: res.Comment, Mood: res.Mood, Outcome: s.outcome}, ErrNoMove
	}

	turn, err := s.apply(res.Move.From, res.Move.To, rules.WithPromotion(res.Move.Promotion))
	if err != nil {
		return Turn{}, fmt.Errorf("bot move %s: %w", res.Move.UCI(), err)
	}
	if s.state.GameOver {
		s.finish(outcomeOf(&s.state))
	}
	turn.Comment, turn.Mood = res.Comment, res.Mood
	turn.Outcome = s.outcome
	return turn, nil
}

// apply plays from-to on the current state and records the move. Ending
// the game is left to the caller.
func (s *Session) apply(from, to rules.Square, opts ...rules.ApplyOption) (Turn, error) {
	prev := s.state
	next, rec, err := prev.ApplyMove(from, to, opts...)
	if err != nil {
		return Turn{}, err
	}
	s.state = next
	san := rules.FormatSAN(&prev, rec)

	s.logger.Info("move applied",
		zap.String("session_id", s.id.String()),
		zap.Stringer("side", prev.Turn),
		zap.String("uci", rec.UCI()),
		zap.String("san", san),
		zap.Int("ply", next.Ply()),
	)
	return Turn{Moved: true, Record: rec, SAN: san}, nil
}

func (s *Session) finish(out Outcome) {
	s.outcome = out
	s.logger.Info("game over",
		zap.String("session_id", s.id.String()),
		zap.Stringer("result", out.Result),
		zap.Stringer("ending", out.Ending),
		zap.Int("ply", s.state.Ply()),
	)
}
