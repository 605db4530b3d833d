package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"chaos-chess/game"
	"chaos-chess/rules"
)

const helpText = `commands:
  new              start a new game from the initial position
  fen [FEN]        print the position, or start a new game from FEN
  legal <sq>       list destinations for the piece on sq
  move <uci>       play a move, e.g. e2e4 or e7e8q
  bot              let the computer move
  board            print the board
  history          print the moves so far
  quit`

type console struct {
	session *game.Session
	out     io.Writer
	logger  *zap.Logger
}

func newConsole(session *game.Session, out io.Writer, logger *zap.Logger) *console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &console{session: session, out: out, logger: logger}
}

// run reads commands from in until quit or EOF.
func (c *console) run(in io.Reader) error {
	c.printBoard()
	c.botIfDue()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(c.out, helpText)
		case "new":
			c.session.Reset(nil)
			c.printBoard()
			c.botIfDue()
		case "fen":
			if len(tokens) == 1 {
				st := c.session.State()
				fmt.Fprintln(c.out, st.FEN())
				continue
			}
			start, err := rules.ParseFEN(strings.Join(tokens[1:], " "))
			if err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
				continue
			}
			c.session.Reset(&start)
			c.printBoard()
			c.printOutcome(c.session.Outcome())
			c.botIfDue()
		case "legal":
			if len(tokens) != 2 {
				fmt.Fprintln(c.out, "usage: legal <square>")
				continue
			}
			c.legal(tokens[1])
		case "move":
			if len(tokens) != 2 {
				fmt.Fprintln(c.out, "usage: move <uci>")
				continue
			}
			if c.humanMove(tokens[1]) {
				c.botIfDue()
			}
		case "bot":
			c.botMove()
		case "board":
			c.printBoard()
		case "history":
			hist, err := c.session.History()
			if err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(c.out, hist)
		default:
			fmt.Fprintf(c.out, "unknown command %q, try help\n", tokens[0])
		}
	}
	return scanner.Err()
}

func (c *console) legal(coord string) {
	sq, err := rules.ParseSquare(coord)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	moves := c.session.LegalMoves(sq)
	if len(moves) == 0 {
		fmt.Fprintf(c.out, "%s: no legal moves\n", sq)
		return
	}
	seen := make(map[rules.Square]bool, len(moves))
	dests := make([]string, 0, len(moves))
	for _, m := range moves {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		dests = append(dests, m.To.String())
	}
	fmt.Fprintf(c.out, "%s: %s\n", sq, strings.Join(dests, " "))
}

// humanMove plays uci for the human and reports whether it was accepted.
func (c *console) humanMove(uci string) bool {
	from, to, promo, err := rules.ParseUCI(uci)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return false
	}
	turn, err := c.session.HumanMove(from, to, promo)
	if err != nil {
		if errors.Is(err, rules.ErrRejected) {
			fmt.Fprintf(c.out, "illegal move %s\n", uci)
		} else {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		return false
	}
	fmt.Fprintf(c.out, "you: %s\n", turn.SAN)
	if turn.Comment != "" {
		fmt.Fprintf(c.out, "bot: %s\n", turn.Comment)
	}
	c.printOutcome(turn.Outcome)
	return true
}

// botIfDue lets the computer move when it is its turn.
func (c *console) botIfDue() {
	st := c.session.State()
	if c.session.Outcome().Over || st.Turn == c.session.Human() {
		return
	}
	c.botMove()
}

func (c *console) botMove() {
	turn, err := c.session.BotMove()
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		if !errors.Is(err, game.ErrNotYourTurn) && !errors.Is(err, game.ErrGameOver) {
			c.logger.Warn("bot move failed", zap.Error(err))
		}
		return
	}
	if turn.Comment != "" {
		fmt.Fprintf(c.out, "bot: %s\n", turn.Comment)
	}
	if turn.Moved {
		fmt.Fprintf(c.out, "bot plays %s\n", turn.SAN)
		c.printBoard()
	}
	c.printOutcome(turn.Outcome)
}

func (c *console) printOutcome(out game.Outcome) {
	if !out.Over {
		return
	}
	switch out.Result {
	case rules.ResultDraw:
		fmt.Fprintf(c.out, "game over: draw by %s\n", out.Ending)
	default:
		fmt.Fprintf(c.out, "game over: %s (%s)\n", out.Result, out.Ending)
	}
}

func (c *console) printBoard() {
	st := c.session.State()
	fmt.Fprint(c.out, renderBoard(&st))
}

// renderBoard draws the board from White's side with FEN letters, '.' for
// empty squares.
func renderBoard(s *rules.GameState) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p.IsNone() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENChar())
			}
			if col < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", s.Turn)
	return sb.String()
}
