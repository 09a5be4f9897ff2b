package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// announcer prints game start and end events along with the time the game
// took.
type announcer struct {
	out     io.Writer
	now     func() time.Time
	started time.Time
}

func newAnnouncer(out io.Writer) *announcer {
	return &announcer{out: out, now: time.Now}
}

func (a *announcer) GameStarted() {
	a.started = a.now()
	fmt.Fprintln(a.out, "game started")
	log.Debug("game started")
}

func (a *announcer) GameEnded(won bool) {
	elapsed := a.now().Sub(a.started).Round(time.Millisecond)
	if won {
		fmt.Fprintf(a.out, "you win! time: %s\n", elapsed)
	} else {
		fmt.Fprintf(a.out, "boom! game over, time: %s\n", elapsed)
	}
	log.WithFields(logrus.Fields{
		"won":     won,
		"elapsed": elapsed,
	}).Info("game ended")
}

type console struct {
	out       io.Writer
	rnd       *rand.Rand
	announcer *announcer
	session   *mines.Session
}

// newConsole starts a game of the given params. A nil rnd leaves seeding
// to the engine.
func newConsole(out io.Writer, params mines.GameParams, rnd *rand.Rand) (*console, error) {
	c := &console{out: out, rnd: rnd, announcer: newAnnouncer(out)}
	if err := c.newGame(params); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *console) newGame(params mines.GameParams) error {
	opts := []mines.Option{mines.WithListener(c.announcer)}
	if c.rnd != nil {
		opts = append(opts, mines.WithRand(c.rnd))
	}
	session, err := mines.NewSession(params, opts...)
	if err != nil {
		return err
	}
	c.session = session
	log.WithField("seed", params.Seed()).Info("new game")
	return nil
}

func (c *console) printBoard() {
	s := c.session
	cols := s.Cols()
	board := s.Status()

	var sb strings.Builder
	sb.WriteString("    ")
	for col := range cols {
		fmt.Fprintf(&sb, " %d", col%10)
	}
	sb.WriteByte('\n')
	for row := range s.Rows() {
		fmt.Fprintf(&sb, "%3d: %s\n", row, board.Row(cols, row))
	}
	fmt.Fprintf(&sb, "mines left: %d, state: %s\n", s.RemainingMines(), s.State())

	fmt.Fprint(c.out, sb.String())
}

func (c *console) prompt() {
	fmt.Fprint(c.out, "> ")
}

// Run executes commands read from lines until quit, end of input or
// cancellation.
func (c *console) Run(ctx context.Context, lines <-chan string) error {
	c.printBoard()
	c.prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			for _, cmd := range byPiece(line, ";") {
				err := c.executeCommand(cmd)
				if errors.Is(err, errQuit) {
					return nil
				}
				if err != nil {
					fmt.Fprintln(c.out, "error:", err)
					log.WithField("command", strings.TrimSpace(cmd)).Debug(err)
				}
			}
			c.prompt()
		}
	}
}
