package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments; -1 means zero or one
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"p": 0,
	"r": 0,
	"n": -1,
	"s": 0,
	"g": 0,
	"h": 0,
	"q": 0,
}

var moves = map[string]mines.Action{
	"o": mines.ActionReveal,
	"f": mines.ActionFlag,
	"c": mines.ActionChord,
}

const helpText = `commands:
  o ROW COL   open a cell
  f ROW COL   flag or unflag a cell
  c ROW COL   open around a number whose mines are all flagged
  p           print the board
  r           restart with the same board size
  n [GAME]    new game: preset, seed or rows=R&cols=C&mines=M&mode=open
  s           show the game seed
  g           give up
  h           help
  q           quit
separate several commands with ';'
`

func parsePoint(twoStrings []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("col must be an int")
		return
	}
	return
}

func (c *console) executeCommand(cmd string) (err error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (h for help)", parts[0])
	}
	args := parts[1:]
	if nargs >= 0 && nargs != len(args) || nargs < 0 && len(args) > 1 {
		return errors.New("invalid number of arguments")
	}

	switch parts[0] {
	case "o", "f", "c":
		p, err := parsePoint(args)
		if err != nil {
			return err
		}
		if params := c.session.Params(); !params.Contains(p) {
			return &mines.OutOfBoundsError{Point: p, Rows: params.Rows, Cols: params.Cols}
		}
		log.WithField("point", p).Debug("move ", parts[0])
		if err := c.session.Do(moves[parts[0]], p); err != nil {
			return err
		}
		c.printBoard()
	case "p":
		c.printBoard()
	case "r":
		c.session.Reset()
		c.printBoard()
	case "n":
		params := c.session.Params()
		if len(args) == 1 {
			if params, err = config.ParseGame(args[0]); err != nil {
				return err
			}
		}
		if err := c.newGame(params); err != nil {
			return err
		}
		c.printBoard()
	case "s":
		fmt.Fprintln(c.out, c.session.Params().Seed())
	case "g":
		c.session.Forfeit()
		c.printBoard()
	case "h":
		fmt.Fprint(c.out, helpText)
	case "q":
		return errQuit
	}
	return nil
}
