package mines

import (
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

type State int

const (
	NotStarted State = iota
	Active
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Over reports whether s is terminal.
func (s State) Over() bool {
	return s == Won || s == Lost
}

type Action int

const (
	ActionReveal Action = iota
	ActionFlag
	ActionChord
)

func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionChord:
		return "chord"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Listener is told when a game starts and when it ends. Each is called at
// most once per game; Reset starts a new one.
type Listener interface {
	GameStarted()
	GameEnded(won bool)
}

type Option func(*Session)

func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rnd = r }
}

func WithListener(l Listener) Option {
	return func(s *Session) { s.listeners = append(s.listeners, l) }
}

// WithLayout fixes where the mines go instead of placing them at random
// around the first click. The layout must hold exactly as many distinct
// points as the params ask for mines.
func WithLayout(mines ...Point) Option {
	return func(s *Session) { s.layout = mines }
}

// Session is one game of Minesweeper. It owns its grid and is driven by a
// single caller; it is not safe for concurrent use.
type Session struct {
	params    GameParams
	grid      *Grid
	field     *Field
	state     State
	rnd       *rand.Rand
	layout    []Point
	listeners []Listener
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewSession(params GameParams, opts ...Option) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(params.Rows, params.Cols)
	if err != nil {
		return nil, err
	}
	s := &Session{
		params: params,
		grid:   grid,
		field:  NewField(grid, params.MineCount),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = createRand()
	}
	if s.layout != nil {
		if err := s.checkLayout(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) checkLayout() error {
	for _, p := range s.layout {
		if err := s.grid.check(p); err != nil {
			return err
		}
	}
	if n := NewPointSet(s.layout...).Len(); n != s.params.MineCount {
		return fmt.Errorf(
			"%w: layout has %d mines, params ask for %d",
			ErrInvalidParams, n, s.params.MineCount,
		)
	}
	return nil
}

func (s *Session) Params() GameParams { return s.params }
func (s *Session) State() State       { return s.state }
func (s *Session) Rows() int          { return s.grid.rows }
func (s *Session) Cols() int          { return s.grid.cols }
func (s *Session) ExposedCount() int  { return s.field.Exposed() }
func (s *Session) FlagsPlaced() int   { return s.field.Flags() }

// RemainingMines is the mine total minus placed flags; it can go negative.
func (s *Session) RemainingMines() int {
	return s.field.RemainingMines()
}

func (s *Session) Cell(p Point) (CellView, error) {
	if err := s.grid.check(p); err != nil {
		return CellView{}, err
	}
	return viewOf(s.grid.at(p), s.state), nil
}

// Status returns what the player sees of every cell, row-major.
func (s *Session) Status() Board {
	b := make(Board, len(s.grid.cells))
	for i := range s.grid.cells {
		b[i] = statusOf(&s.grid.cells[i], s.state)
	}
	return b
}

func (s *Session) Reveal(p Point) error      { return s.Do(ActionReveal, p) }
func (s *Session) ToggleFlag(p Point) error  { return s.Do(ActionFlag, p) }
func (s *Session) ChordReveal(p Point) error { return s.Do(ActionChord, p) }

// Do applies a player action at p. Out-of-bounds points are always an
// error; any other stray action, including one after the game is over, is
// a no-op.
func (s *Session) Do(kind Action, p Point) error {
	if err := s.grid.check(p); err != nil {
		return err
	}
	switch {
	case s.state.Over():
		return nil
	case s.state == NotStarted:
		return s.FirstAction(p, kind)
	}
	return s.apply(kind, p)
}

// FirstAction handles an action on a game that has not started yet. A
// reveal lays out the mines around p, starts the game and then exposes p.
// Flags may be placed before that and only move the mine counter; a chord
// has nothing to act on. On a started game the action is applied as is.
func (s *Session) FirstAction(p Point, kind Action) error {
	if err := s.grid.check(p); err != nil {
		return err
	}
	if s.state != NotStarted {
		return s.Do(kind, p)
	}

	switch kind {
	case ActionReveal:
		if s.grid.at(p).Flagged {
			return nil
		}
		if err := s.generate(p); err != nil {
			return fmt.Errorf("unable to generate board: %w", err)
		}
		s.start()
	case ActionFlag:
	case ActionChord:
		return nil
	default:
		return fmt.Errorf("%w: unknown action %s", ErrInvalidParams, kind)
	}

	return s.apply(kind, p)
}

func (s *Session) generate(p Point) error {
	if s.layout != nil {
		return PlaceMines(s.grid, s.layout...)
	}
	zone := SafeZone(s.grid, p, s.params.Mode)
	return Generate(s.grid, s.params.MineCount, zone, s.rnd)
}

func (s *Session) apply(kind Action, p Point) error {
	var (
		out Outcome
		err error
	)
	switch kind {
	case ActionFlag:
		_, err = s.field.ToggleFlag(p)
		return err
	case ActionReveal:
		out, err = s.field.Reveal(p)
	case ActionChord:
		out, err = s.field.ChordReveal(p)
	default:
		return fmt.Errorf("%w: unknown action %s", ErrInvalidParams, kind)
	}
	if err != nil {
		return err
	}

	switch {
	case out.Exploded:
		s.end(false)
	case out.Cleared:
		s.end(true)
	}
	return nil
}

func (s *Session) start() {
	s.state = Active
	Log.Debug("game started", "seed", s.params.Seed())
	for _, l := range s.listeners {
		l.GameStarted()
	}
}

// end moves an unfinished game into its terminal state and notifies the
// listeners. Later calls do nothing.
func (s *Session) end(won bool) {
	if s.state.Over() {
		return
	}
	if won {
		s.state = Won
	} else {
		s.state = Lost
	}
	Log.Debug("game ended",
		"state", s.state, "exposed", s.field.Exposed(), "flags", s.field.Flags(),
	)
	for _, l := range s.listeners {
		l.GameEnded(won)
	}
}

// Forfeit ends a running game as lost. Games that have not started or are
// already over are left alone.
func (s *Session) Forfeit() {
	if s.state != Active {
		return
	}
	s.end(false)
}

// Reset brings the session back to a fresh, unstarted game with the same
// params: every cell hidden, unflagged and mine-free, counters at zero.
func (s *Session) Reset() {
	s.grid.Clear()
	s.field = NewField(s.grid, s.params.MineCount)
	s.state = NotStarted
	Log.Debug("game reset", "seed", s.params.Seed())
}
