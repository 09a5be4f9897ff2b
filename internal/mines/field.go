package mines

// Outcome describes what a single reveal or chord did to the field.
type Outcome struct {
	Exposed  []Point // newly exposed cells, in exposure order
	Exploded bool
	Cleared  bool // every safe cell is exposed
}

// Field applies player moves to a grid whose mines are already laid out and
// keeps the flag and exposure counters in step with it.
type Field struct {
	grid    *Grid
	mines   int
	flags   int
	exposed int
	blown   int // exposed mines
	todo    []Point
}

func NewField(g *Grid, mines int) *Field {
	return &Field{grid: g, mines: mines}
}

func (f *Field) Flags() int   { return f.flags }
func (f *Field) Exposed() int { return f.exposed }

// RemainingMines is the counter shown to the player. It goes negative when
// more flags than mines are placed.
func (f *Field) RemainingMines() int {
	return f.mines - f.flags
}

// Cleared reports whether every safe cell is exposed. Exposed mines do not
// count towards it.
func (f *Field) Cleared() bool {
	return f.exposed-f.blown == f.grid.Size()-f.mines
}

// ToggleFlag flips the flag on a hidden cell and reports whether anything
// changed. Exposed cells keep their flag state.
func (f *Field) ToggleFlag(p Point) (bool, error) {
	if err := f.grid.check(p); err != nil {
		return false, err
	}
	c := f.grid.at(p)
	if c.Exposed {
		return false, nil
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		f.flags++
	} else {
		f.flags--
	}
	return true, nil
}

// Reveal exposes the cell at p. Flagged and exposed cells are left as they
// are. A zero cell floods outwards through every connected zero cell,
// exposing the numbered cells on the border without going past them.
func (f *Field) Reveal(p Point) (Outcome, error) {
	var out Outcome
	if err := f.grid.check(p); err != nil {
		return out, err
	}
	f.reveal(p, &out)
	return out, nil
}

func (f *Field) reveal(p Point, out *Outcome) {
	c := f.grid.at(p)
	if c.Exposed || c.Flagged {
		return
	}
	f.expose(c, out)
	if c.Mine {
		f.blown++
		out.Exploded = true
		return
	}

	if c.Adjacent == 0 {
		// Cells are exposed as they are pushed, so none is pushed twice.
		todo := append(f.todo[:0], p)
		for len(todo) > 0 {
			q := todo[len(todo)-1]
			todo = todo[:len(todo)-1]
			for n := range f.grid.Neighbors(q) {
				nc := f.grid.at(n)
				if nc.Exposed || nc.Flagged {
					continue
				}
				f.expose(nc, out)
				if nc.Adjacent == 0 {
					todo = append(todo, n)
				}
			}
		}
		f.todo = todo[:0]
	}

	out.Cleared = f.Cleared()
}

func (f *Field) expose(c *Cell, out *Outcome) {
	c.Exposed = true
	f.exposed++
	out.Exposed = append(out.Exposed, c.Point)
}

// ChordReveal reveals every hidden, unflagged neighbour of an exposed number
// cell once exactly as many neighbours are flagged as the number says.
// Anything else is a no-op. Every such neighbour is revealed even when
// some of them turn out to be mines.
func (f *Field) ChordReveal(p Point) (Outcome, error) {
	var out Outcome
	if err := f.grid.check(p); err != nil {
		return out, err
	}
	c := f.grid.at(p)
	if !c.Exposed || c.Mine || c.Adjacent == 0 {
		return out, nil
	}
	if f.grid.countAround(p, isFlagged) != c.Adjacent {
		return out, nil
	}
	for n := range f.grid.Neighbors(p) {
		f.reveal(n, &out)
	}
	out.Cleared = !out.Exploded && f.Cleared()
	return out, nil
}

func isFlagged(c *Cell) bool { return c.Flagged }
