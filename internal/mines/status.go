package mines

import (
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown          CellStatus = -2
	Flagged          CellStatus = -1
	CorrectlyFlagged CellStatus = 64
	ExplodedMine     CellStatus = 65
	FalselyFlagged   CellStatus = 66
	UnflaggedMine    CellStatus = 67
	/*
	 * 0 to 8 mean the cell is exposed and hold its mined neighbour count.
	 *
	 * The values from 64 up only show once the game is lost: 64 is a
	 * flag on a mine, 65 the mine that went off, 66 a flag on a safe cell
	 * and 67 a mine nobody flagged.
	 */
)

func (s CellStatus) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged || s == CorrectlyFlagged:
		return "F"
	case s == 0:
		return "."
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	case s == ExplodedMine:
		return "X"
	case s == FalselyFlagged:
		return "x"
	case s == UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

// statusOf is what the player gets to see of c in the given game state.
func statusOf(c *Cell, state State) CellStatus {
	switch {
	case c.Exposed && c.Mine:
		return ExplodedMine
	case c.Exposed:
		return CellStatus(c.Adjacent)
	case state == Lost && c.Flagged && c.Mine:
		return CorrectlyFlagged
	case state == Lost && c.Flagged:
		return FalselyFlagged
	case state == Lost && c.Mine:
		return UnflaggedMine
	case state == Won && c.Mine:
		return Flagged
	case c.Flagged:
		return Flagged
	default:
		return Unknown
	}
}

// Board is a row-major snapshot of cell statuses.
type Board []CellStatus

// Row draws the given row as space-separated glyphs.
func (b Board) Row(cols, row int) string {
	var sb strings.Builder
	for col, s := range b[row*cols : (row+1)*cols] {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (b Board) ToString(cols int) string {
	var sb strings.Builder
	for row := range len(b) / cols {
		sb.WriteString(b.Row(cols, row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellView is the part of a cell the UI layer may look at. Mine is only
// reported once the cell is exposed or the game is lost, Adjacent only
// once the cell is exposed.
type CellView struct {
	Point
	Exposed  bool
	Flagged  bool
	Mine     bool
	Adjacent int
	Status   CellStatus
}

func viewOf(c *Cell, state State) CellView {
	v := CellView{
		Point:   c.Point,
		Exposed: c.Exposed,
		Flagged: c.Flagged,
		Status:  statusOf(c, state),
	}
	if c.Exposed || state == Lost {
		v.Mine = c.Mine
	}
	if c.Exposed && !c.Mine {
		v.Adjacent = c.Adjacent
	}
	return v
}
