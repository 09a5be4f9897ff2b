package mines

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Mode selects the safe zone kept free of mines around the first click.
type Mode int

const (
	// ModeStandard only guarantees the clicked cell itself.
	ModeStandard Mode = iota
	// ModeGuaranteedOpen keeps the whole 3x3 block around the click free,
	// so the first reveal always opens a region.
	ModeGuaranteedOpen
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeGuaranteedOpen:
		return "open"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m Mode) Valid() bool {
	return m == ModeStandard || m == ModeGuaranteedOpen
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "standard":
		return ModeStandard, nil
	case "1", "open", "guaranteed-open":
		return ModeGuaranteedOpen, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, s)
}

type GameParams struct {
	Rows, Cols, MineCount int
	Mode                  Mode
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

func (p GameParams) Contains(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Rows && 0 <= pt.Col && pt.Col < p.Cols
}

// Validate rejects boards that cannot be played. At least one cell must
// stay free for the first click; whether a full 3x3 safe zone fits is only
// known once the click position is.
func (p GameParams) Validate() error {
	switch {
	case p.Rows <= 0 || p.Cols <= 0:
		return fmt.Errorf(
			"%w: cannot create a board with %d rows and %d cols",
			ErrInvalidParams, p.Rows, p.Cols,
		)
	case p.MineCount < 0:
		return fmt.Errorf(
			"%w: negative amount of mines: %d", ErrInvalidParams, p.MineCount,
		)
	case !p.Mode.Valid():
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidParams, int(p.Mode))
	case p.MineCount >= p.Size():
		return fmt.Errorf(
			"%w: %d mines on a %dx%d board (%d >= %d)",
			ErrInsufficientSpace, p.MineCount, p.Rows, p.Cols,
			p.MineCount, p.Size(),
		)
	}
	return nil
}

// Seed is the compact rows:cols:mines:mode form of p.
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d:%d", p.Rows, p.Cols, p.MineCount, int(p.Mode))
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	mode := 0
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d", &p.Rows, &p.Cols, &p.MineCount, &mode,
	)
	if n != 4 || err != nil {
		return nil, fmt.Errorf(
			`%w: invalid game params seed (seed = "%s", n = %d, err = %v)`,
			ErrInvalidParams, seed, n, err,
		)
	}
	p.Mode = Mode(mode)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

var presets = map[string]GameParams{
	"beginner":     {Rows: 9, Cols: 9, MineCount: 10},
	"intermediate": {Rows: 16, Cols: 16, MineCount: 40},
	"expert":       {Rows: 16, Cols: 30, MineCount: 99},
	"classic":      {Rows: 16, Cols: 16, MineCount: 50},
}

func Preset(name string) (GameParams, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}
