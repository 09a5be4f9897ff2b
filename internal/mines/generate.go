package mines

import (
	"fmt"
	"math/rand/v2"
)

// SafeZone returns the points around the first click p that must stay free
// of mines in the given mode.
func SafeZone(g *Grid, p Point, mode Mode) PointSet {
	zone := NewPointSet()
	if mode == ModeGuaranteedOpen {
		for q := range g.Block(p, 1) {
			zone.Add(q)
		}
		return zone
	}
	if g.Contains(p) {
		zone.Add(p)
	}
	return zone
}

// Generate lays out mineCount mines on g and fills in the adjacency counts.
// Mines are placed by rejection sampling: random points are drawn until
// enough distinct ones outside excluded have been hit. That is slow only
// when the board is nearly full, which the space check keeps finite.
// Flags already on the grid are left alone.
func Generate(g *Grid, mineCount int, excluded PointSet, r *rand.Rand) error {
	if mineCount < 0 {
		return fmt.Errorf(
			"%w: negative amount of mines: %d", ErrInvalidParams, mineCount,
		)
	}

	free := g.Size()
	for p := range excluded {
		if g.Contains(p) {
			free--
		}
	}
	if mineCount > free {
		return fmt.Errorf(
			"%w: %d mines, %d free cells on a %dx%d grid",
			ErrInsufficientSpace, mineCount, free, g.rows, g.cols,
		)
	}

	g.clearLayout()

	placed, draws := 0, 0
	for placed < mineCount {
		draws++
		p := Point{r.IntN(g.rows), r.IntN(g.cols)}
		if excluded.Has(p) {
			continue
		}
		c := g.at(p)
		if c.Mine {
			continue
		}
		c.Mine = true
		placed++
	}

	g.allocateCounts()

	Log.Debug("generated board",
		"rows", g.rows, "cols", g.cols,
		"mines", mineCount, "excluded", excluded.Len(), "draws", draws,
	)
	return nil
}

// PlaceMines lays out mines at exactly the given points, bypassing random
// placement. Repeated points count once.
func PlaceMines(g *Grid, mines ...Point) error {
	for _, p := range mines {
		if err := g.check(p); err != nil {
			return err
		}
	}
	g.clearLayout()
	for _, p := range mines {
		g.at(p).Mine = true
	}
	g.allocateCounts()
	return nil
}

func (g *Grid) clearLayout() {
	for i := range g.cells {
		g.cells[i].Mine = false
		g.cells[i].Adjacent = 0
	}
}

func isMine(c *Cell) bool { return c.Mine }

func (g *Grid) allocateCounts() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Mine {
			continue
		}
		c.Adjacent = g.countAround(c.Point, isMine)
	}
}
