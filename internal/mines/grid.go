package mines

import (
	"fmt"
	"iter"
	"strings"
)

// Point is a 0-indexed (row, col) pair with the origin at the top left.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

type Cell struct {
	Point
	Adjacent int // mined neighbours; meaningless when Mine is set
	Mine     bool
	Flagged  bool
	Exposed  bool
}

// Grid is a fixed rows x cols matrix of cells stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf(
			"%w: cannot create a grid with %d rows and %d cols",
			ErrInvalidParams, rows, cols,
		)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.Clear()
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Size() int { return g.rows * g.cols }

// Clear puts every cell back into its default state: no mine, zero count,
// hidden and unflagged.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Point: Point{Row: i / g.cols, Col: i % g.cols}}
	}
}

func (g *Grid) Contains(p Point) bool {
	return 0 <= p.Row && p.Row < g.rows && 0 <= p.Col && p.Col < g.cols
}

func (g *Grid) check(p Point) error {
	if !g.Contains(p) {
		return &OutOfBoundsError{Point: p, Rows: g.rows, Cols: g.cols}
	}
	return nil
}

// at assumes p has already been checked.
func (g *Grid) at(p Point) *Cell {
	return &g.cells[p.Row*g.cols+p.Col]
}

func (g *Grid) Get(p Point) (Cell, error) {
	if err := g.check(p); err != nil {
		return Cell{}, err
	}
	return *g.at(p), nil
}

// Set stores c at p. The stored cell always keeps p as its position.
func (g *Grid) Set(p Point, c Cell) error {
	if err := g.check(p); err != nil {
		return err
	}
	c.Point = p
	*g.at(p) = c
	return nil
}

// Points yields every point of the grid in row-major order.
func (g *Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for row := range g.rows {
			for col := range g.cols {
				if !yield(Point{row, col}) {
					return
				}
			}
		}
	}
}

// Neighbors yields the in-bounds Moore neighbourhood of p: up to 8 points,
// fewer along edges and in corners. p itself is never yielded.
func (g *Grid) Neighbors(p Point) iter.Seq[Point] {
	return g.square(p, 1, false)
}

// Block yields the in-bounds square of the given radius centred on p,
// p included.
func (g *Grid) Block(p Point, radius int) iter.Seq[Point] {
	return g.square(p, radius, true)
}

func (g *Grid) square(p Point, radius int, self bool) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		top, bottom := max(p.Row-radius, 0), min(p.Row+radius, g.rows-1)
		left, right := max(p.Col-radius, 0), min(p.Col+radius, g.cols-1)
		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				if !self && row == p.Row && col == p.Col {
					continue
				}
				if !yield(Point{row, col}) {
					return
				}
			}
		}
	}
}

func (g *Grid) countAround(p Point, pred func(*Cell) bool) (n int) {
	for q := range g.Neighbors(p) {
		if pred(g.at(q)) {
			n++
		}
	}
	return
}

// String draws the mine layout: '*' for a mine, the adjacency count
// otherwise.
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.rows {
		for col := range g.cols {
			c := g.at(Point{row, col})
			if c.Mine {
				b.WriteString("* ")
			} else {
				fmt.Fprintf(&b, "%d ", c.Adjacent)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
