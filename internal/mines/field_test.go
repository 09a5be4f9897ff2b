package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestField(t *testing.T, rows, cols int, mines ...Point) *Field {
	t.Helper()
	g, err := NewGrid(rows, cols)
	require.NoError(t, err)
	require.NoError(t, PlaceMines(g, mines...))
	return NewField(g, NewPointSet(mines...).Len())
}

func exposedSet(f *Field) PointSet {
	s := NewPointSet()
	for p := range f.grid.Points() {
		if f.grid.at(p).Exposed {
			s.Add(p)
		}
	}
	return s
}

func TestRevealFloodsWholeBoard(t *testing.T) {
	f := newTestField(t, 5, 5, Point{4, 4})

	out, err := f.Reveal(Point{0, 0})
	require.NoError(t, err)

	assert.False(t, out.Exploded)
	assert.True(t, out.Cleared)
	assert.Len(t, out.Exposed, 24)
	assert.Equal(t, 24, f.Exposed())
	assert.Len(t, NewPointSet(out.Exposed...), 24, "a cell was exposed twice")
	assert.False(t, f.grid.at(Point{4, 4}).Exposed)
}

func TestRevealStopsAtNumbers(t *testing.T) {
	// a wall of mines down the middle column
	wall := []Point{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}
	f := newTestField(t, 5, 5, wall...)

	out, err := f.Reveal(Point{2, 0})
	require.NoError(t, err)

	want := NewPointSet()
	for row := range 5 {
		want.Add(Point{row, 0})
		want.Add(Point{row, 1})
	}
	assert.Equal(t, want, exposedSet(f))
	assert.Equal(t, 10, f.Exposed())
	assert.False(t, out.Cleared)
	assert.False(t, out.Exploded)
}

func TestRevealNumberDoesNotFlood(t *testing.T) {
	f := newTestField(t, 3, 3, Point{0, 0})

	out, err := f.Reveal(Point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 1}}, out.Exposed)
	assert.Equal(t, 1, f.Exposed())
}

func TestRevealSkipsFlags(t *testing.T) {
	f := newTestField(t, 5, 5, Point{4, 4})

	changed, err := f.ToggleFlag(Point{2, 2})
	require.NoError(t, err)
	require.True(t, changed)

	out, err := f.Reveal(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 23, f.Exposed())
	assert.False(t, f.grid.at(Point{2, 2}).Exposed)
	assert.False(t, out.Cleared)

	// a flagged cell is not revealed directly either
	out, err = f.Reveal(Point{2, 2})
	require.NoError(t, err)
	assert.Empty(t, out.Exposed)
	assert.Equal(t, 23, f.Exposed())
}

func TestRevealIdempotent(t *testing.T) {
	f := newTestField(t, 4, 4, Point{0, 0}, Point{3, 3})

	_, err := f.Reveal(Point{0, 3})
	require.NoError(t, err)
	before := f.Exposed()

	out, err := f.Reveal(Point{0, 3})
	require.NoError(t, err)
	assert.Empty(t, out.Exposed)
	assert.Equal(t, before, f.Exposed())
}

func TestRevealMine(t *testing.T) {
	f := newTestField(t, 4, 4, Point{0, 0})

	out, err := f.Reveal(Point{0, 0})
	require.NoError(t, err)
	assert.True(t, out.Exploded)
	assert.False(t, out.Cleared)
	assert.Equal(t, 1, f.Exposed())
}

func TestRevealOutOfBounds(t *testing.T) {
	f := newTestField(t, 4, 4)

	_, err := f.Reveal(Point{4, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = f.ToggleFlag(Point{0, -1})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = f.ChordReveal(Point{-1, -1})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestToggleFlag(t *testing.T) {
	f := newTestField(t, 3, 3, Point{0, 0})
	p := Point{2, 2}
	remaining := f.RemainingMines()

	changed, err := f.ToggleFlag(p)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, f.grid.at(p).Flagged)
	assert.Equal(t, remaining-1, f.RemainingMines())

	changed, err = f.ToggleFlag(p)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, f.grid.at(p).Flagged)
	assert.Equal(t, remaining, f.RemainingMines())

	_, err = f.Reveal(Point{1, 1})
	require.NoError(t, err)
	changed, err = f.ToggleFlag(Point{1, 1})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, f.grid.at(Point{1, 1}).Flagged)
	assert.Equal(t, 0, f.Flags())
}

func TestRemainingMinesGoesNegative(t *testing.T) {
	f := newTestField(t, 3, 3, Point{0, 0})

	for _, p := range []Point{{0, 1}, {0, 2}, {1, 0}} {
		_, err := f.ToggleFlag(p)
		require.NoError(t, err)
	}
	assert.Equal(t, -2, f.RemainingMines())
}

func TestChordReveal(t *testing.T) {
	center := Point{1, 1}

	t.Run("needs matching flags", func(t *testing.T) {
		f := newTestField(t, 3, 3, Point{0, 0}, Point{0, 2})
		_, err := f.Reveal(center)
		require.NoError(t, err)
		require.Equal(t, 2, f.grid.at(center).Adjacent)

		_, err = f.ToggleFlag(Point{0, 0})
		require.NoError(t, err)

		out, err := f.ChordReveal(center)
		require.NoError(t, err)
		assert.Empty(t, out.Exposed)
		assert.Equal(t, 1, f.Exposed())

		_, err = f.ToggleFlag(Point{0, 2})
		require.NoError(t, err)

		out, err = f.ChordReveal(center)
		require.NoError(t, err)
		assert.Len(t, out.Exposed, 6)
		assert.False(t, out.Exploded)
		assert.True(t, out.Cleared)
		assert.Equal(t, 7, f.Exposed())
	})

	t.Run("wrong flags explode", func(t *testing.T) {
		f := newTestField(t, 3, 3, Point{0, 0}, Point{0, 1})
		_, err := f.Reveal(center)
		require.NoError(t, err)
		for _, p := range []Point{{2, 0}, {2, 1}} {
			_, err = f.ToggleFlag(p)
			require.NoError(t, err)
		}

		out, err := f.ChordReveal(center)
		require.NoError(t, err)
		assert.True(t, out.Exploded)
		assert.False(t, out.Cleared)
		assert.Len(t, out.Exposed, 6)
		for _, p := range []Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 2}} {
			assert.True(t, f.grid.at(p).Exposed, "%s", p)
		}
		assert.False(t, f.grid.at(Point{2, 0}).Exposed)

		// 7 cells exposed on a board with 7 safe ones, but two are mines
		assert.Equal(t, 7, f.Exposed())
		assert.False(t, f.Cleared())
	})

	t.Run("hidden and zero cells", func(t *testing.T) {
		f := newTestField(t, 4, 4, Point{0, 0})

		out, err := f.ChordReveal(Point{1, 1})
		require.NoError(t, err)
		assert.Empty(t, out.Exposed)

		_, err = f.Reveal(Point{3, 3})
		require.NoError(t, err)
		before := f.Exposed()
		out, err = f.ChordReveal(Point{3, 3})
		require.NoError(t, err)
		assert.Empty(t, out.Exposed)
		assert.Equal(t, before, f.Exposed())
	})

	t.Run("chord floods zero neighbours", func(t *testing.T) {
		f := newTestField(t, 5, 5, Point{0, 0})
		_, err := f.Reveal(Point{1, 1})
		require.NoError(t, err)
		_, err = f.ToggleFlag(Point{0, 0})
		require.NoError(t, err)

		out, err := f.ChordReveal(Point{1, 1})
		require.NoError(t, err)
		assert.True(t, out.Cleared)
		assert.Equal(t, 24, f.Exposed())
	})
}
