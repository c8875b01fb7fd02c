package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestFromPattern(t *testing.T) {
	is := is.New(t)
	g := FromPattern([]string{
		"...",
		".##",
		"...",
	})
	is.Equal(g.Rows(), 3)
	is.Equal(g.Cols(), 3)
	is.True(g.Occupied(1, 1))
	is.True(g.Occupied(1, 2))
	is.True(!g.Occupied(0, 0))
	is.Equal(g.OccupiedCount(), 2)
}

func TestStringRoundTrip(t *testing.T) {
	is := is.New(t)
	pattern := []string{
		"#..",
		".#.",
		"..#",
	}
	g := FromPattern(pattern)
	is.Equal(g.String(), "#..\n.#.\n..#\n")
}

func TestInBounds(t *testing.T) {
	is := is.New(t)
	g := NewGrid(2, 3)
	type tc struct {
		row, col int
		in       bool
	}
	cases := []tc{
		{0, 0, true},
		{1, 2, true},
		{2, 0, false},
		{0, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		is.Equal(g.InBounds(c.row, c.col), c.in)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g := NewGrid(2, 2)
	g.SetOccupied(0, 0, true)
	c := g.Copy()
	is.True(c.Equals(g))
	c.SetOccupied(1, 1, true)
	is.True(!g.Occupied(1, 1))
	is.True(!c.Equals(g))

	g.CopyFrom(c)
	is.True(c.Equals(g))
}
