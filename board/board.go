// Package board implements the rectangular occupancy grids that the tile
// placement game and the grid pathfinder operate on. A square is either
// empty or occupied; the board does not care whether an occupation came
// from a domino half or an obstacle.
package board

import "strings"

// Characters used by FromPattern and String.
const (
	EmptySquareRune    = '.'
	OccupiedSquareRune = '#'
)

// Grid is a rectangular grid of squares.
type Grid struct {
	rows    int
	cols    int
	squares []bool
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:    rows,
		cols:    cols,
		squares: make([]bool, rows*cols),
	}
}

// FromPattern creates a grid from a textual description, one string per
// row; '#' marks an occupied square, anything else is empty. All rows
// must have the same length.
func FromPattern(pattern []string) *Grid {
	rows := len(pattern)
	cols := 0
	if rows > 0 {
		cols = len(pattern[0])
	}
	g := NewGrid(rows, cols)
	for r, rowStr := range pattern {
		for c, ch := range rowStr {
			if ch == OccupiedSquareRune {
				g.SetOccupied(r, c, true)
			}
		}
	}
	return g
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

// InBounds returns whether the given coordinate lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Occupied returns whether the given square holds a tile or obstacle.
// The coordinate must be in bounds.
func (g *Grid) Occupied(row, col int) bool {
	return g.squares[row*g.cols+col]
}

func (g *Grid) SetOccupied(row, col int, occupied bool) {
	g.squares[row*g.cols+col] = occupied
}

// OccupiedCount returns the number of occupied squares.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, sq := range g.squares {
		if sq {
			n++
		}
	}
	return n
}

// Copy returns a deep copy of this grid.
func (g *Grid) Copy() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.squares, g.squares)
	return c
}

// CopyFrom copies the squares of another grid of the same dimensions
// into this one, without allocating.
func (g *Grid) CopyFrom(o *Grid) {
	copy(g.squares, o.squares)
}

// Equals compares two grids square by square.
func (g *Grid) Equals(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.squares {
		if g.squares[i] != o.squares[i] {
			return false
		}
	}
	return true
}

// String renders the grid row by row, for debugging and demo output.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Occupied(r, c) {
				sb.WriteRune(OccupiedSquareRune)
			} else {
				sb.WriteRune(EmptySquareRune)
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
