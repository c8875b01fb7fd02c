// Package move describes a single placement of a 1x2 tile on the board.
package move

import "fmt"

// Orientation is the direction a tile is laid in. It doubles as the
// player identity: each player only ever places tiles in their own
// orientation.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Other returns the opposing orientation.
func (o Orientation) Other() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Move is the placement of a single tile. The anchor square is the
// top-left half of the tile; the second half extends one square down
// (vertical) or one square right (horizontal). A move is generated for
// exactly one game state and is only legal for that state's player on
// turn. Applying a move and then undoing it restores the prior state.
type Move struct {
	row    int
	col    int
	orient Orientation
}

// NewPlacement creates a placement move anchored at the given square.
func NewPlacement(row, col int, orient Orientation) *Move {
	return &Move{row: row, col: col, orient: orient}
}

func (m *Move) Row() int {
	return m.row
}

func (m *Move) Col() int {
	return m.col
}

func (m *Move) Orientation() Orientation {
	return m.orient
}

// SecondSquare returns the coordinate of the other half of the tile.
func (m *Move) SecondSquare() (int, int) {
	if m.orient == Vertical {
		return m.row + 1, m.col
	}
	return m.row, m.col + 1
}

// CoordsString returns the anchor in crossword-style coordinates:
// column letter before row number for vertical placements (e.g. "B2"),
// row number before column letter for horizontal ones (e.g. "2B").
// Rows are numbered from 1.
func (m *Move) CoordsString() string {
	if m.orient == Vertical {
		return fmt.Sprintf("%c%d", 'A'+rune(m.col), m.row+1)
	}
	return fmt.Sprintf("%d%c", m.row+1, 'A'+rune(m.col))
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%v (%v)", m.CoordsString(), m.orient)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p placement: %v row: %v col: %v>",
		m, m.orient, m.row, m.col)
}

// Equals compares placements by value.
func (m *Move) Equals(o *Move) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.row == o.row && m.col == o.col && m.orient == o.orient
}

func (m *Move) CopyFrom(o *Move) {
	m.row = o.row
	m.col = o.col
	m.orient = o.orient
}
