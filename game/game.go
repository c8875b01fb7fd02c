// Package game encapsulates the rules of a dominoes-style tile placement
// game. Two players, Vertical and Horizontal, alternate laying 1x2 tiles
// in their own orientation on a shared grid. The game ends when the
// player on turn has no legal placement or has run out of tiles; the
// stuck player loses.
//
// The same Game is mutated in place during search: PlayMove and
// UnplayLastMove must be called symmetrically so that sibling branches
// of a search tree always observe the pre-move state.
package game

import (
	"errors"
	"fmt"

	"github.com/mlopes/searchlab/board"
	"github.com/mlopes/searchlab/move"
)

// PlayState indicates whether the game is still going on.
type PlayState uint8

const (
	StatePlaying PlayState = iota
	StateGameOver
)

func (p PlayState) String() string {
	if p == StatePlaying {
		return "playing"
	}
	return "game over"
}

// Outcome is the result of a finished game from one player's
// perspective.
type Outcome int8

const (
	OutcomeLoss Outcome = iota - 1
	OutcomeDraw
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	}
	return "draw"
}

var (
	ErrNotOnTurn        = errors.New("move is not for the player on turn")
	ErrNoTilesRemaining = errors.New("player has no tiles remaining")
	ErrIllegalPlacement = errors.New("placement is out of bounds or overlaps a tile")
	ErrGameStarted      = errors.New("game has already started")
)

// Game is the full state of a single game: the grid, whose turn it is,
// and how many tiles each side still has. It also keeps the history of
// played moves so that they can be unplayed in reverse order.
type Game struct {
	grid      *board.Grid
	onturn    move.Orientation
	tilesLeft [2]int
	supply    [2]int
	history   []*move.Move
}

// NewGame creates a game on an empty rows x cols grid with Vertical to
// move. Each side starts with enough tiles to cover half the grid, so
// the supply never binds unless lowered with SetTileSupply.
func NewGame(rows, cols int) *Game {
	perSide := (rows * cols) / 2
	g := &Game{
		grid:   board.NewGrid(rows, cols),
		onturn: move.Vertical,
	}
	g.tilesLeft = [2]int{perSide, perSide}
	g.supply = [2]int{perSide, perSide}
	return g
}

// SetTileSupply changes the per-side tile supply. It may only be called
// before any move has been played.
func (g *Game) SetTileSupply(n int) error {
	if len(g.history) > 0 {
		return ErrGameStarted
	}
	g.tilesLeft = [2]int{n, n}
	g.supply = [2]int{n, n}
	return nil
}

// SetPlayerOnTurn sets which side moves next. It may only be called
// before any move has been played.
func (g *Game) SetPlayerOnTurn(o move.Orientation) error {
	if len(g.history) > 0 {
		return ErrGameStarted
	}
	g.onturn = o
	return nil
}

func (g *Game) Board() *board.Grid {
	return g.grid
}

func (g *Game) PlayerOnTurn() move.Orientation {
	return g.onturn
}

func (g *Game) TilesRemaining(o move.Orientation) int {
	return g.tilesLeft[o]
}

// TilesPlaced returns how many tiles the given side has laid so far.
func (g *Game) TilesPlaced(o move.Orientation) int {
	return g.supply[o] - g.tilesLeft[o]
}

func (g *Game) History() []*move.Move {
	return g.history
}

// IsLegalPlacement checks placement geometry only: both halves of the
// tile must lie on the grid and on empty squares. It does not look at
// whose turn it is or at the tile supply.
func (g *Game) IsLegalPlacement(row, col int, orient move.Orientation) bool {
	r2, c2 := row, col+1
	if orient == move.Vertical {
		r2, c2 = row+1, col
	}
	if !g.grid.InBounds(row, col) || !g.grid.InBounds(r2, c2) {
		return false
	}
	return !g.grid.Occupied(row, col) && !g.grid.Occupied(r2, c2)
}

// HasPlacement returns whether the given side has at least one legal
// placement somewhere on the grid.
func (g *Game) HasPlacement(o move.Orientation) bool {
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			if g.IsLegalPlacement(r, c, o) {
				return true
			}
		}
	}
	return false
}

// MobilityFor counts the legal placements available to the given side,
// regardless of whose turn it is.
func (g *Game) MobilityFor(o move.Orientation) int {
	n := 0
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			if g.IsLegalPlacement(r, c, o) {
				n++
			}
		}
	}
	return n
}

// Playing returns StatePlaying while the player on turn can still move:
// they have tiles left and somewhere legal to put one.
func (g *Game) Playing() PlayState {
	if g.tilesLeft[g.onturn] == 0 {
		return StateGameOver
	}
	if !g.HasPlacement(g.onturn) {
		return StateGameOver
	}
	return StatePlaying
}

// PlayMove plays a move for the player on turn, occupying both squares
// of the tile and passing the turn.
func (g *Game) PlayMove(m *move.Move) error {
	if m.Orientation() != g.onturn {
		return ErrNotOnTurn
	}
	if g.tilesLeft[g.onturn] == 0 {
		return ErrNoTilesRemaining
	}
	if !g.IsLegalPlacement(m.Row(), m.Col(), m.Orientation()) {
		return fmt.Errorf("%w: %v", ErrIllegalPlacement, m.ShortDescription())
	}
	r2, c2 := m.SecondSquare()
	g.grid.SetOccupied(m.Row(), m.Col(), true)
	g.grid.SetOccupied(r2, c2, true)
	g.tilesLeft[g.onturn]--
	g.history = append(g.history, m)
	g.onturn = g.onturn.Other()
	return nil
}

// UnplayLastMove exactly reverses the last move played: it frees both
// squares, returns the tile to its owner's supply and hands the turn
// back. It is a no-op on a fresh game.
func (g *Game) UnplayLastMove() {
	if len(g.history) == 0 {
		return
	}
	m := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	r2, c2 := m.SecondSquare()
	g.grid.SetOccupied(m.Row(), m.Col(), false)
	g.grid.SetOccupied(r2, c2, false)
	g.tilesLeft[m.Orientation()]++
	g.onturn = m.Orientation()
}

// Outcome reports the result of a finished game from the perspective of
// the given side. It is only meaningful once Playing() returns
// StateGameOver: a player stuck with tiles in hand has lost; if the
// player on turn simply ran out of tiles, the side that placed more
// tiles wins, and an equal count is a draw.
func (g *Game) Outcome(o move.Orientation) Outcome {
	mover := g.onturn
	if g.tilesLeft[mover] > 0 {
		// Stuck, not exhausted: the mover loses.
		if o == mover {
			return OutcomeLoss
		}
		return OutcomeWin
	}
	placed := g.TilesPlaced(o)
	otherPlaced := g.TilesPlaced(o.Other())
	switch {
	case placed > otherPlaced:
		return OutcomeWin
	case placed < otherPlaced:
		return OutcomeLoss
	}
	return OutcomeDraw
}

// Copy returns a deep copy of the game.
func (g *Game) Copy() *Game {
	c := &Game{
		grid:      g.grid.Copy(),
		onturn:    g.onturn,
		tilesLeft: g.tilesLeft,
		supply:    g.supply,
	}
	c.history = make([]*move.Move, len(g.history))
	for i, m := range g.history {
		mc := &move.Move{}
		mc.CopyFrom(m)
		c.history[i] = mc
	}
	return c
}

// String renders the game for debugging and demo output.
func (g *Game) String() string {
	return fmt.Sprintf("%von turn: %v (tiles v: %d h: %d)",
		g.grid, g.onturn,
		g.tilesLeft[move.Vertical], g.tilesLeft[move.Horizontal])
}
