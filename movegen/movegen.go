// Package movegen contains the move-generating functions for the tile
// placement game.
package movegen

import (
	"github.com/mlopes/searchlab/game"
	"github.com/mlopes/searchlab/move"
)

// MoveGenerator generates the legal moves for the player on turn.
type MoveGenerator interface {
	GenAll(g *game.Game) []*move.Move
}

// PlacementGenerator scans the grid in row-major order and yields every
// legal placement for the player on turn. The order is part of the
// contract: identical game states always produce identical move
// sequences, and search results tie-break on the first move generated.
type PlacementGenerator struct{}

func NewPlacementGenerator() *PlacementGenerator {
	return &PlacementGenerator{}
}

// GenAll returns the legal moves for the player on turn, anchor squares
// in row-major order. It returns an empty slice, never an error, when
// the player is stuck or out of tiles; that is what ends the game.
func (gen *PlacementGenerator) GenAll(g *game.Game) []*move.Move {
	onturn := g.PlayerOnTurn()
	if g.TilesRemaining(onturn) == 0 {
		return nil
	}
	var moves []*move.Move
	b := g.Board()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if g.IsLegalPlacement(r, c, onturn) {
				moves = append(moves, move.NewPlacement(r, c, onturn))
			}
		}
	}
	return moves
}
