package game

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlopes/searchlab/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestPlayMove(t *testing.T) {
	g := NewGame(3, 3)
	err := g.PlayMove(move.NewPlacement(0, 0, move.Vertical))
	require.NoError(t, err)
	assert.True(t, g.Board().Occupied(0, 0))
	assert.True(t, g.Board().Occupied(1, 0))
	assert.Equal(t, move.Horizontal, g.PlayerOnTurn())
	assert.Equal(t, 1, g.TilesPlaced(move.Vertical))
}

func TestPlayMoveErrors(t *testing.T) {
	g := NewGame(3, 3)
	// Horizontal is not on turn.
	err := g.PlayMove(move.NewPlacement(0, 0, move.Horizontal))
	assert.ErrorIs(t, err, ErrNotOnTurn)
	// Out of bounds.
	err = g.PlayMove(move.NewPlacement(2, 0, move.Vertical))
	assert.ErrorIs(t, err, ErrIllegalPlacement)
	// Overlap.
	require.NoError(t, g.PlayMove(move.NewPlacement(0, 0, move.Vertical)))
	err = g.PlayMove(move.NewPlacement(0, 0, move.Horizontal))
	assert.ErrorIs(t, err, ErrIllegalPlacement)
	// Supply exhausted.
	g2 := NewGame(4, 4)
	require.NoError(t, g2.SetTileSupply(0))
	err = g2.PlayMove(move.NewPlacement(0, 0, move.Vertical))
	assert.ErrorIs(t, err, ErrNoTilesRemaining)
}

// Playing a move and unplaying it must restore the exact prior state,
// on every field, so that sibling branches of a search never observe a
// dirtied board.
func TestPlayUnplayRoundTrip(t *testing.T) {
	g := NewGame(4, 4)
	require.NoError(t, g.PlayMove(move.NewPlacement(1, 1, move.Vertical)))
	require.NoError(t, g.PlayMove(move.NewPlacement(0, 2, move.Horizontal)))

	snapshot := g.Copy()
	require.NoError(t, g.PlayMove(move.NewPlacement(2, 3, move.Vertical)))
	require.NoError(t, g.PlayMove(move.NewPlacement(3, 0, move.Horizontal)))
	g.UnplayLastMove()
	g.UnplayLastMove()

	assert.Equal(t, snapshot, g.Copy())
	assert.Equal(t, move.Vertical, g.PlayerOnTurn())
}

func TestUnplayOnFreshGameIsNoop(t *testing.T) {
	g := NewGame(3, 3)
	snapshot := g.Copy()
	g.UnplayLastMove()
	assert.Equal(t, snapshot, g.Copy())
}

func TestMobilityFor(t *testing.T) {
	g := NewGame(3, 3)
	// Block the center pair, as in a game where 2B was already played.
	require.NoError(t, g.SetPlayerOnTurn(move.Horizontal))
	require.NoError(t, g.PlayMove(move.NewPlacement(1, 1, move.Horizontal)))

	// Vertical can only play at A1 and A2; Horizontal at 1A, 1B, 3A, 3B.
	assert.Equal(t, 2, g.MobilityFor(move.Vertical))
	assert.Equal(t, 4, g.MobilityFor(move.Horizontal))
}

func TestStuckPlayerLoses(t *testing.T) {
	// On a 2x2 grid a single vertical tile in column A leaves no
	// horizontal pair of empty squares.
	g := NewGame(2, 2)
	require.NoError(t, g.PlayMove(move.NewPlacement(0, 0, move.Vertical)))

	require.Equal(t, StateGameOver, g.Playing())
	assert.Equal(t, OutcomeWin, g.Outcome(move.Vertical))
	assert.Equal(t, OutcomeLoss, g.Outcome(move.Horizontal))
}

func TestSupplyExhaustionDraw(t *testing.T) {
	g := NewGame(2, 4)
	require.NoError(t, g.SetTileSupply(1))
	require.NoError(t, g.PlayMove(move.NewPlacement(0, 0, move.Vertical)))
	require.NoError(t, g.PlayMove(move.NewPlacement(0, 2, move.Horizontal)))

	// Vertical is on turn with no tiles left; both sides placed one.
	require.Equal(t, StateGameOver, g.Playing())
	assert.Equal(t, OutcomeDraw, g.Outcome(move.Vertical))
	assert.Equal(t, OutcomeDraw, g.Outcome(move.Horizontal))
}

func TestSetupAfterStartFails(t *testing.T) {
	g := NewGame(3, 3)
	require.NoError(t, g.PlayMove(move.NewPlacement(0, 0, move.Vertical)))
	assert.ErrorIs(t, g.SetTileSupply(3), ErrGameStarted)
	assert.ErrorIs(t, g.SetPlayerOnTurn(move.Horizontal), ErrGameStarted)
}
