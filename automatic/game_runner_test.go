package automatic

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlopes/searchlab/config"
	"github.com/mlopes/searchlab/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func TestPlayGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SearchPlies = 2
	r := NewGameRunner(cfg)

	require.NoError(t, r.PlayGame(context.Background()))
	games := r.Wins(move.Vertical) + r.Wins(move.Horizontal) + r.Draws()
	assert.Equal(t, 1, games)
	assert.Positive(t, r.NodeStats().Iterations())
}

func TestRunSeveralGames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BoardRows = 3
	cfg.BoardCols = 3
	cfg.SearchPlies = 2
	r := NewGameRunner(cfg)
	r.SetPrefill(2)

	const numGames = 4
	require.NoError(t, r.Run(context.Background(), numGames))
	games := r.Wins(move.Vertical) + r.Wins(move.Horizontal) + r.Draws()
	assert.Equal(t, numGames, games)
	assert.NotEmpty(t, r.Summary())
}

// On the 3x3 board without prefill the first player always wins with
// perfect play from both sides; the runner should reproduce that
// deterministically.
func TestFirstPlayerWinsEmptyThreeByThree(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SearchPlies = 9
	r := NewGameRunner(cfg)

	require.NoError(t, r.Run(context.Background(), 2))
	assert.Equal(t, 2, r.Wins(move.Vertical))
	assert.Equal(t, 0, r.Wins(move.Horizontal))
}
