// Package automatic contains the logic for unattended games of the tile
// placement game: two solver configurations play each other for a number
// of games while the runner keeps score.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/mlopes/searchlab/config"
	"github.com/mlopes/searchlab/endgame/alphabeta"
	"github.com/mlopes/searchlab/game"
	"github.com/mlopes/searchlab/move"
	"github.com/mlopes/searchlab/movegen"
	"github.com/mlopes/searchlab/stats"
)

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	cfg     *config.Config
	movegen movegen.MoveGenerator

	// plies per side, indexed by orientation.
	plies [2]int
	// prefill is how many random squares to block before each game.
	prefill int

	wins      [2]int
	draws     int
	gameMoves *stats.Statistic
	nodes     *stats.Statistic
}

// NewGameRunner just instantiates and initializes a game runner.
func NewGameRunner(cfg *config.Config) *GameRunner {
	r := &GameRunner{
		cfg:       cfg,
		movegen:   movegen.NewPlacementGenerator(),
		plies:     [2]int{cfg.SearchPlies, cfg.SearchPlies},
		gameMoves: &stats.Statistic{},
		nodes:     &stats.Statistic{},
	}
	return r
}

// SetPlies gives each side its own search depth, for strength
// comparisons between depths.
func (r *GameRunner) SetPlies(horizontal, vertical int) {
	r.plies[move.Horizontal] = horizontal
	r.plies[move.Vertical] = vertical
}

// SetPrefill blocks n random squares before every game, to vary the
// openings.
func (r *GameRunner) SetPrefill(n int) {
	r.prefill = n
}

func (r *GameRunner) Wins(o move.Orientation) int {
	return r.wins[o]
}

func (r *GameRunner) Draws() int {
	return r.draws
}

// NodeStats returns the per-move node count statistic across all games
// played so far.
func (r *GameRunner) NodeStats() *stats.Statistic {
	return r.nodes
}

// PlayGame plays a single game to the end and records the result.
func (r *GameRunner) PlayGame(ctx context.Context) error {
	g := game.NewGame(r.cfg.BoardRows, r.cfg.BoardCols)
	b := g.Board()
	for i := 0; i < r.prefill; i++ {
		row := frand.Intn(b.Rows())
		col := frand.Intn(b.Cols())
		b.SetOccupied(row, col, true)
	}

	moves := 0
	for g.Playing() == game.StatePlaying {
		s := &alphabeta.Solver{}
		if err := s.Init(r.movegen, g); err != nil {
			return err
		}
		m, v, err := s.Solve(ctx, r.plies[g.PlayerOnTurn()])
		if err != nil {
			return err
		}
		if m == nil {
			// Zero plies configured; there is nothing to play.
			break
		}
		r.nodes.Push(float64(s.TotalNodes()))
		log.Debug().
			Str("onturn", g.PlayerOnTurn().String()).
			Str("move", m.ShortDescription()).
			Float32("value", v).
			Msg("autoplay-move")
		if err := g.PlayMove(m); err != nil {
			return err
		}
		moves++
	}
	r.gameMoves.Push(float64(moves))

	switch g.Outcome(move.Vertical) {
	case game.OutcomeWin:
		r.wins[move.Vertical]++
	case game.OutcomeLoss:
		r.wins[move.Horizontal]++
	default:
		r.draws++
	}
	return nil
}

// Run plays numGames games back to back.
func (r *GameRunner) Run(ctx context.Context, numGames int) error {
	for i := 0; i < numGames; i++ {
		if err := r.PlayGame(ctx); err != nil {
			return err
		}
		log.Debug().Int("game", i+1).Msg("autoplay-game-done")
	}
	return nil
}

// Summary describes the results of all games played so far.
func (r *GameRunner) Summary() string {
	games := r.wins[move.Vertical] + r.wins[move.Horizontal] + r.draws
	lo95, hi95 := r.nodes.ConfidenceInterval(95)
	return fmt.Sprintf(
		"%d games: vertical %d, horizontal %d, draws %d; "+
			"avg moves/game %.1f; nodes/move %.1f (95%% CI %.1f–%.1f)",
		games, r.wins[move.Vertical], r.wins[move.Horizontal], r.draws,
		r.gameMoves.Mean(), r.nodes.Mean(), lo95, hi95)
}
