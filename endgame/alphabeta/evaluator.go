package alphabeta

import (
	"github.com/mlopes/searchlab/game"
	"github.com/mlopes/searchlab/move"
)

// Evaluator statically scores a position from the maximizing player's
// perspective: positive favors the maximizer, negative the opponent. It
// must be total over all reachable positions and must agree with the
// true game outcome at terminal ones.
type Evaluator interface {
	Evaluate(g *game.Game, maximizer move.Orientation) float32
}

// MobilityEvaluator scores a position by the difference in available
// placements: (maximizer's legal moves) - (opponent's legal moves).
// Finished games map onto the sentinel extremes, so a won game always
// outranks any mobility edge.
type MobilityEvaluator struct{}

func (MobilityEvaluator) Evaluate(g *game.Game, maximizer move.Orientation) float32 {
	if g.Playing() == game.StateGameOver {
		switch g.Outcome(maximizer) {
		case game.OutcomeWin:
			return Infinity
		case game.OutcomeLoss:
			return -Infinity
		}
		return 0
	}
	return float32(g.MobilityFor(maximizer) - g.MobilityFor(maximizer.Other()))
}
