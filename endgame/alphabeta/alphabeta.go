// Package alphabeta implements a depth-limited minimax solver with
// alpha-beta pruning for the tile placement game.
package alphabeta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mlopes/searchlab/game"
	"github.com/mlopes/searchlab/move"
	"github.com/mlopes/searchlab/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
		for each child of node do
			play(child)
			value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
			unplayLastMove()
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
		for each child of node do
			play(child)
			value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
			unplayLastMove()
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// Infinity is 10 million.
const Infinity = float32(10000000)

var ErrNoSearchDepth = errors.New("need at least zero plies to search")

// Solver implements the minimax + alphabeta algorithm.
type Solver struct {
	stmMovegen movegen.MoveGenerator
	game       *game.Game
	evaluator  Evaluator

	totalNodes int
	leafNodes  int
	// maximizingPlayer is the player we call Solve for.
	maximizingPlayer move.Orientation

	disablePruning bool
	requestedPlies int

	logStream io.Writer
}

// max returns the larger of x or y.
func max(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

func min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

// Init initializes the solver.
func (s *Solver) Init(m movegen.MoveGenerator, g *game.Game) error {
	s.stmMovegen = m
	s.game = g
	s.evaluator = MobilityEvaluator{}
	s.totalNodes = 0
	s.leafNodes = 0
	return nil
}

// SetEvaluator replaces the static evaluation function.
func (s *Solver) SetEvaluator(e Evaluator) {
	s.evaluator = e
}

// SetPruningDisabled turns the α ≥ β cutoff off, degrading the search to
// plain minimax. Pruning never changes the solved move or value, only
// the number of nodes visited; the tests rely on this switch to prove
// it.
func (s *Solver) SetPruningDisabled(disabled bool) {
	s.disablePruning = disabled
}

// SetLogStream sets a writer that receives a YAML-ish trace of the
// whole search tree. Very slow, only use for debugging.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

// TotalNodes returns the number of nodes visited during the last solve,
// the root included.
func (s *Solver) TotalNodes() int {
	return s.totalNodes
}

// LeafNodes returns the number of statically evaluated nodes during the
// last solve.
func (s *Solver) LeafNodes() int {
	return s.leafNodes
}

// Solve searches the game tree plies deep and returns the best move for
// the player on turn together with its backed-up value. At a terminal
// position, or with zero plies, the move is nil and the value is the
// static evaluation of the position as it stands. The context is only
// inspected for cancellation between nodes; the search itself is purely
// sequential.
func (s *Solver) Solve(ctx context.Context, plies int) (*move.Move, float32, error) {
	if plies < 0 {
		return nil, 0, ErrNoSearchDepth
	}
	s.requestedPlies = plies
	s.maximizingPlayer = s.game.PlayerOnTurn()
	s.totalNodes = 0
	s.leafNodes = 0

	v, m, err := s.alphabeta(ctx, plies, -Infinity, Infinity, true)
	if err != nil {
		return nil, 0, err
	}
	log.Debug().
		Int("plies", plies).
		Int("totalNodes", s.totalNodes).
		Int("leafNodes", s.leafNodes).
		Float32("value", v).
		Msg("solve-done")
	return m, v, nil
}

func (s *Solver) alphabeta(ctx context.Context, depth int, α, β float32,
	maximizing bool) (float32, *move.Move, error) {

	if ctx.Err() != nil {
		return 0, nil, ctx.Err()
	}
	s.totalNodes++

	if depth == 0 || s.game.Playing() != game.StatePlaying {
		s.leafNodes++
		return s.evaluator.Evaluate(s.game, s.maximizingPlayer), nil, nil
	}

	children := s.stmMovegen.GenAll(s.game)
	indent := 2 * (s.requestedPlies - depth)
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "%vplays:\n", strings.Repeat(" ", indent))
	}

	if maximizing {
		value := -Infinity
		var best *move.Move
		for _, child := range children {
			v, err := s.searchChild(ctx, child, depth, α, β, false, indent)
			if err != nil {
				return 0, nil, err
			}
			// Strictly greater, so that ties go to the move generated
			// first. The nil check keeps the incumbent when every line
			// evaluates to -Infinity (a lost position is still played
			// out).
			if v > value || best == nil {
				value = v
				best = child
			}
			α = max(α, value)
			// The cutoff check must come after the α update and before
			// the next sibling; the first child is always visited.
			if !s.disablePruning && α >= β {
				break
			}
		}
		return value, best, nil
	}

	value := Infinity
	var best *move.Move
	for _, child := range children {
		v, err := s.searchChild(ctx, child, depth, α, β, true, indent)
		if err != nil {
			return 0, nil, err
		}
		if v < value || best == nil {
			value = v
			best = child
		}
		β = min(β, value)
		if !s.disablePruning && α >= β {
			break
		}
	}
	return value, best, nil
}

// searchChild plays a move, recurses and unplays it again. The unplay
// happens on every exit path so sibling branches never see a dirty
// board.
func (s *Solver) searchChild(ctx context.Context, child *move.Move, depth int,
	α, β float32, maximizing bool, indent int) (float32, error) {

	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "%v- play: %v\n",
			strings.Repeat(" ", indent), child.ShortDescription())
	}
	if err := s.game.PlayMove(child); err != nil {
		return 0, err
	}
	v, _, err := s.alphabeta(ctx, depth-1, α, β, maximizing)
	s.game.UnplayLastMove()
	if err != nil {
		return 0, err
	}
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "%v  value: %v\n",
			strings.Repeat(" ", indent), v)
	}
	return v, nil
}
