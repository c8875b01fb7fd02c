// Package pathfind implements A* search over an obstacle grid with
// 8-directional movement. Orthogonal steps cost 1, diagonal steps √2,
// and the heuristic is the Euclidean distance to the goal, which never
// overestimates the true remaining cost.
package pathfind

import (
	"container/heap"
	"errors"
	"math"

	"github.com/mlopes/searchlab/board"
)

var ErrUnreachable = errors.New("goal is unreachable")

// Position is a single grid cell.
type Position struct {
	Row int
	Col int
}

// Path is a reconstructed route from start to goal, start and goal
// included.
type Path struct {
	Positions []Position
	Cost      float64
	// Expanded is the number of cells taken off the frontier.
	Expanded int
}

// Steps is the number of moves along the path.
func (p *Path) Steps() int {
	return len(p.Positions) - 1
}

var directions = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

func heuristic(a, b Position) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// frontierNode is an entry in the open list. The sequence number makes
// the pop order deterministic when f-scores tie.
type frontierNode struct {
	pos Position
	f   float64
	g   float64
	seq int
}

type frontier []*frontierNode

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*frontierNode))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return node
}

// ShortestPath runs A* from start to goal on the given grid, where an
// occupied square is an obstacle. It returns the lowest-cost path, or
// ErrUnreachable when no path exists (including a start or goal that is
// out of bounds or sits on an obstacle). Unreachability is a legitimate
// outcome, not a fault.
func ShortestPath(grid *board.Grid, start, goal Position) (*Path, error) {
	if !grid.InBounds(start.Row, start.Col) || !grid.InBounds(goal.Row, goal.Col) {
		return nil, ErrUnreachable
	}
	if grid.Occupied(start.Row, start.Col) || grid.Occupied(goal.Row, goal.Col) {
		return nil, ErrUnreachable
	}

	open := &frontier{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &frontierNode{pos: start, f: heuristic(start, goal), g: 0, seq: seq})

	gScores := map[Position]float64{start: 0}
	parents := map[Position]Position{}
	closed := map[Position]bool{}
	expanded := 0

	for open.Len() > 0 {
		node := heap.Pop(open).(*frontierNode)
		if closed[node.pos] {
			continue
		}
		if node.pos == goal {
			return &Path{
				Positions: reconstruct(parents, start, goal),
				Cost:      node.g,
				Expanded:  expanded,
			}, nil
		}
		closed[node.pos] = true
		expanded++

		for _, d := range directions {
			next := Position{Row: node.pos.Row + d[0], Col: node.pos.Col + d[1]}
			if !grid.InBounds(next.Row, next.Col) || grid.Occupied(next.Row, next.Col) {
				continue
			}
			if closed[next] {
				continue
			}
			stepCost := 1.0
			if d[0] != 0 && d[1] != 0 {
				stepCost = math.Sqrt2
			}
			tentative := node.g + stepCost
			if best, seen := gScores[next]; seen && tentative >= best {
				continue
			}
			gScores[next] = tentative
			parents[next] = node.pos
			seq++
			heap.Push(open, &frontierNode{
				pos: next,
				f:   tentative + heuristic(next, goal),
				g:   tentative,
				seq: seq,
			})
		}
	}
	return nil, ErrUnreachable
}

func reconstruct(parents map[Position]Position, start, goal Position) []Position {
	path := []Position{goal}
	for cur := goal; cur != start; {
		cur = parents[cur]
		path = append(path, cur)
	}
	// Reverse to get start → goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
