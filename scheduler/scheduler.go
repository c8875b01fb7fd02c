// Package scheduler solves a deadline-constrained delivery ordering
// problem with depth-first backtracking. A robot starts at a fixed
// position and must visit every delivery before its deadline; travel
// time is the Euclidean distance between stops. The search extends a
// partial schedule one stop at a time and backtracks on the first
// deadline violation.
package scheduler

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// DefaultEvaluationBudget bounds how many candidate extensions a single
// solve may consider before giving up.
const DefaultEvaluationBudget = 500000

var ErrNoFeasibleSchedule = errors.New("no feasible schedule found")

// Delivery is a single delivery task: a drop-off location and the time
// by which the robot must arrive there.
type Delivery struct {
	X        float64
	Y        float64
	Deadline float64
}

// Stop is one entry of a finished schedule: which delivery was served
// and when the robot got there.
type Stop struct {
	Delivery int
	Arrival  float64
}

// Schedule is a complete, deadline-feasible visiting order.
type Schedule struct {
	Stops []Stop
	// Evaluations is how many candidate extensions the search
	// considered before finding this schedule.
	Evaluations int
}

// String renders the schedule in visiting order with 1-based delivery
// numbers, e.g. "Start → 1 → 3 → 2".
func (s *Schedule) String() string {
	stops := lo.Map(s.Stops, func(st Stop, _ int) string {
		return fmt.Sprintf("%d", st.Delivery+1)
	})
	return "Start → " + strings.Join(stops, " → ")
}

// Solver runs the backtracking search over one task set. It is single
// use: create a new one per Solve.
type Solver struct {
	startX     float64
	startY     float64
	deliveries []Delivery

	useOrdering bool
	budget      int

	evaluations   int
	budgetReached bool
}

// NewSolver creates a solver for the given start position and task set.
// Heuristic ordering is on by default.
func NewSolver(startX, startY float64, deliveries []Delivery) *Solver {
	return &Solver{
		startX:      startX,
		startY:      startY,
		deliveries:  deliveries,
		useOrdering: true,
		budget:      DefaultEvaluationBudget,
	}
}

// SetOrderingEnabled toggles the earliest-deadline-then-shortest-
// distance child ordering. With it off, candidates are tried in task
// index order.
func (s *Solver) SetOrderingEnabled(enabled bool) {
	s.useOrdering = enabled
}

// SetEvaluationBudget overrides the evaluation cutoff.
func (s *Solver) SetEvaluationBudget(n int) {
	s.budget = n
}

// Evaluations returns how many candidate extensions the last solve
// considered.
func (s *Solver) Evaluations() int {
	return s.evaluations
}

// BudgetExhausted reports whether the last solve stopped because it ran
// out of evaluations rather than because it proved infeasibility.
func (s *Solver) BudgetExhausted() bool {
	return s.budgetReached
}

// Solve returns the first deadline-feasible complete schedule the
// depth-first search finds, or ErrNoFeasibleSchedule if the explored
// space contains none. An infeasible task set is a legitimate outcome,
// not a fault.
func (s *Solver) Solve() (*Schedule, error) {
	s.evaluations = 0
	s.budgetReached = false

	visited := make([]bool, len(s.deliveries))
	stops := make([]Stop, 0, len(s.deliveries))
	found, stops := s.search(visited, stops, s.startX, s.startY, 0)
	if !found {
		return nil, ErrNoFeasibleSchedule
	}
	out := make([]Stop, len(stops))
	copy(out, stops)
	return &Schedule{Stops: out, Evaluations: s.evaluations}, nil
}

// search extends the partial schedule by one stop and recurses,
// undoing the extension when the branch fails.
func (s *Solver) search(visited []bool, stops []Stop, x, y, now float64) (bool, []Stop) {
	if len(stops) == len(s.deliveries) {
		return true, stops
	}

	candidates := s.candidateOrder(visited, x, y)
	for _, i := range candidates {
		s.evaluations++
		if s.evaluations >= s.budget {
			if !s.budgetReached {
				s.budgetReached = true
				log.Warn().
					Int("budget", s.budget).
					Msg("evaluation-budget-reached")
			}
			return false, stops
		}

		d := s.deliveries[i]
		arrival := now + travelTime(x, y, d.X, d.Y)
		if arrival > d.Deadline {
			continue
		}

		visited[i] = true
		stops = append(stops, Stop{Delivery: i, Arrival: arrival})

		found, deeper := s.search(visited, stops, d.X, d.Y, arrival)
		if found {
			return true, deeper
		}

		visited[i] = false
		stops = stops[:len(stops)-1]
	}
	return false, stops
}

// candidateOrder returns the indices of the unvisited deliveries. With
// ordering enabled they are sorted by deadline, then by distance from
// the current position; this is a fixed comparator, not a re-evaluated
// policy.
func (s *Solver) candidateOrder(visited []bool, x, y float64) []int {
	var candidates []int
	for i := range s.deliveries {
		if !visited[i] {
			candidates = append(candidates, i)
		}
	}
	if !s.useOrdering {
		return candidates
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		da, db := s.deliveries[candidates[a]], s.deliveries[candidates[b]]
		if da.Deadline != db.Deadline {
			return da.Deadline < db.Deadline
		}
		return travelTime(x, y, da.X, da.Y) < travelTime(x, y, db.X, db.Y)
	})
	return candidates
}

func travelTime(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
