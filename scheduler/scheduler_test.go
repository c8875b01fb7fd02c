package scheduler

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

// The classroom sample: a nearby tight deadline, a far loose one and a
// mid-range stop. The only feasible order is 1 → 3 → 2.
func sampleDeliveries() []Delivery {
	return []Delivery{
		{X: 2, Y: 2, Deadline: 5},
		{X: 10, Y: 10, Deadline: 50},
		{X: 1, Y: 5, Deadline: 12},
	}
}

func TestSolveSample(t *testing.T) {
	s := NewSolver(0, 0, sampleDeliveries())
	sched, err := s.Solve()
	require.NoError(t, err)

	order := []int{}
	for _, st := range sched.Stops {
		order = append(order, st.Delivery)
	}
	assert.Equal(t, []int{0, 2, 1}, order)
	assert.Equal(t, "Start → 1 → 3 → 2", sched.String())

	wantArrivals := []float64{2.8284, 5.9907, 16.2863}
	for i, st := range sched.Stops {
		assert.InDelta(t, wantArrivals[i], st.Arrival, 1e-3)
		assert.LessOrEqual(t, st.Arrival, sampleDeliveries()[st.Delivery].Deadline)
	}
}

// Index-order search finds the same schedule but has to backtrack out
// of the far delivery first; the deadline/distance ordering goes
// straight to it.
func TestOrderingVisitsFewerCandidates(t *testing.T) {
	ordered := NewSolver(0, 0, sampleDeliveries())
	_, err := ordered.Solve()
	require.NoError(t, err)

	plain := NewSolver(0, 0, sampleDeliveries())
	plain.SetOrderingEnabled(false)
	_, err = plain.Solve()
	require.NoError(t, err)

	assert.Equal(t, 3, ordered.Evaluations())
	assert.Equal(t, 5, plain.Evaluations())
}

// Two deliveries that each demand presence at time 10 at opposite
// corners: whichever is served first makes the other unreachable. The
// solver must report infeasibility, never an invalid schedule.
func TestSolveInfeasible(t *testing.T) {
	deliveries := []Delivery{
		{X: 0, Y: 10, Deadline: 10},
		{X: 10, Y: 0, Deadline: 10},
	}
	for _, orderingOn := range []bool{true, false} {
		s := NewSolver(0, 0, deliveries)
		s.SetOrderingEnabled(orderingOn)
		sched, err := s.Solve()
		assert.ErrorIs(t, err, ErrNoFeasibleSchedule)
		assert.Nil(t, sched)
		assert.False(t, s.BudgetExhausted())
	}
}

func TestSolveBudgetExhausted(t *testing.T) {
	s := NewSolver(0, 0, sampleDeliveries())
	s.SetEvaluationBudget(2)
	_, err := s.Solve()
	assert.ErrorIs(t, err, ErrNoFeasibleSchedule)
	assert.True(t, s.BudgetExhausted())
}

func TestSolveEmptyTaskSet(t *testing.T) {
	s := NewSolver(0, 0, nil)
	sched, err := s.Solve()
	require.NoError(t, err)
	assert.Empty(t, sched.Stops)
	assert.Equal(t, 0, s.Evaluations())
}
