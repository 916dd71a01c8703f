package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsizmaAle/SAT-problem/cnf"
)

func TestDPVerdicts(t *testing.T) {
	for _, tt := range []struct {
		name    string
		numVars int
		clauses [][]int
		status  Status
	}{
		{name: "empty formula", numVars: 1, status: Sat},
		{name: "unit clause", numVars: 1, clauses: [][]int{{1}}, status: Sat},
		{name: "direct contradiction", numVars: 1, clauses: [][]int{{1}, {-1}}, status: Unsat},
		{name: "pure literal", numVars: 2, clauses: [][]int{{1, 2}, {1, -2}}, status: Sat},
		{name: "all polarity combinations", numVars: 2, clauses: [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}, status: Unsat},
		{name: "chained implications", numVars: 3, clauses: [][]int{{1}, {-1, 2}, {-2, 3}}, status: Sat},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewDP(mustFormula(t, tt.numVars, tt.clauses), nil).Solve()
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

//Elimination keeps no model, so a Sat verdict reruns DPLL on the
//original formula for the witness; the assignment must therefore be
//present, total, and satisfying, exactly as DPLL's own would be.
func TestDPWitnessComesFromSearch(t *testing.T) {
	f := mustFormula(t, 2, [][]int{{-1, -2}, {-1, 2}, {1, -2}})
	res, err := NewDP(f, nil).Solve()
	require.NoError(t, err)
	require.Equal(t, Sat, res.Status)
	require.NotNil(t, res.Assignment)
	assert.True(t, res.Assignment.Satisfies(f))

	dpll, err := NewDPLL(f, nil).Solve()
	require.NoError(t, err)
	assert.Equal(t, dpll.Assignment, res.Assignment)
}

func TestEliminateRemovesEveryOccurrence(t *testing.T) {
	f := mustFormula(t, 3, [][]int{{1, 2}, {-1, 3}, {-1, -2}, {2, 3}})
	s := NewDP(f, nil)
	next, empty, err := s.eliminate(f.Clauses, 1)
	require.NoError(t, err)
	require.False(t, empty)
	for _, c := range next {
		assert.False(t, c.Has(cnf.Lit(1)), "clause %q still mentions the eliminated variable", c.Key())
		assert.False(t, c.Has(cnf.Lit(-1)), "clause %q still mentions the eliminated variable", c.Key())
	}
}

func TestEliminateDropsTautologiesAndDuplicates(t *testing.T) {
	//Resolving {1,2} with {-1,-2} on 1 gives the tautology {2,-2};
	//resolving {1,3} with {-1,3} rederives the untouched clause {3}.
	f := mustFormula(t, 3, [][]int{{1, 2}, {-1, -2}, {1, 3}, {-1, 3}, {3}})
	s := NewDP(f, nil)
	next, empty, err := s.eliminate(f.Clauses, 1)
	require.NoError(t, err)
	require.False(t, empty)

	keys := map[string]int{}
	for _, c := range next {
		assert.False(t, c.Tautology())
		keys[c.Key()]++
	}
	for key, n := range keys {
		assert.Equal(t, 1, n, "clause %q appears more than once", key)
	}
}

func TestDPShortCircuitsOnEmptyClause(t *testing.T) {
	f := mustFormula(t, 3, [][]int{{1}, {-1}, {2, 3}})
	s := NewDP(f, nil)
	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unsat, res.Status)
	//Variable 1 collapses immediately; 2 and 3 are never processed.
	assert.Equal(t, uint64(0), s.Stats.EliminationCount)
}

func TestDPBudgetExceeded(t *testing.T) {
	f := mustFormula(t, 3, [][]int{{1, 2}, {-1, 3}, {2, 3}})
	_, err := NewDP(f, &Budget{MaxSteps: 1}).Solve()
	require.ErrorIs(t, err, ErrBudgetExceeded)
}
