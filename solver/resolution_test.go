package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionVerdicts(t *testing.T) {
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
		{name: "refutation needs a derived clause", numVars: 3, clauses: [][]int{{1, 2}, {-1, 2}, {-2, 3}, {-3, -2}}, status: Unsat},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewResolution(mustFormula(t, tt.numVars, tt.clauses), nil).Solve()
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

//Saturation keeps no model either, so the witness comes from a DPLL
//rerun, same as DP's.
func TestResolutionWitnessComesFromSearch(t *testing.T) {
	f := mustFormula(t, 2, [][]int{{-1, -2}, {-1, 2}, {1, -2}})
	res, err := NewResolution(f, nil).Solve()
	require.NoError(t, err)
	require.Equal(t, Sat, res.Status)
	require.NotNil(t, res.Assignment)
	assert.True(t, res.Assignment.Satisfies(f))
}

func TestResolutionDiscardsTautologicalResolvents(t *testing.T) {
	//Both resolvents of this pair (on 1 and on 2) are tautologies; the
	//set saturates with nothing derived.
	f := mustFormula(t, 2, [][]int{{1, 2}, {-1, -2}})
	s := NewResolution(f, nil)
	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, Sat, res.Status)
	assert.Equal(t, uint64(2), s.Stats.ResolventCount)
}

func TestResolutionAttemptsEachPairOnce(t *testing.T) {
	//Saturating {1,2},{-1,2},{1,-2}: the three seed pairs plus the
	//pairs against the derived units {2} and {1} are attempted once
	//each; rederived duplicates do not restart the sweep.
	f := mustFormula(t, 2, [][]int{{1, 2}, {-1, 2}, {1, -2}})
	s := NewResolution(f, nil)
	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, Sat, res.Status)
	assert.LessOrEqual(t, s.Stats.ResolventCount, uint64(12))
}

func TestResolutionBudgetExceeded(t *testing.T) {
	f := mustFormula(t, 2, [][]int{{1, 2}, {-1, 2}, {1, -2}})
	_, err := NewResolution(f, &Budget{MaxSteps: 1}).Solve()
	require.ErrorIs(t, err, ErrBudgetExceeded)
}
