package solver

import (
	"fmt"

	"github.com/CsizmaAle/SAT-problem/cnf"
)

//searchState classifies the formula under the current trail.
type searchState int

const (
	stateOpen     searchState = iota //neither solved nor conflicting, branch
	stateSat                         //no unsatisfied clause remains
	stateConflict                    //some clause has every literal false
)

//DPLL is a backtracking search with unit propagation and pure literal
//elimination. The input formula is never mutated: clause state is
//evaluated against the assignments on an explicit trail, and trail
//limits mark the decision levels so a conflict unwinds exactly the
//entries the failed trial caused.
//
//Branching is deterministic: the lowest-identifier unassigned variable
//still occurring in an unsatisfied clause, tried true before false.
type DPLL struct {
	formula  *cnf.Formula
	assigns  cnf.Assignment
	trail    []cnf.Lit
	trailLim []int
	budget   *Budget

	Stats Statistics
}

//NewDPLL returns a DPLL engine for f.
func NewDPLL(f *cnf.Formula, b *Budget) *DPLL {
	return &DPLL{
		formula: f,
		assigns: cnf.NewAssignment(f.NumVars),
		budget:  b,
	}
}

//Solve runs the search. On Sat the returned assignment is total:
//variables the search never constrained default to true.
func (s *DPLL) Solve() (Result, error) {
	sat, err := s.search()
	if err != nil {
		return Result{}, err
	}
	if !sat {
		return Result{Status: Unsat}, nil
	}
	model := s.assigns.Copy()
	for v := 1; v <= s.formula.NumVars; v++ {
		if model[v] == cnf.Unassigned {
			model[v] = cnf.True
		}
	}
	return Result{Status: Sat, Assignment: model}, nil
}

//uncheckedEnqueue records l as true on the trail. Enqueueing a literal
//whose variable is already bound is trail corruption and panics.
func (s *DPLL) uncheckedEnqueue(l cnf.Lit) {
	if s.assigns.LitValue(l) != cnf.Unassigned {
		panic(fmt.Errorf("variable %d is already on the trail", l.Var()))
	}
	s.assigns.Assign(l)
	s.trail = append(s.trail, l)
}

func (s *DPLL) decisionLevel() int {
	return len(s.trailLim)
}

func (s *DPLL) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

//cancelUntil undoes every trail entry made at decision levels above
//level.
func (s *DPLL) cancelUntil(level int) {
	if s.decisionLevel() <= level {
		return
	}
	mark := s.trailLim[level]
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.assigns.Unassign(s.trail[i].Var())
	}
	s.trail = s.trail[:mark]
	s.trailLim = s.trailLim[:level]
}

//scan evaluates every clause under the current trail. live holds the
//unassigned remainder of each unsatisfied clause; conflict is true when
//some clause has no true and no unassigned literal left.
func (s *DPLL) scan() (live []cnf.Clause, conflict bool) {
	for _, c := range s.formula.Clauses {
		if c.Satisfied(s.assigns) {
			continue
		}
		free := c.Free(s.assigns)
		if free.Empty() {
			return nil, true
		}
		live = append(live, free)
	}
	return live, false
}

//simplify propagates unit clauses and then pure literals to fixpoint.
//On stateOpen, live holds the reduced clause set to branch on.
func (s *DPLL) simplify() (searchState, []cnf.Clause, error) {
	for {
		live, conflict := s.scan()
		if conflict {
			return stateConflict, nil, nil
		}
		if len(live) == 0 {
			return stateSat, nil, nil
		}

		propagated := false
		for _, c := range live {
			if c.Unit() {
				if err := s.budget.step(); err != nil {
					return stateOpen, nil, err
				}
				s.uncheckedEnqueue(c[0])
				s.Stats.PropagationCount++
				propagated = true
				break //rescan: the new assignment may satisfy or falsify others
			}
		}
		if propagated {
			continue
		}

		if pures := cnf.Pures(live); len(pures) > 0 {
			for _, l := range pures {
				if err := s.budget.step(); err != nil {
					return stateOpen, nil, err
				}
				s.uncheckedEnqueue(l)
				s.Stats.PureCount++
			}
			continue
		}

		return stateOpen, live, nil
	}
}

//branchVar picks the lowest unassigned variable still occurring in an
//unsatisfied clause.
func branchVar(live []cnf.Clause) int {
	v := 0
	for _, c := range live {
		for _, l := range c {
			if v == 0 || l.Var() < v {
				v = l.Var()
			}
		}
	}
	if v == 0 {
		panic(fmt.Errorf("branching with no free variable in %d live clauses", len(live)))
	}
	return v
}

//search recurses over decision levels. Recursion depth is bounded by
//the variable count.
func (s *DPLL) search() (bool, error) {
	state, live, err := s.simplify()
	if err != nil {
		return false, err
	}
	switch state {
	case stateSat:
		return true, nil
	case stateConflict:
		return false, nil
	}

	v := branchVar(live)
	for _, trial := range []cnf.Lit{cnf.Lit(v), cnf.Lit(-v)} {
		if err := s.budget.step(); err != nil {
			return false, err
		}
		s.Stats.DecisionCount++
		level := s.decisionLevel()
		s.newDecisionLevel()
		s.uncheckedEnqueue(trial)
		sat, err := s.search()
		if err != nil {
			return false, err
		}
		if sat {
			return true, nil
		}
		s.cancelUntil(level)
	}
	return false, nil
}
