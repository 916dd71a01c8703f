package solver

import (
	"fmt"

	"github.com/CsizmaAle/SAT-problem/cnf"
)

//DP is Davis-Putnam variable elimination. Variables are eliminated in
//ascending identifier order from a working copy of the clause set:
//every clause holding the variable positively is resolved against
//every clause holding it negatively, tautological resolvents and exact
//duplicates are dropped, and the resolvents replace what they were
//derived from. Deriving the empty clause at any point proves Unsat;
//surviving every elimination proves Sat.
//
//Elimination alone yields no witness assignment, so on Sat the engine
//reruns DPLL on the original formula, drawing on the same budget.
type DP struct {
	formula *cnf.Formula
	budget  *Budget

	Stats Statistics
}

//NewDP returns a DP engine for f.
func NewDP(f *cnf.Formula, b *Budget) *DP {
	return &DP{formula: f, budget: b}
}

func (s *DP) Solve() (Result, error) {
	work := make([]cnf.Clause, 0, len(s.formula.Clauses))
	seen := map[string]bool{}
	for _, c := range s.formula.Clauses {
		if c.Tautology() {
			continue
		}
		if c.Empty() {
			return Result{Status: Unsat}, nil
		}
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		work = append(work, c)
	}

	for v := 1; v <= s.formula.NumVars; v++ {
		if err := s.budget.step(); err != nil {
			return Result{}, err
		}
		next, empty, err := s.eliminate(work, v)
		if err != nil {
			return Result{}, err
		}
		if empty {
			return Result{Status: Unsat}, nil
		}
		work = next
		s.Stats.EliminationCount++
	}
	if len(work) != 0 {
		panic(fmt.Errorf("%d clauses survived eliminating every variable", len(work)))
	}

	witness := NewDPLL(s.formula, s.budget)
	res, err := witness.Solve()
	if err != nil {
		return Result{}, err
	}
	if res.Status != Sat {
		panic(fmt.Errorf("elimination found no refutation but search refuted the formula"))
	}
	return res, nil
}

//eliminate removes every occurrence of variable v from work. empty is
//true when a resolvent collapsed to the empty clause, the Unsat
//witness.
func (s *DP) eliminate(work []cnf.Clause, v int) (next []cnf.Clause, empty bool, err error) {
	var pos, neg []cnf.Clause
	seen := map[string]bool{}
	for _, c := range work {
		switch {
		case c.Has(cnf.Lit(v)):
			pos = append(pos, c)
		case c.Has(cnf.Lit(-v)):
			neg = append(neg, c)
		default:
			if !seen[c.Key()] {
				seen[c.Key()] = true
				next = append(next, c)
			}
		}
	}
	for _, p := range pos {
		for _, n := range neg {
			if err := s.budget.step(); err != nil {
				return nil, false, err
			}
			s.Stats.ResolventCount++
			r, ok := cnf.Resolve(p, n, v)
			if !ok {
				continue //tautological resolvent
			}
			if r.Empty() {
				return nil, true, nil
			}
			if seen[r.Key()] {
				continue
			}
			seen[r.Key()] = true
			next = append(next, r)
		}
	}
	return next, false, nil
}
