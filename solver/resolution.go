package solver

import (
	"fmt"

	"github.com/CsizmaAle/SAT-problem/cnf"
)

//Resolution is a saturation-style refutation search. The clause set is
//kept in insertion order and swept pairwise by index, so every
//unordered pair of clauses is attempted exactly once even as derived
//clauses extend the sweep; the clause universe over a fixed variable
//count is finite, so the sweep terminates. Deriving the empty clause
//proves Unsat; exhausting the sweep means the set is saturated and the
//formula is Sat.
//
//Like DP, saturation yields no witness assignment, so on Sat the
//engine reruns DPLL on the original formula with the same budget.
type Resolution struct {
	formula *cnf.Formula
	budget  *Budget

	Stats Statistics
}

//NewResolution returns a Resolution engine for f.
func NewResolution(f *cnf.Formula, b *Budget) *Resolution {
	return &Resolution{formula: f, budget: b}
}

func (s *Resolution) Solve() (Result, error) {
	var set []cnf.Clause
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
		set = append(set, c)
	}

	for i := 1; i < len(set); i++ {
		for j := 0; j < i; j++ {
			derived, empty, err := s.resolveAll(set[i], set[j], seen)
			if err != nil {
				return Result{}, err
			}
			if empty {
				return Result{Status: Unsat}, nil
			}
			set = append(set, derived...)
		}
	}

	witness := NewDPLL(s.formula, s.budget)
	res, err := witness.Solve()
	if err != nil {
		return Result{}, err
	}
	if res.Status != Sat {
		panic(fmt.Errorf("saturation found no refutation but search refuted the formula"))
	}
	return res, nil
}

//resolveAll resolves a against b on every complementary variable the
//pair shares, lowest variable first, keeping resolvents that are
//neither tautological nor already present. empty is true when a
//resolvent collapsed to the empty clause.
func (s *Resolution) resolveAll(a, b cnf.Clause, seen map[string]bool) (out []cnf.Clause, empty bool, err error) {
	for _, l := range a {
		if !b.Has(l.Neg()) {
			continue
		}
		if err := s.budget.step(); err != nil {
			return nil, false, err
		}
		s.Stats.ResolventCount++
		r, ok := cnf.Resolve(a, b, l.Var())
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
		out = append(out, r)
	}
	return out, false, nil
}
