//Package gen produces random CNF formulas for exercising and comparing
//the solving engines.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/CsizmaAle/SAT-problem/cnf"
)

//maxClauseSize bounds generated clause width, matching the 3-CNF-ish
//instances the engines are compared on.
const maxClauseSize = 3

//Config describes a batch of random formulas.
type Config struct {
	Formulas  int     //number of formulas in the batch
	Clauses   int     //clauses per formula
	Vars      int     //variables range over [1, Vars]
	UnsatProb float64 //probability of injecting a complementary unit-clause pair
}

//Default mirrors the instance class the comparison tool was tuned on.
var Default = Config{Formulas: 10, Clauses: 20, Vars: 10, UnsatProb: 0.3}

//Validate reports a configuration no generator run can honor.
func (c Config) Validate() error {
	if c.Formulas < 1 || c.Clauses < 1 || c.Vars < 1 {
		return fmt.Errorf("formulas, clauses and vars must all be positive: %+v", c)
	}
	if c.UnsatProb < 0 || c.UnsatProb > 1 {
		return fmt.Errorf("unsat probability must lie in [0, 1]: %v", c.UnsatProb)
	}
	return nil
}

//Formula generates one random formula: with probability c.UnsatProb a
//contradictory unit-clause pair is planted first, then the remainder is
//filled with clauses of 1..min(3, c.Vars) distinct variables under
//random polarities. Deterministic for a fixed r.
func Formula(r *rand.Rand, c Config) *cnf.Formula {
	clauses := make([][]int, 0, c.Clauses)
	remaining := c.Clauses
	if c.Clauses >= 2 && r.Float64() < c.UnsatProb {
		v := r.Intn(c.Vars) + 1
		clauses = append(clauses, []int{v}, []int{-v})
		remaining -= 2
	}

	width := maxClauseSize
	if c.Vars < width {
		width = c.Vars
	}
	for i := 0; i < remaining; i++ {
		size := r.Intn(width) + 1
		clause := make([]int, size)
		for j, v := range r.Perm(c.Vars)[:size] {
			if r.Intn(2) == 0 {
				clause[j] = v + 1
			} else {
				clause[j] = -(v + 1)
			}
		}
		clauses = append(clauses, clause)
	}

	f, err := cnf.New(c.Vars, clauses)
	if err != nil {
		panic(err) //generator produced out-of-range literals
	}
	return f
}

//Formulas generates c.Formulas random formulas.
func Formulas(r *rand.Rand, c Config) []*cnf.Formula {
	out := make([]*cnf.Formula, c.Formulas)
	for i := range out {
		out[i] = Formula(r, c)
	}
	return out
}
