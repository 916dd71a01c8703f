//Package solver implements three decision procedures for CNF
//satisfiability over the cnf model: Davis-Putnam variable elimination,
//DPLL backtracking search, and saturation-style resolution refutation.
//Each engine owns its working state for the duration of a single Solve
//call and exposes the same solve-once contract.
package solver

import (
	"fmt"
	"strings"

	"github.com/CsizmaAle/SAT-problem/cnf"
)

//Status is the verdict of a solve call.
type Status int

const (
	Sat Status = iota
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		panic(fmt.Errorf("invalid status: %d", int(s)))
	}
}

//Result is the outcome of one engine run. Assignment is non-nil iff
//the Status is Sat; it is then total over the formula's variables and
//satisfies every clause of the input.
type Result struct {
	Status     Status
	Assignment cnf.Assignment
}

//Solver is the solve-once contract shared by the engines. A Solver
//decides the formula it was constructed for exactly once; no state
//survives the call.
type Solver interface {
	Solve() (Result, error)
}

//Engine selects one of the decision procedures.
type Engine int

const (
	EngineDP Engine = iota
	EngineDPLL
	EngineResolution
)

//Engines lists every available engine in a fixed reporting order.
var Engines = []Engine{EngineResolution, EngineDP, EngineDPLL}

func (e Engine) String() string {
	switch e {
	case EngineDP:
		return "DP"
	case EngineDPLL:
		return "DPLL"
	case EngineResolution:
		return "Resolution"
	default:
		panic(fmt.Errorf("invalid engine: %d", int(e)))
	}
}

//EngineFromName parses an engine name as given on the command line.
func EngineFromName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "dp":
		return EngineDP, nil
	case "dpll":
		return EngineDPLL, nil
	case "resolution":
		return EngineResolution, nil
	}
	return 0, fmt.Errorf("unknown engine: %q", name)
}

//New constructs the selected engine for f. A nil budget means an
//unbounded solve.
func New(e Engine, f *cnf.Formula, b *Budget) Solver {
	switch e {
	case EngineDP:
		return NewDP(f, b)
	case EngineDPLL:
		return NewDPLL(f, b)
	case EngineResolution:
		return NewResolution(f, b)
	default:
		panic(fmt.Errorf("invalid engine: %d", int(e)))
	}
}
