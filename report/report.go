//Package report runs solving engines against the same formulas, times
//them, checks that their verdicts agree, and renders the comparison in
//the tabulated per-set output format. It also houses the engine
//selection policy, a pure function of instance statistics kept outside
//the engines themselves.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/CsizmaAle/SAT-problem/cnf"
	"github.com/CsizmaAle/SAT-problem/solver"
)

//Outcome is one engine's run on one formula. Err is non-nil when the
//run ended without a verdict (budget exceeded); Result is then
//meaningless.
type Outcome struct {
	Engine  solver.Engine
	Result  solver.Result
	Err     error
	Elapsed time.Duration
}

//verdict renders the outcome the way the comparison report prints it.
func (o Outcome) verdict() string {
	if o.Err != nil {
		return "Indeterminate"
	}
	switch o.Result.Status {
	case solver.Sat:
		return "Satisfiable"
	default:
		return "Unsatisfiable"
	}
}

//Run solves f with each engine in turn. Every engine gets a fresh copy
//of budget, so step and time allowances apply per run, not across the
//batch. A budget-exhausted engine yields an Outcome with Err set and
//the batch continues.
func Run(f *cnf.Formula, engines []solver.Engine, budget solver.Budget) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(engines))
	for _, e := range engines {
		b := budget
		s := solver.New(e, f, &b)
		start := time.Now()
		res, err := s.Solve()
		elapsed := time.Since(start)
		if err != nil && !errors.Is(err, solver.ErrBudgetExceeded) {
			return nil, errors.Wrapf(err, "engine %s", e)
		}
		logrus.WithFields(logrus.Fields{
			"engine":  e.String(),
			"elapsed": elapsed,
			"steps":   b.Steps(),
		}).Debug("engine finished")
		outcomes = append(outcomes, Outcome{Engine: e, Result: res, Err: err, Elapsed: elapsed})
	}
	return outcomes, nil
}

//Agreement checks that every engine that reached a verdict reached the
//same one. Runs that ran out of budget prove nothing and are skipped.
func Agreement(outcomes []Outcome) error {
	got := map[string]string{}
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		got[o.Engine.String()] = o.Result.Status.String()
	}
	if len(got) < 2 {
		return nil
	}
	var consensus string
	for _, o := range outcomes {
		if o.Err == nil {
			consensus = o.Result.Status.String()
			break
		}
	}
	want := map[string]string{}
	for name := range got {
		want[name] = consensus
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return errors.Errorf("engines disagree on the verdict (-want +got):\n%s", diff)
	}
	return nil
}

//Write renders outcomes per formula set in the comparison report
//format:
//
//	Set 1:
//	  DPLL: Satisfiable, 0.000123 sec
func Write(w io.Writer, sets [][]Outcome) error {
	for i, outcomes := range sets {
		if _, err := fmt.Fprintf(w, "Set %d:\n", i+1); err != nil {
			return errors.Wrap(err, "writing report")
		}
		for _, o := range outcomes {
			if _, err := fmt.Fprintf(w, "  %s: %s, %.6f sec\n", o.Engine, o.verdict(), o.Elapsed.Seconds()); err != nil {
				return errors.Wrap(err, "writing report")
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}

//Selection thresholds. These are heuristics over the instance class
//the tool generates, not a correctness contract; callers wanting a
//different policy swap Pick out, the engines never consult it.
const (
	tinyClauses = 8
	tinyVars    = 6
	denseRatio  = 6.0
)

//Pick chooses the engine expected to decide an instance with the given
//statistics fastest. Saturation only pays off on tiny instances, and
//elimination collapses heavily constrained ones quickly; everything
//else goes to the search engine.
func Pick(s cnf.Stats) solver.Engine {
	switch {
	case s.Clauses <= tinyClauses && s.Vars <= tinyVars:
		return solver.EngineResolution
	case s.Ratio >= denseRatio:
		return solver.EngineDP
	default:
		return solver.EngineDPLL
	}
}
