package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/CsizmaAle/SAT-problem/cnf"
	"github.com/CsizmaAle/SAT-problem/gen"
	"github.com/CsizmaAle/SAT-problem/report"
	"github.com/CsizmaAle/SAT-problem/solver"
)

var DebugMode bool

func GetFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "Debug mode",
		},
		cli.BoolTFlag{
			Name:  "verbosity,verb",
			Usage: "Verbosity mode",
		},
	}
}

func budgetFlags() []cli.Flag {
	return []cli.Flag{
		cli.Int64Flag{
			Name:  "max-steps",
			Usage: "Limit on solve steps allowed per engine run (0 = unlimited)",
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "Limit on CPU time allowed per engine run in seconds (0 = unlimited)",
		},
	}
}

func newBudget(c *cli.Context) solver.Budget {
	return solver.Budget{
		MaxSteps: c.Int64("max-steps"),
		Timeout:  time.Duration(c.Int("cpu-time-limit")) * time.Second,
	}
}

func readSetsFile(name string) ([]*cnf.Formula, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	defer fp.Close()
	return cnf.ReadSets(fp)
}

func genCommand() cli.Command {
	return cli.Command{
		Name:  "gen",
		Usage: "Generate random clause sets and write them to an input file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "output-file, out",
				Usage: "File the generated clause sets are written to",
				Value: "input.txt",
			},
			cli.IntFlag{
				Name:  "num-formulas",
				Usage: "Number of clause sets to generate",
				Value: gen.Default.Formulas,
			},
			cli.IntFlag{
				Name:  "num-clauses",
				Usage: "Number of clauses per set",
				Value: gen.Default.Clauses,
			},
			cli.IntFlag{
				Name:  "num-vars",
				Usage: "Variables range over [1, num-vars]",
				Value: gen.Default.Vars,
			},
			cli.Float64Flag{
				Name:  "unsat-prob",
				Usage: "Probability of planting a contradictory unit-clause pair",
				Value: gen.Default.UnsatProb,
			},
			cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed (0 picks one from the clock)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := gen.Config{
				Formulas:  c.Int("num-formulas"),
				Clauses:   c.Int("num-clauses"),
				Vars:      c.Int("num-vars"),
				UnsatProb: c.Float64("unsat-prob"),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			seed := c.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			if DebugMode {
				pp.Fprintln(os.Stderr, cfg)
			}
			sets := gen.Formulas(rand.New(rand.NewSource(seed)), cfg)

			name := c.String("output-file")
			fp, err := os.Create(name)
			if err != nil {
				return errors.Wrapf(err, "creating %s", name)
			}
			defer fp.Close()
			if err := cnf.WriteSets(fp, sets); err != nil {
				return err
			}
			fmt.Printf("%s generated with %d clause sets.\n", name, len(sets))
			return nil
		},
	}
}

func printModel(a cnf.Assignment) {
	fmt.Print("v ")
	for _, l := range a.Literals() {
		fmt.Printf("%d ", l)
	}
	fmt.Print("0\n")
}

func printRunStatistics(engine solver.Engine, stats solver.Statistics, steps int64, elapsed time.Duration) {
	fmt.Printf("c ================================================================================\n")
	fmt.Printf("c engine: %12s\n", engine)
	fmt.Printf("c decisions: %12d\n", stats.DecisionCount)
	fmt.Printf("c propagations: %12d\n", stats.PropagationCount+stats.PureCount)
	fmt.Printf("c resolvents: %12d\n", stats.ResolventCount)
	fmt.Printf("c eliminations: %12d\n", stats.EliminationCount)
	fmt.Printf("c steps: %12d\n", steps)
	fmt.Printf("c cpu time: %12f\n", elapsed.Seconds())
}

//engineStats pulls the per-run counters back out of the dispatched
//engine.
func engineStats(s solver.Solver) solver.Statistics {
	switch e := s.(type) {
	case *solver.DP:
		return e.Stats
	case *solver.DPLL:
		return e.Stats
	case *solver.Resolution:
		return e.Stats
	default:
		return solver.Statistics{}
	}
}

func solveCommand() cli.Command {
	return cli.Command{
		Name:  "solve",
		Usage: "Solve every clause set in an input file with one engine",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "input-file, in",
				Usage: "Input file of clause sets to solve (required)",
				Value: "None",
			},
			cli.StringFlag{
				Name:  "engine",
				Usage: "Engine to run: dp, dpll, resolution or auto",
				Value: "auto",
			},
		}, budgetFlags()...),
		Action: func(c *cli.Context) error {
			if c.String("input-file") == "None" {
				return fmt.Errorf("input-file is required.")
			}
			auto := c.String("engine") == "auto"
			var engine solver.Engine
			if !auto {
				var err error
				engine, err = solver.EngineFromName(c.String("engine"))
				if err != nil {
					return err
				}
			}

			sets, err := readSetsFile(c.String("input-file"))
			if err != nil {
				return err
			}
			verbose := c.GlobalBool("verbosity")
			for i, f := range sets {
				stats := cnf.Measure(f)
				if auto {
					engine = report.Pick(stats)
				}
				if verbose {
					fmt.Printf("c set %d: engine %s (%s)\n", i+1, engine, stats)
				}
				if DebugMode {
					pp.Fprintln(os.Stderr, stats)
				}

				budget := newBudget(c)
				s := solver.New(engine, f, &budget)
				start := time.Now()
				res, err := s.Solve()
				elapsed := time.Since(start)
				if verbose {
					printRunStatistics(engine, engineStats(s), budget.Steps(), elapsed)
				}
				if errors.Is(err, solver.ErrBudgetExceeded) {
					fmt.Println("s INDETERMINATE")
					continue
				}
				if err != nil {
					return err
				}
				if res.Status == solver.Sat {
					fmt.Println("s SATISFIABLE")
					printModel(res.Assignment)
				} else {
					fmt.Println("s UNSATISFIABLE")
				}
			}
			return nil
		},
	}
}

func compareCommand() cli.Command {
	return cli.Command{
		Name:  "compare",
		Usage: "Run every engine on every clause set and tabulate the timings",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "input-file, in",
				Usage: "Input file of clause sets to solve (required)",
				Value: "None",
			},
			cli.StringFlag{
				Name:  "result-output-file, out",
				Usage: "File the comparison report is written to",
				Value: "output.txt",
			},
		}, budgetFlags()...),
		Action: func(c *cli.Context) error {
			if c.String("input-file") == "None" {
				return fmt.Errorf("input-file is required.")
			}
			sets, err := readSetsFile(c.String("input-file"))
			if err != nil {
				return err
			}

			disagreements := 0
			results := make([][]report.Outcome, 0, len(sets))
			for i, f := range sets {
				outcomes, err := report.Run(f, solver.Engines, newBudget(c))
				if err != nil {
					return errors.Wrapf(err, "clause set %d", i+1)
				}
				if err := report.Agreement(outcomes); err != nil {
					disagreements++
					logrus.WithField("set", i+1).Error(err)
				}
				results = append(results, outcomes)
			}

			name := c.String("result-output-file")
			fp, err := os.Create(name)
			if err != nil {
				return errors.Wrapf(err, "creating %s", name)
			}
			defer fp.Close()
			if err := report.Write(fp, results); err != nil {
				return err
			}
			fmt.Printf("Processed %d clause sets. Results written to '%s'.\n", len(sets), name)
			if disagreements > 0 {
				return fmt.Errorf("engines disagreed on %d clause sets", disagreements)
			}
			return nil
		},
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "satcmp"
	app.Usage = "Decide CNF satisfiability with DP, DPLL and Resolution, and compare them"
	app.Flags = GetFlags()
	app.Commands = []cli.Command{genCommand(), solveCommand(), compareCommand()}

	app.Before = func(c *cli.Context) error {
		DebugMode = c.Bool("debug")
		if DebugMode {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
