package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//readClause parses one line of space-separated signed integers.
func readClause(line string) (clause []int, err error) {
	values := strings.Fields(line)
	clause = make([]int, 0, len(values))
	for _, value := range values {
		parsedValue, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing clause %q", line)
		}
		clause = append(clause, parsedValue)
	}
	return clause, nil
}

//ReadSets parses the streaming clause-set format: one clause per line
//of space-separated signed integers, a blank line separating formulas.
//The variable count of each formula is the largest identifier it
//mentions.
func ReadSets(r io.Reader) ([]*Formula, error) {
	in := bufio.NewScanner(r)
	var sets []*Formula
	var current [][]int

	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		f, err := FromClauses(current)
		if err != nil {
			return errors.Wrapf(err, "clause set %d", len(sets)+1)
		}
		sets = append(sets, f)
		current = nil
		return nil
	}

	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		clause, err := readClause(line)
		if err != nil {
			return nil, err
		}
		current = append(current, clause)
	}
	if err := in.Err(); err != nil {
		return nil, errors.Wrap(err, "reading clause sets")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return sets, nil
}

//WriteSets renders formulas in the same format ReadSets consumes: one
//clause per line, a blank line after each formula.
func WriteSets(w io.Writer, sets []*Formula) error {
	bw := bufio.NewWriter(w)
	for _, f := range sets {
		for _, c := range f.Clauses {
			for i, l := range c {
				if i > 0 {
					if _, err := bw.WriteString(" "); err != nil {
						return errors.Wrap(err, "writing clause sets")
					}
				}
				if _, err := bw.WriteString(strconv.Itoa(int(l))); err != nil {
					return errors.Wrap(err, "writing clause sets")
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return errors.Wrap(err, "writing clause sets")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing clause sets")
		}
	}
	return errors.Wrap(bw.Flush(), "writing clause sets")
}

//String renders f in the on-disk clause-set format, without the
//trailing separator line.
func (f *Formula) String() string {
	var b strings.Builder
	for i, c := range f.Clauses {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Key())
	}
	return b.String()
}

//Stats summarizes the instance features consulted by engine selection.
type Stats struct {
	Vars    int
	Clauses int
	Ratio   float64
}

//Measure computes the instance statistics of f.
func Measure(f *Formula) Stats {
	s := Stats{Vars: f.NumVars, Clauses: len(f.Clauses)}
	if s.Vars > 0 {
		s.Ratio = float64(s.Clauses) / float64(s.Vars)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%d vars, %d clauses, ratio %.2f", s.Vars, s.Clauses, s.Ratio)
}
