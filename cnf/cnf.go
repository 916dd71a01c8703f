//Package cnf holds the clause model shared by all solving engines:
//literals, set-semantics clauses, formulas and partial assignments,
//plus the primitive operations (complement, tautology check, resolvent
//computation, unit and pure literal detection) the engines build on.
package cnf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//Lit is a signed non-zero literal: the magnitude is the variable
//identifier, the sign is the polarity.
type Lit int

//Var returns the variable identifier of l.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

//Pos returns a boolean indicating whether l has positive polarity.
func (l Lit) Pos() bool {
	return l > 0
}

//Neg returns the complement of l.
func (l Lit) Neg() Lit {
	return -l
}

//Clause is a disjunction of literals with set semantics: sorted by
//variable identifier (negative polarity first on equal variables) and
//duplicate-free. Build one with NewClause to keep that normal form.
type Clause []Lit

//NewClause normalizes lits into a Clause: duplicates collapse, order is
//canonical. A literal and its complement both survive normalization so
//that Tautology can detect them.
func NewClause(lits []Lit) Clause {
	c := make(Clause, len(lits))
	copy(c, lits)
	sort.Slice(c, func(i, j int) bool {
		vi, vj := c[i].Var(), c[j].Var()
		if vi != vj {
			return vi < vj
		}
		return c[i] < c[j]
	})
	copiedIdx := 0
	for i := 0; i < len(c); i++ {
		if i > 0 && c[i] == c[copiedIdx-1] {
			continue
		}
		c[copiedIdx] = c[i]
		copiedIdx++
	}
	return c[:copiedIdx]
}

//Empty reports whether c is the empty clause, boolean falsity.
func (c Clause) Empty() bool {
	return len(c) == 0
}

//Unit reports whether c forces its single literal.
func (c Clause) Unit() bool {
	return len(c) == 1
}

//Has reports whether c contains the literal p.
func (c Clause) Has(p Lit) bool {
	for _, l := range c {
		if l == p {
			return true
		}
	}
	return false
}

//Tautology reports whether c contains a literal and its complement.
//Such a clause is always true and must never enter a working set.
func (c Clause) Tautology() bool {
	for i := 1; i < len(c); i++ {
		if c[i] == c[i-1].Neg() {
			return true
		}
	}
	return false
}

//Key returns the canonical text form of c, used for exact-duplicate
//detection in the elimination and derivation working sets.
func (c Clause) Key() string {
	var b strings.Builder
	for i, l := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}
	return b.String()
}

//Satisfied reports whether some literal of c is true under a.
func (c Clause) Satisfied(a Assignment) bool {
	for _, l := range c {
		if a.LitValue(l) == True {
			return true
		}
	}
	return false
}

//Free returns the literals of c whose variables are unassigned under a.
//Callers check Satisfied first: a satisfied clause constrains nothing.
func (c Clause) Free(a Assignment) Clause {
	var free Clause
	for _, l := range c {
		if a.LitValue(l) == Unassigned {
			free = append(free, l)
		}
	}
	return free
}

//Resolve computes the resolvent of a and b on variable v: every literal
//of both clauses except v's pair, collapsed to set form. ok is false
//when the resolvent is tautological; such a clause carries no
//information and the caller must discard it.
func Resolve(a, b Clause, v int) (res Clause, ok bool) {
	lits := make([]Lit, 0, len(a)+len(b)-2)
	for _, l := range a {
		if l.Var() != v {
			lits = append(lits, l)
		}
	}
	for _, l := range b {
		if l.Var() != v {
			lits = append(lits, l)
		}
	}
	res = NewClause(lits)
	if res.Tautology() {
		return nil, false
	}
	return res, true
}

//Pures returns one literal per variable that occurs with a single
//polarity across clauses, in ascending variable order.
func Pures(clauses []Clause) []Lit {
	const (
		posSeen = 1 << 0
		negSeen = 1 << 1
	)
	seen := map[int]uint8{}
	for _, c := range clauses {
		for _, l := range c {
			if l.Pos() {
				seen[l.Var()] |= posSeen
			} else {
				seen[l.Var()] |= negSeen
			}
		}
	}
	vars := make([]int, 0, len(seen))
	for v, polarity := range seen {
		if polarity != posSeen|negSeen {
			vars = append(vars, v)
		}
	}
	sort.Ints(vars)
	pures := make([]Lit, len(vars))
	for i, v := range vars {
		if seen[v] == posSeen {
			pures[i] = Lit(v)
		} else {
			pures[i] = Lit(-v)
		}
	}
	return pures
}

//MalformedInputError reports input rejected at construction time. It is
//never recovered internally: the caller must fix the input.
type MalformedInputError struct {
	Detail string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Detail
}

//Formula is a conjunction of clauses over the variables 1..NumVars.
//The DPLL and Resolution engines treat it as immutable; the DP engine
//rewrites its own working copy.
type Formula struct {
	NumVars int
	Clauses []Clause
}

//New builds a Formula from raw signed-integer clauses and validates
//them against the declared variable count.
func New(numVars int, clauses [][]int) (*Formula, error) {
	if numVars < 1 {
		return nil, &MalformedInputError{Detail: fmt.Sprintf("variable count must be positive: %d", numVars)}
	}
	f := &Formula{NumVars: numVars, Clauses: make([]Clause, 0, len(clauses))}
	for i, raw := range clauses {
		lits := make([]Lit, len(raw))
		for j, value := range raw {
			if value == 0 {
				return nil, &MalformedInputError{Detail: fmt.Sprintf("clause %d contains literal 0", i+1)}
			}
			if value > numVars || value < -numVars {
				return nil, &MalformedInputError{Detail: fmt.Sprintf("clause %d references variable %d beyond the declared count %d", i+1, Lit(value).Var(), numVars)}
			}
			lits[j] = Lit(value)
		}
		f.Clauses = append(f.Clauses, NewClause(lits))
	}
	return f, nil
}

//FromClauses builds a Formula whose variable count is the largest
//identifier mentioned, for inputs that carry no declared count.
func FromClauses(clauses [][]int) (*Formula, error) {
	numVars := 1
	for _, raw := range clauses {
		for _, value := range raw {
			if v := Lit(value).Var(); v > numVars {
				numVars = v
			}
		}
	}
	return New(numVars, clauses)
}

//Value is the tri-state truth value of a variable. Unassigned is a
//distinct state, never conflated with False.
type Value int8

const (
	Unassigned Value = iota
	True
	False
)

//Assignment is a partial mapping from variable identifier to Value,
//indexed directly by identifier (index 0 is unused).
type Assignment []Value

//NewAssignment returns an all-unassigned Assignment for numVars
//variables.
func NewAssignment(numVars int) Assignment {
	return make(Assignment, numVars+1)
}

//LitValue returns the truth value of the literal l under a.
func (a Assignment) LitValue(l Lit) Value {
	switch a[l.Var()] {
	case Unassigned:
		return Unassigned
	case True:
		if l.Pos() {
			return True
		}
		return False
	default:
		if l.Pos() {
			return False
		}
		return True
	}
}

//Assign binds l's variable so that l is true. Binding a variable to
//both values is trail corruption, a programming error, and panics.
func (a Assignment) Assign(l Lit) {
	value := False
	if l.Pos() {
		value = True
	}
	v := l.Var()
	if a[v] != Unassigned && a[v] != value {
		panic(fmt.Errorf("variable %d assigned to both values", v))
	}
	a[v] = value
}

//Unassign clears the binding of variable v.
func (a Assignment) Unassign(v int) {
	a[v] = Unassigned
}

//Copy returns an independent copy of a.
func (a Assignment) Copy() Assignment {
	c := make(Assignment, len(a))
	copy(c, a)
	return c
}

//Literals renders the decided variables as signed integers in
//ascending variable order, the sign carrying the truth value.
func (a Assignment) Literals() []int {
	var out []int
	for v := 1; v < len(a); v++ {
		switch a[v] {
		case True:
			out = append(out, v)
		case False:
			out = append(out, -v)
		}
	}
	return out
}

//Satisfies reports whether a makes every clause of f true.
func (a Assignment) Satisfies(f *Formula) bool {
	for _, c := range f.Clauses {
		if !c.Satisfied(a) {
			return false
		}
	}
	return true
}
