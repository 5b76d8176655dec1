package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Gini is an Engine backed by the gini solver.
type Gini struct{}

// NewGini returns a gini-backed engine.
func NewGini() Gini { return Gini{} }

// Solve loads the clauses into a fresh solver instance and returns an
// iterator over its models. Every call creates its own solver, so the
// returned iterator can be restarted by solving again.
func (Gini) Solve(clauses [][]int, nVars int) (Assignments, error) {
	if nVars < 0 {
		return nil, fmt.Errorf("sat: negative variable count %d", nVars)
	}
	g := gini.New()
	seen := make([]bool, nVars+1)
	for _, clause := range clauses {
		for _, l := range clause {
			if l == 0 {
				return nil, fmt.Errorf("sat: literal 0 in clause %v", clause)
			}
			v := l
			if v < 0 {
				v = -v
			}
			if v > nVars {
				return nil, fmt.Errorf("sat: literal %d outside variable range 1..%d", l, nVars)
			}
			seen[v] = true
			g.Add(dimacsLit(l))
		}
		g.Add(z.LitNull)
	}
	// Register free variables so that models and blocking clauses cover
	// them. A clause (v ∨ ¬v) is trivially true but makes v known.
	for v := 1; v <= nVars; v++ {
		if !seen[v] {
			g.Add(z.Var(v).Pos())
			g.Add(z.Var(v).Neg())
			g.Add(z.LitNull)
		}
	}
	return &giniAssignments{g: g, nVars: nVars}, nil
}

func dimacsLit(l int) z.Lit {
	if l < 0 {
		return z.Var(-l).Neg()
	}
	return z.Var(l).Pos()
}

type giniAssignments struct {
	g      *gini.Gini
	nVars  int
	last   []bool
	closed bool
	err    error
}

func (a *giniAssignments) Next() ([]bool, bool) {
	if a.closed {
		a.err = ErrReleased
		return nil, false
	}
	if a.last != nil {
		// Block the previous model so the next solution differs.
		for v := 1; v <= a.nVars; v++ {
			if a.last[v-1] {
				a.g.Add(z.Var(v).Neg())
			} else {
				a.g.Add(z.Var(v).Pos())
			}
		}
		a.g.Add(z.LitNull)
	}
	if a.g.Solve() != 1 {
		return nil, false
	}
	m := make([]bool, a.nVars)
	for v := 1; v <= a.nVars; v++ {
		m[v-1] = a.g.Value(z.Var(v).Pos())
	}
	a.last = m
	out := make([]bool, len(m))
	copy(out, m)
	return out, true
}

func (a *giniAssignments) Close() error {
	a.closed = true
	a.g = nil
	return nil
}

func (a *giniAssignments) Err() error { return a.err }
