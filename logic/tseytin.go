package logic

import (
	"fmt"
	"strings"

	"github.com/gologic/prop/op"
)

// AuxPrefix is the reserved name prefix of auxiliary atoms introduced by the
// Tseytin transformation. User atoms must not use it.
const AuxPrefix = "@aux-"

// IsAux reports whether an atom name denotes a Tseytin auxiliary atom.
func IsAux(name string) bool { return strings.HasPrefix(name, AuxPrefix) }

// A ClauseSet is an equisatisfiable CNF encoding of a proposition: clauses
// over signed integer literals, plus the ordered atom list mapping solver
// variable indices back to atoms. Variable i+1 corresponds to Atoms()[i];
// original atoms come first, auxiliaries after them.
type ClauseSet struct {
	clauses [][]int
	atoms   []Atom
	index   map[uint64]int
	nAux    int
}

// Clauses returns the CNF clauses.
func (cs *ClauseSet) Clauses() [][]int { return cs.clauses }

// Atoms returns the ordered atoms, originals before auxiliaries.
func (cs *ClauseSet) Atoms() []Atom { return cs.atoms }

// NumVars returns the total variable count, auxiliaries included.
func (cs *ClauseSet) NumVars() int { return len(cs.atoms) }

// NumAux returns the number of auxiliary atoms introduced.
func (cs *ClauseSet) NumAux() int { return cs.nAux }

// Valuation maps a solver assignment back to the original named atoms,
// filtering out auxiliaries.
func (cs *ClauseSet) Valuation(assignment []bool) map[string]bool {
	m := make(map[string]bool)
	for i, a := range cs.atoms {
		if i >= len(assignment) {
			break
		}
		v, ok := a.(Variable)
		if !ok || IsAux(v.Name) {
			continue
		}
		m[v.Name] = assignment[i]
	}
	return m
}

// Transform encodes a proposition as an equisatisfiable CNF clause set using
// the Tseytin transformation: one post-order traversal introducing a fresh
// auxiliary atom per compound sub-expression, in time and space linear in
// the formula size. It fails when an original atom name collides with the
// reserved auxiliary prefix.
func Transform(p Proposition) (*ClauseSet, error) {
	cs := &ClauseSet{index: make(map[uint64]int)}
	for a := range Atoms(p) {
		if v, ok := a.(Variable); ok && IsAux(v.Name) {
			return nil, fmt.Errorf("atom name %q collides with the reserved auxiliary prefix %q", v.Name, AuxPrefix)
		}
		cs.varOf(a)
	}
	if c, ok := p.(Constant); ok {
		if v, isBool := c.Truth(); isBool {
			if !v {
				cs.emit()
			}
			return cs, nil
		}
	}
	root, err := cs.encode(p)
	if err != nil {
		return nil, err
	}
	cs.emit(root)
	return cs, nil
}

// varOf returns the 1-based variable index of an atom, registering it on
// first use.
func (cs *ClauseSet) varOf(a Atom) int {
	k := atomKey(a)
	if idx, ok := cs.index[k]; ok {
		return idx
	}
	cs.atoms = append(cs.atoms, a)
	idx := len(cs.atoms)
	cs.index[k] = idx
	return idx
}

// aux allocates a fresh auxiliary atom and returns its variable index.
func (cs *ClauseSet) aux() int {
	cs.nAux++
	a := Variable{Name: fmt.Sprintf("%s%d", AuxPrefix, cs.nAux)}
	cs.atoms = append(cs.atoms, a)
	return len(cs.atoms)
}

func (cs *ClauseSet) emit(lits ...int) {
	cs.clauses = append(cs.clauses, lits)
}

// encode returns the signed literal standing for p, emitting the gate
// clauses that tie auxiliary atoms to their sub-expressions. It fails when a
// node's operator has no rewriting over and/or/not.
func (cs *ClauseSet) encode(p Proposition) (int, error) {
	switch q := p.(type) {
	case Constant:
		if v, ok := q.Truth(); ok {
			z := cs.aux()
			if v {
				cs.emit(z)
			} else {
				cs.emit(-z)
			}
			return z, nil
		}
		return cs.varOf(q), nil
	case Variable:
		return cs.varOf(q), nil
	case Lit:
		v := cs.varOf(q.Atom)
		if q.Neg {
			return -v, nil
		}
		return v, nil
	case Tree:
		switch q.op {
		case op.Id:
			return cs.encode(q.kids[0])
		case op.Not:
			l, err := cs.encode(q.kids[0])
			if err != nil {
				return 0, err
			}
			return cs.notGate(l), nil
		case op.And, op.Or:
			lits := make([]int, len(q.kids))
			for i, k := range q.kids {
				l, err := cs.encode(k)
				if err != nil {
					return 0, err
				}
				lits[i] = l
			}
			return cs.gate(q.op, lits), nil
		}
		// Trees built through Apply only contain and/or/not; a directly
		// constructed node with another operator is rewritten first.
		rewritten, err := Apply(q.op, q.kids...)
		if err != nil {
			return 0, err
		}
		return cs.encode(rewritten)
	case Clause:
		lits := make([]int, len(q.lits))
		for i, l := range q.lits {
			v, err := cs.encode(l)
			if err != nil {
				return 0, err
			}
			lits[i] = v
		}
		return cs.gate(q.op, lits), nil
	case Normal:
		lits := make([]int, len(q.clauses))
		for i, c := range q.clauses {
			v, err := cs.encode(c)
			if err != nil {
				return 0, err
			}
			lits[i] = v
		}
		return cs.gate(q.op, lits), nil
	}
	return 0, fmt.Errorf("cannot encode %s", shapeName(p))
}

// notGate emits the clauses for z ⟺ ¬l and returns z.
func (cs *ClauseSet) notGate(l int) int {
	z := cs.aux()
	cs.emit(-z, -l)
	cs.emit(z, l)
	return z
}

// gate emits the clauses for z ⟺ op(lits...) and returns z. For a
// conjunction: (¬z∨l_i) for each i and (z∨¬l_1∨...∨¬l_n); dually for a
// disjunction.
func (cs *ClauseSet) gate(o *op.Op, lits []int) int {
	z := cs.aux()
	long := make([]int, 0, len(lits)+1)
	if o == op.And {
		for _, l := range lits {
			cs.emit(-z, l)
			long = append(long, -l)
		}
		cs.emit(append([]int{z}, long...)...)
	} else {
		for _, l := range lits {
			cs.emit(z, -l)
			long = append(long, l)
		}
		cs.emit(append([]int{-z}, long...)...)
	}
	return z
}
