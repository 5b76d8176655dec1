package logic

import (
	"fmt"
	"iter"

	"github.com/mitchellh/hashstructure"

	"github.com/gologic/prop/op"
)

// shapeName names a proposition's shape for error reporting.
func shapeName(p Proposition) string {
	switch p.(type) {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case Lit:
		return "literal"
	case Tree:
		return "tree"
	case Clause:
		return "clause"
	case Normal:
		return "normal form"
	}
	return "proposition"
}

// ToTree rebuilds any proposition as a general tree. The conversion is
// total: atoms become identity trees, flat forms become operator nodes over
// their elements.
func ToTree(p Proposition) Tree {
	switch q := p.(type) {
	case Constant:
		if v, ok := q.Truth(); ok {
			if v {
				return Tree{op: op.True}
			}
			return Tree{op: op.False}
		}
		return Tree{op: op.Id, kids: []Proposition{q}}
	case Variable:
		return Tree{op: op.Id, kids: []Proposition{q}}
	case Lit:
		return Tree{op: q.Op(), kids: []Proposition{q.Atom}}
	case Tree:
		return q
	case Clause:
		return Tree{op: q.op, kids: q.Children()}
	case Normal:
		kids := make([]Proposition, len(q.clauses))
		for i, c := range q.clauses {
			kids[i] = ToTree(c)
		}
		return Tree{op: q.op, kids: kids}
	}
	return Tree{op: op.Id, kids: []Proposition{p}}
}

// ToLit converts a proposition to a literal when it has literal shape: an
// atom, possibly under identity or negation. Anything else fails with a
// NotRepresentableError.
func ToLit(p Proposition) (Lit, error) {
	switch q := p.(type) {
	case Constant:
		return Lit{Atom: q}, nil
	case Variable:
		return Lit{Atom: q}, nil
	case Lit:
		return q, nil
	case Tree:
		switch q.op {
		case op.Id:
			return ToLit(q.kids[0])
		case op.Not:
			l, err := ToLit(q.kids[0])
			if err != nil {
				return Lit{}, err
			}
			return Lit{Neg: !l.Neg, Atom: l.Atom}, nil
		}
	case Clause:
		if len(q.lits) == 1 {
			return q.lits[0], nil
		}
	case Normal:
		if len(q.clauses) == 1 {
			return ToLit(q.clauses[0])
		}
	}
	return Lit{}, &NotRepresentableError{From: shapeName(p), To: "literal"}
}

// ToClause converts a proposition to a flat clause over the given and/or
// operator, without distributing. It fails with a NotRepresentableError when
// the structure does not already have clause shape.
func ToClause(o *op.Op, p Proposition) (Clause, error) {
	if o != op.And && o != op.Or {
		return Clause{}, &UndefinedOpError{Op: o.Name(), Reason: "clause operator must be and or or"}
	}
	switch q := p.(type) {
	case Constant:
		if v, ok := q.Truth(); ok {
			// The empty clause is the operator's neutral element.
			if v == (o == op.And) {
				return Clause{op: o}, nil
			}
			return Clause{}, &NotRepresentableError{From: q.String(), To: o.Name() + "-clause"}
		}
	case Tree:
		if q.op == o {
			lits := make([]Lit, len(q.kids))
			for i, k := range q.kids {
				l, err := ToLit(k)
				if err != nil {
					return Clause{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + "-clause"}
				}
				lits[i] = l
			}
			return NewClause(o, lits...)
		}
	case Clause:
		if q.op == o {
			return q, nil
		}
		if len(q.lits) == 1 {
			return NewClause(o, q.lits[0])
		}
		return Clause{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + "-clause"}
	case Normal:
		if len(q.clauses) == 1 {
			return ToClause(o, q.clauses[0])
		}
		return Clause{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + "-clause"}
	}
	if l, err := ToLit(p); err == nil {
		return NewClause(o, l)
	}
	return Clause{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + "-clause"}
}

// ToNormal converts a proposition to a normal form with the given outer
// and/or operator, without distributing. Structures that would require
// distribution fail with a NotRepresentableError; use Normalize for the
// total conversion.
func ToNormal(o *op.Op, p Proposition) (Normal, error) {
	if o != op.And && o != op.Or {
		return Normal{}, &UndefinedOpError{Op: o.Name(), Reason: "normal form operator must be and or or"}
	}
	inner := o.Dual()
	switch q := p.(type) {
	case Constant:
		if v, ok := q.Truth(); ok {
			return constNormal(o, v), nil
		}
	case Tree:
		if q.op == o {
			clauses := make([]Clause, len(q.kids))
			for i, k := range q.kids {
				c, err := ToClause(inner, k)
				if err != nil {
					return Normal{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + " normal form"}
				}
				clauses[i] = c
			}
			return NewNormal(o, clauses...)
		}
		if c, err := ToClause(inner, q); err == nil {
			return NewNormal(o, c)
		}
	case Clause:
		if q.op == inner {
			return NewNormal(o, q)
		}
		// Same operator as the outer form: each literal becomes its own
		// singleton clause.
		clauses := make([]Clause, len(q.lits))
		for i, l := range q.lits {
			clauses[i] = Clause{op: inner, lits: []Lit{l}}
		}
		return NewNormal(o, clauses...)
	case Normal:
		if q.op == o {
			return q, nil
		}
		if len(q.clauses) <= 1 {
			return ToNormal(o, ToTree(q))
		}
		return Normal{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + " normal form"}
	}
	if c, err := ToClause(inner, p); err == nil {
		return NewNormal(o, c)
	}
	return Normal{}, &NotRepresentableError{From: shapeName(p), To: o.Name() + " normal form"}
}

// constNormal represents a truth constant in the given normal form: the
// neutral constant is the empty form, its dual a single empty clause.
func constNormal(o *op.Op, v bool) Normal {
	if v == (o == op.And) {
		return Normal{op: o}
	}
	return Normal{op: o, clauses: []Clause{{op: o.Dual()}}}
}

// atomKey is a content hash identifying an atom.
func atomKey(a Atom) uint64 {
	h, err := hashstructure.Hash(a, nil)
	if err != nil {
		panic(fmt.Errorf("cannot hash atom %s: %v", a, err))
	}
	return h
}

// Atoms returns a lazy, restartable sequence of the unique atoms reachable
// from p, in pre-order first-occurrence order. Atoms whose occurrence was
// simplified away during construction do not appear.
func Atoms(p Proposition) iter.Seq[Atom] {
	return func(yield func(Atom) bool) {
		seen := make(map[uint64]struct{})
		var walk func(Proposition) bool
		walk = func(q Proposition) bool {
			if a, ok := q.(Atom); ok {
				k := atomKey(a)
				if _, dup := seen[k]; dup {
					return true
				}
				seen[k] = struct{}{}
				return yield(a)
			}
			if l, ok := q.(Lit); ok {
				return walk(l.Atom)
			}
			for _, k := range q.Children() {
				if !walk(k) {
					return false
				}
			}
			return true
		}
		walk(p)
	}
}

// MapAtoms applies f to every atom of p and rebuilds the proposition,
// preserving its shape.
func MapAtoms(p Proposition, f func(Atom) Atom) Proposition {
	switch q := p.(type) {
	case Constant:
		return f(q)
	case Variable:
		return f(q)
	case Lit:
		return Lit{Neg: q.Neg, Atom: f(q.Atom)}
	case Tree:
		kids := make([]Proposition, len(q.kids))
		for i, k := range q.kids {
			kids[i] = MapAtoms(k, f)
		}
		return Tree{op: q.op, kids: kids}
	case Clause:
		lits := make([]Lit, len(q.lits))
		for i, l := range q.lits {
			lits[i] = Lit{Neg: l.Neg, Atom: f(l.Atom)}
		}
		return Clause{op: q.op, lits: dedupLits(lits)}
	case Normal:
		clauses := make([]Clause, len(q.clauses))
		for i, c := range q.clauses {
			clauses[i] = MapAtoms(c, f).(Clause)
		}
		return Normal{op: q.op, clauses: dedupClauses(clauses)}
	}
	return p
}
