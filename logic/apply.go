package logic

import (
	"github.com/pkg/errors"

	"github.com/gologic/prop/op"
)

// Apply builds the application of an operator to the given arguments,
// simplifying where cheap. The arity is checked on every application.
//
// Truth constants trigger identity and domination laws immediately, double
// negations collapse, negation of a compound pushes one level inward via the
// operator's dual, and derived binary operators (implies, xor, nand, ...)
// are rewritten once over and/or/not. When every argument is a boolean
// constant the application is computed eagerly to a constant.
func Apply(o *op.Op, args ...Proposition) (Proposition, error) {
	if o == nil {
		return nil, errors.New("nil operator")
	}
	if o.Arity() != op.NAry && int(o.Arity()) != len(args) {
		return nil, &ArityError{Op: o.Name(), Want: o.Arity(), Got: len(args)}
	}
	if vals, ok := constVals(args); ok {
		return constant(o.Truth(vals...)), nil
	}
	switch o {
	case op.Id:
		return args[0], nil
	case op.Not:
		return negate(args[0]), nil
	case op.And, op.Or:
		return join(o, args), nil
	case op.Nand:
		return negate(join(op.And, args)), nil
	case op.Nor:
		return negate(join(op.Or, args)), nil
	case op.Xor:
		p, q := args[0], args[1]
		return join(op.And, []Proposition{
			join(op.Or, []Proposition{negate(p), negate(q)}),
			join(op.Or, []Proposition{p, q}),
		}), nil
	case op.Xnor:
		p, q := args[0], args[1]
		return join(op.And, []Proposition{
			join(op.Or, []Proposition{negate(p), q}),
			join(op.Or, []Proposition{p, negate(q)}),
		}), nil
	case op.Implies:
		return join(op.Or, []Proposition{negate(args[0]), args[1]}), nil
	case op.NotImplies:
		return join(op.And, []Proposition{args[0], negate(args[1])}), nil
	case op.ConvImplies:
		return join(op.Or, []Proposition{args[0], negate(args[1])}), nil
	case op.NotConvImplies:
		return join(op.And, []Proposition{negate(args[0]), args[1]}), nil
	}
	return expand(o, args)
}

// Connective helpers in the general tree shape. These cannot fail: their
// signatures fix the arity.

// Not negates the given proposition.
func Not(p Proposition) Proposition { return negate(p) }

// And builds the conjunction of the given propositions.
func And(ps ...Proposition) Proposition { return join(op.And, ps) }

// Or builds the disjunction of the given propositions.
func Or(ps ...Proposition) Proposition { return join(op.Or, ps) }

// Implies builds the implication of q by p.
func Implies(p, q Proposition) Proposition {
	return join(op.Or, []Proposition{negate(p), q})
}

// Eq builds the equivalence of two propositions.
func Eq(p, q Proposition) Proposition {
	f, _ := Apply(op.Xnor, p, q)
	return f
}

// Xor builds the exclusive disjunction of two propositions.
func Xor(p, q Proposition) Proposition {
	f, _ := Apply(op.Xor, p, q)
	return f
}

func constant(v bool) Constant {
	if v {
		return True
	}
	return False
}

// constVals extracts boolean values when every argument is a boolean
// constant, enabling eager evaluation.
func constVals(args []Proposition) ([]bool, bool) {
	vals := make([]bool, len(args))
	for i, a := range args {
		c, ok := a.(Constant)
		if !ok {
			return nil, false
		}
		v, isBool := c.Truth()
		if !isBool {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// join applies an n-ary and/or: domination and identity laws on truth
// constants, flattening of same-operator children, singleton collapse, and
// the neutral element for the empty application.
func join(o *op.Op, args []Proposition) Proposition {
	dominator := o == op.Or // false dominates and, true dominates or
	kept := make([]Proposition, 0, len(args))
	for _, a := range args {
		if c, ok := a.(Constant); ok {
			if v, isBool := c.Truth(); isBool {
				if v == dominator {
					return constant(dominator)
				}
				continue
			}
		}
		if t, ok := a.(Tree); ok && t.op == o {
			kept = append(kept, t.kids...)
			continue
		}
		kept = append(kept, a)
	}
	switch len(kept) {
	case 0:
		return constant(!dominator)
	case 1:
		return kept[0]
	}
	return Tree{op: o, kids: kept}
}

// negate builds the negation of a proposition. Double negations collapse;
// negating a compound pushes the negation one level inward via De Morgan's
// law, without recursively normalizing the children.
func negate(p Proposition) Proposition {
	switch q := p.(type) {
	case Constant:
		if v, ok := q.Truth(); ok {
			return constant(!v)
		}
		return Lit{Neg: true, Atom: q}
	case Variable:
		return Lit{Neg: true, Atom: q}
	case Lit:
		if q.Neg {
			return q.Atom
		}
		return Lit{Neg: true, Atom: q.Atom}
	case Tree:
		switch q.op {
		case op.Id:
			return negate(q.kids[0])
		case op.Not:
			return q.kids[0]
		case op.And, op.Or:
			kids := make([]Proposition, len(q.kids))
			for i, k := range q.kids {
				kids[i] = lazyNeg(k)
			}
			return Tree{op: q.op.Dual(), kids: kids}
		}
		return Tree{op: op.Not, kids: []Proposition{q}}
	case Clause:
		lits := make([]Lit, len(q.lits))
		for i, l := range q.lits {
			lits[i] = Lit{Neg: !l.Neg, Atom: l.Atom}
		}
		return Clause{op: q.op.Dual(), lits: lits}
	case Normal:
		clauses := make([]Clause, len(q.clauses))
		for i, c := range q.clauses {
			clauses[i] = negate(c).(Clause)
		}
		return Normal{op: q.op.Dual(), clauses: clauses}
	}
	return Tree{op: op.Not, kids: []Proposition{p}}
}

// lazyNeg negates a child during De Morgan pushdown: literals and double
// negations collapse, anything compound is wrapped without recursing.
func lazyNeg(p Proposition) Proposition {
	switch q := p.(type) {
	case Constant, Variable, Lit:
		return negate(q)
	case Tree:
		switch q.op {
		case op.Id:
			return lazyNeg(q.kids[0])
		case op.Not:
			return q.kids[0]
		}
	}
	return Tree{op: op.Not, kids: []Proposition{p}}
}

// expand rewrites a registered operator without a primitive rule into its
// minterm expansion over and/or/not.
func expand(o *op.Op, args []Proposition) (Proposition, error) {
	if o.Arity() == op.NAry {
		return nil, &UndefinedOpError{Op: o.Name(), Reason: "no expansion rule for unbounded operator"}
	}
	k := len(args)
	var terms []Proposition
	vals := make([]bool, k)
	for mask := 0; mask < 1<<k; mask++ {
		for i := range vals {
			vals[i] = mask&(1<<i) != 0
		}
		if !o.Truth(vals...) {
			continue
		}
		lits := make([]Proposition, k)
		for i, a := range args {
			if vals[i] {
				lits[i] = a
			} else {
				lits[i] = negate(a)
			}
		}
		terms = append(terms, join(op.And, lits))
	}
	return join(op.Or, terms), nil
}
