// Package logic represents propositional formulas as structured data and
// provides exact semantic operations on them: evaluation, simplification,
// conversion to normal forms, the Tseytin transformation and solver-backed
// predicates (tautology, contradiction, equivalence).
//
// A formula is built with the connective helpers:
//
//	f := Implies(And(Var("a"), Var("b")), Or(Var("c"), Not(Var("d"))))
//
// Derived connectives are rewritten over and/or/not at construction time and
// cheap simplifications (identity, domination, double negation) are applied
// eagerly, so the resulting trees only ever contain and, or and not nodes.
package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure"

	"github.com/gologic/prop/op"
)

// A Proposition is any shape of formula: an atom, a literal, a general tree
// or a flat canonical form. Propositions are immutable after construction
// and may be freely shared.
type Proposition interface {
	fmt.Stringer
	// Eval computes the truth value of the proposition under the given
	// valuation. It panics when the valuation lacks a binding for a
	// variable or when a non-boolean constant is evaluated.
	Eval(valuation map[string]bool) bool
	// Children returns the direct sub-propositions, nil for atoms.
	Children() []Proposition
}

// An Atom is an indivisible proposition: a constant or a variable.
type Atom interface {
	Proposition
	atom()
}

// A Constant wraps an immutable value. Two constants are equal when their
// values are equal. Only boolean constants carry a truth value; others are
// opaque atoms.
type Constant struct {
	Value any
}

// The truth constants.
var (
	True  = Constant{Value: true}
	False = Constant{Value: false}
)

func (c Constant) atom() {}

// Truth returns the constant's boolean value, and whether it has one.
func (c Constant) Truth() (val, ok bool) {
	val, ok = c.Value.(bool)
	return val, ok
}

func (c Constant) Eval(valuation map[string]bool) bool {
	v, ok := c.Truth()
	if !ok {
		panic(fmt.Errorf("cannot evaluate non-boolean constant %v", c.Value))
	}
	return v
}

func (c Constant) Children() []Proposition { return nil }

func (c Constant) String() string {
	if v, ok := c.Truth(); ok {
		if v {
			return op.True.Symbol()
		}
		return op.False.Symbol()
	}
	return fmt.Sprint(c.Value)
}

// A Variable is a named atom. Two variables with the same name denote the
// same atom.
type Variable struct {
	Name string
}

// Var returns the variable with the given name.
func Var(name string) Variable { return Variable{Name: name} }

func (v Variable) atom() {}

func (v Variable) Eval(valuation map[string]bool) bool {
	b, ok := valuation[v.Name]
	if !ok {
		panic(fmt.Errorf("valuation lacks binding for variable %s", v.Name))
	}
	return b
}

func (v Variable) Children() []Proposition { return nil }

func (v Variable) String() string { return v.Name }

// A Lit is an atom or its negation. A literal never nests: negating a
// negative literal yields the atom itself.
type Lit struct {
	Neg  bool
	Atom Atom
}

// NewLit returns the positive or negative literal over the given atom.
func NewLit(a Atom, neg bool) Lit { return Lit{Neg: neg, Atom: a} }

// Op returns the unary operator the literal applies: identity or negation.
func (l Lit) Op() *op.Op {
	if l.Neg {
		return op.Not
	}
	return op.Id
}

func (l Lit) Eval(valuation map[string]bool) bool {
	b := l.Atom.Eval(valuation)
	if l.Neg {
		return !b
	}
	return b
}

func (l Lit) Children() []Proposition { return []Proposition{l.Atom} }

func (l Lit) String() string {
	if l.Neg {
		return "not(" + l.Atom.String() + ")"
	}
	return l.Atom.String()
}

// A Tree is a general recursive formula: an operator over an ordered
// sequence of children matching the operator's arity.
type Tree struct {
	op   *op.Op
	kids []Proposition
}

// NewTree builds a tree node, validating the child count against the
// operator's arity.
func NewTree(o *op.Op, kids ...Proposition) (Tree, error) {
	if o.Arity() != op.NAry && int(o.Arity()) != len(kids) {
		return Tree{}, &ArityError{Op: o.Name(), Want: o.Arity(), Got: len(kids)}
	}
	return Tree{op: o, kids: kids}, nil
}

// Op returns the node's operator.
func (t Tree) Op() *op.Op { return t.op }

func (t Tree) Eval(valuation map[string]bool) bool {
	vals := make([]bool, len(t.kids))
	for i, k := range t.kids {
		vals[i] = k.Eval(valuation)
	}
	return t.op.Truth(vals...)
}

func (t Tree) Children() []Proposition {
	kids := make([]Proposition, len(t.kids))
	copy(kids, t.kids)
	return kids
}

func (t Tree) String() string { return opString(t.op, t.kids) }

// A Clause is a flat and/or combination of literals with set semantics:
// duplicate literals are removed, keeping first-occurrence order. The empty
// clause is equivalent to the neutral element of its operator: true for an
// and-clause, false for an or-clause.
type Clause struct {
	op   *op.Op
	lits []Lit
}

// NewClause builds a clause over the given and/or operator, deduplicating
// literals.
func NewClause(o *op.Op, lits ...Lit) (Clause, error) {
	if o != op.And && o != op.Or {
		return Clause{}, &UndefinedOpError{Op: o.Name(), Reason: "clause operator must be and or or"}
	}
	return Clause{op: o, lits: dedupLits(lits)}, nil
}

// Op returns the clause's joining operator.
func (c Clause) Op() *op.Op { return c.op }

// Lits returns the clause's literals in insertion order.
func (c Clause) Lits() []Lit {
	lits := make([]Lit, len(c.lits))
	copy(lits, c.lits)
	return lits
}

func (c Clause) Eval(valuation map[string]bool) bool {
	vals := make([]bool, len(c.lits))
	for i, l := range c.lits {
		vals[i] = l.Eval(valuation)
	}
	return c.op.Truth(vals...)
}

func (c Clause) Children() []Proposition {
	kids := make([]Proposition, len(c.lits))
	for i, l := range c.lits {
		kids[i] = l
	}
	return kids
}

func (c Clause) String() string { return opString(c.op, c.Children()) }

// A Normal is a normal form: a flat and/or combination of clauses, each
// joined by the dual operator. Normal{and, or-clauses} is a CNF,
// Normal{or, and-clauses} a DNF. Duplicate clauses are removed; the empty
// Normal is equivalent to its operator's neutral element.
type Normal struct {
	op      *op.Op
	clauses []Clause
}

// NewNormal builds a normal form over the given and/or operator. Every
// clause must use the dual operator.
func NewNormal(o *op.Op, clauses ...Clause) (Normal, error) {
	if o != op.And && o != op.Or {
		return Normal{}, &UndefinedOpError{Op: o.Name(), Reason: "normal form operator must be and or or"}
	}
	for _, c := range clauses {
		if c.op != o.Dual() {
			return Normal{}, &NotRepresentableError{
				From: fmt.Sprintf("%s-clause", c.op.Name()),
				To:   fmt.Sprintf("%s normal form", o.Name()),
			}
		}
	}
	return Normal{op: o, clauses: dedupClauses(clauses)}, nil
}

// Op returns the normal form's outer operator.
func (n Normal) Op() *op.Op { return n.op }

// Clauses returns the inner clauses in insertion order.
func (n Normal) Clauses() []Clause {
	clauses := make([]Clause, len(n.clauses))
	copy(clauses, n.clauses)
	return clauses
}

func (n Normal) Eval(valuation map[string]bool) bool {
	vals := make([]bool, len(n.clauses))
	for i, c := range n.clauses {
		vals[i] = c.Eval(valuation)
	}
	return n.op.Truth(vals...)
}

func (n Normal) Children() []Proposition {
	kids := make([]Proposition, len(n.clauses))
	for i, c := range n.clauses {
		kids[i] = c
	}
	return kids
}

func (n Normal) String() string { return opString(n.op, n.Children()) }

func opString(o *op.Op, kids []Proposition) string {
	strs := make([]string, len(kids))
	for i, k := range kids {
		strs[i] = k.String()
	}
	return o.Name() + "(" + strings.Join(strs, ", ") + ")"
}

// litKey is a content hash identifying a literal, used for set-semantics
// deduplication instead of pointer identity.
func litKey(l Lit) uint64 {
	h, err := hashstructure.Hash(l, nil)
	if err != nil {
		panic(fmt.Errorf("cannot hash literal %s: %v", l, err))
	}
	return h
}

// clauseKey identifies a clause by its literal set, ignoring order.
func clauseKey(c Clause) uint64 {
	keys := make([]uint64, len(c.lits))
	for i, l := range c.lits {
		keys[i] = litKey(l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	h, err := hashstructure.Hash(keys, nil)
	if err != nil {
		panic(fmt.Errorf("cannot hash clause %s: %v", c, err))
	}
	return h
}

func dedupLits(lits []Lit) []Lit {
	seen := make(map[uint64]struct{}, len(lits))
	out := lits[:0:0]
	for _, l := range lits {
		k := litKey(l)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

func dedupClauses(clauses []Clause) []Clause {
	seen := make(map[uint64]struct{}, len(clauses))
	out := clauses[:0:0]
	for _, c := range clauses {
		k := clauseKey(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
