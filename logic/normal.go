package logic

import (
	"github.com/gologic/prop/op"
)

// Normalize converts an arbitrary proposition to a semantically equivalent
// normal form with the given outer operator: op.And yields a CNF, op.Or a
// DNF. Unlike ToNormal, the conversion is total: dual-operator nodes are
// distributed, which can grow the clause count exponentially. For
// satisfiability checks, prefer the Tseytin transformation.
//
// Clause and literal order follows first occurrence during the recursion;
// duplicates are removed, and clauses containing a literal together with its
// negation are dropped as trivially neutral.
func Normalize(target *op.Op, p Proposition) (Normal, error) {
	if target != op.And && target != op.Or {
		return Normal{}, &UndefinedOpError{Op: target.Name(), Reason: "normal form target must be and or or"}
	}
	clauses, err := normalClauses(target, p)
	if err != nil {
		return Normal{}, err
	}
	return Normal{op: target, clauses: pruneClauses(clauses)}, nil
}

// normalClauses computes the clause set of the normal form of p for the
// given target operator. It fails when a node's operator has no rewriting
// over and/or/not.
func normalClauses(target *op.Op, p Proposition) ([]Clause, error) {
	inner := target.Dual()
	switch q := p.(type) {
	case Constant:
		if v, ok := q.Truth(); ok {
			return constNormal(target, v).clauses, nil
		}
		return []Clause{{op: inner, lits: []Lit{{Atom: q}}}}, nil
	case Variable:
		return []Clause{{op: inner, lits: []Lit{{Atom: q}}}}, nil
	case Lit:
		return []Clause{{op: inner, lits: []Lit{q}}}, nil
	case Clause:
		if q.op == inner {
			return []Clause{q}, nil
		}
		clauses := make([]Clause, len(q.lits))
		for i, l := range q.lits {
			clauses[i] = Clause{op: inner, lits: []Lit{l}}
		}
		return clauses, nil
	case Normal:
		if q.op == target {
			return q.clauses, nil
		}
		return normalClauses(target, ToTree(q))
	case Tree:
		switch q.op {
		case op.Id:
			return normalClauses(target, q.kids[0])
		case op.Not:
			return normalClauses(target, negate(q.kids[0]))
		case target:
			// Concatenate: the node operator matches the target and is
			// associative, so the children's clause sets flatten.
			var clauses []Clause
			for _, k := range q.kids {
				kidClauses, err := normalClauses(target, k)
				if err != nil {
					return nil, err
				}
				clauses = append(clauses, kidClauses...)
			}
			return clauses, nil
		case inner:
			// Distribute: merge every combination of one clause per child.
			// This cross product is the combinatorial cost of
			// normalization.
			cur := []Clause{{op: inner}}
			for _, k := range q.kids {
				kidClauses, err := normalClauses(target, k)
				if err != nil {
					return nil, err
				}
				var next []Clause
				for _, a := range cur {
					for _, b := range kidClauses {
						if m, ok := mergeClauses(a, b); ok {
							next = append(next, m)
						}
					}
				}
				cur = next
			}
			return cur, nil
		}
		// Derived or registered operator: rewrite over and/or/not first.
		rewritten, err := Apply(q.op, q.kids...)
		if err != nil {
			return nil, err
		}
		return normalClauses(target, rewritten)
	}
	return nil, nil
}

// mergeClauses unions the literals of two same-operator clauses. It reports
// ok=false when the merged clause contains a literal and its negation and is
// therefore trivially equal to the dominating constant, allowing the caller
// to drop it.
func mergeClauses(a, b Clause) (Clause, bool) {
	lits := make([]Lit, 0, len(a.lits)+len(b.lits))
	seen := make(map[uint64]struct{}, len(a.lits)+len(b.lits))
	for _, src := range [2][]Lit{a.lits, b.lits} {
		for _, l := range src {
			k := litKey(l)
			if _, dup := seen[k]; dup {
				continue
			}
			if _, compl := seen[litKey(Lit{Neg: !l.Neg, Atom: l.Atom})]; compl {
				return Clause{}, false
			}
			seen[k] = struct{}{}
			lits = append(lits, l)
		}
	}
	return Clause{op: a.op, lits: lits}, true
}

// pruneClauses removes duplicate and trivially neutral clauses, keeping
// first-insertion order.
func pruneClauses(clauses []Clause) []Clause {
	seen := make(map[uint64]struct{}, len(clauses))
	out := clauses[:0:0]
	for _, c := range clauses {
		if trivialClause(c) {
			continue
		}
		k := clauseKey(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}

// trivialClause reports whether the clause contains a literal and its
// negation.
func trivialClause(c Clause) bool {
	seen := make(map[uint64]struct{}, len(c.lits))
	for _, l := range c.lits {
		if _, compl := seen[litKey(Lit{Neg: !l.Neg, Atom: l.Atom})]; compl {
			return true
		}
		seen[litKey(l)] = struct{}{}
	}
	return false
}
