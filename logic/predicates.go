package logic

import (
	"iter"

	"github.com/gologic/prop/sat"
)

// Ranks returned by Rank, ordering propositions from contradiction to
// tautology.
const (
	RankContradiction = 0
	RankContingency   = 1
	RankTautology     = 2
)

// Solve searches for a model of p using the given engine. It returns a
// valuation of the original atoms, or nil when the proposition is
// unsatisfiable.
func Solve(eng sat.Engine, p Proposition) (map[string]bool, error) {
	cs, err := Transform(p)
	if err != nil {
		return nil, err
	}
	asg, err := eng.Solve(cs.Clauses(), cs.NumVars())
	if err != nil {
		return nil, err
	}
	defer asg.Close()
	m, ok := asg.Next()
	if !ok {
		return nil, asg.Err()
	}
	return cs.Valuation(m), nil
}

// Models returns a restartable sequence of the models of p, each projected
// onto the original atoms. Every iteration of the sequence runs a fresh
// solver; within one iteration, successive models are enumerated through
// blocking clauses. The solver handle is released when the sequence is
// exhausted or abandoned. An engine failure while restarting ends the
// sequence without yielding; callers needing to distinguish that case from
// unsatisfiability should call the engine directly.
func Models(eng sat.Engine, p Proposition) (iter.Seq[map[string]bool], error) {
	cs, err := Transform(p)
	if err != nil {
		return nil, err
	}
	seq := func(yield func(map[string]bool) bool) {
		asg, err := eng.Solve(cs.Clauses(), cs.NumVars())
		if err != nil {
			return
		}
		for m := range sat.All(asg) {
			if !yield(cs.Valuation(m)) {
				return
			}
		}
	}
	return seq, nil
}

// CountModels counts the satisfying assignments of p. Auxiliary Tseytin
// atoms are functionally determined by the original ones, so the count
// equals the number of models over the original atoms appearing in the
// encoding.
func CountModels(eng sat.Engine, p Proposition) (int, error) {
	cs, err := Transform(p)
	if err != nil {
		return 0, err
	}
	asg, err := eng.Solve(cs.Clauses(), cs.NumVars())
	if err != nil {
		return 0, err
	}
	defer asg.Close()
	n := 0
	for {
		if _, ok := asg.Next(); !ok {
			break
		}
		n++
	}
	return n, asg.Err()
}

// IsSatisfiable reports whether p has at least one model.
func IsSatisfiable(eng sat.Engine, p Proposition) (bool, error) {
	cs, err := Transform(p)
	if err != nil {
		return false, err
	}
	asg, err := eng.Solve(cs.Clauses(), cs.NumVars())
	if err != nil {
		return false, err
	}
	defer asg.Close()
	_, ok := asg.Next()
	return ok, asg.Err()
}

// IsContradiction reports whether p is false under every valuation.
func IsContradiction(eng sat.Engine, p Proposition) (bool, error) {
	satisfiable, err := IsSatisfiable(eng, p)
	if err != nil {
		return false, err
	}
	return !satisfiable, nil
}

// IsTautology reports whether p is true under every valuation: its negation
// has no model.
func IsTautology(eng sat.Engine, p Proposition) (bool, error) {
	return IsContradiction(eng, Not(p))
}

// IsTruth reports whether p is a truth constant in disguise: either a
// tautology or a contradiction.
func IsTruth(eng sat.Engine, p Proposition) (bool, error) {
	taut, err := IsTautology(eng, p)
	if err != nil || taut {
		return taut, err
	}
	return IsContradiction(eng, p)
}

// Equivalent reports whether p and q agree under every valuation: their
// symmetric difference is unsatisfiable.
func Equivalent(eng sat.Engine, p, q Proposition) (bool, error) {
	return IsContradiction(eng, Xor(p, q))
}

// Rank classifies a proposition: RankContradiction, RankContingency or
// RankTautology.
func Rank(eng sat.Engine, p Proposition) (int, error) {
	satisfiable, err := IsSatisfiable(eng, p)
	if err != nil {
		return 0, err
	}
	if !satisfiable {
		return RankContradiction, nil
	}
	taut, err := IsTautology(eng, p)
	if err != nil {
		return 0, err
	}
	if taut {
		return RankTautology, nil
	}
	return RankContingency, nil
}

// Less reports whether p is strictly more contradiction-like than q:
// contradiction < contingency < tautology. Two contingencies are
// incomparable and Less is false both ways.
func Less(eng sat.Engine, p, q Proposition) (bool, error) {
	rp, err := Rank(eng, p)
	if err != nil {
		return false, err
	}
	rq, err := Rank(eng, q)
	if err != nil {
		return false, err
	}
	return rp < rq, nil
}
