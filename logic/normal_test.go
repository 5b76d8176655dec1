package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/prop/op"
)

// allValuations enumerates every assignment of the formula's variables.
func allValuations(p Proposition) []map[string]bool {
	names := atomNames(p)
	out := make([]map[string]bool, 0, 1<<len(names))
	for mask := 0; mask < 1<<len(names); mask++ {
		valuation := make(map[string]bool, len(names))
		for i, name := range names {
			valuation[name] = mask&(1<<i) != 0
		}
		out = append(out, valuation)
	}
	return out
}

func TestNormalizeDistributes(t *testing.T) {
	p, q, r := Var("p"), Var("q"), Var("r")
	n, err := Normalize(op.And, Or(p, And(q, r)))
	require.NoError(t, err)
	require.Len(t, n.Clauses(), 2)
	assert.Equal(t, "and(or(p, q), or(p, r))", n.String())
}

func TestNormalizePreservesMeaning(t *testing.T) {
	p, q, r := Var("p"), Var("q"), Var("r")
	formulas := []Proposition{
		Implies(And(p, q), r),
		Xor(p, Or(q, Not(r))),
		Eq(Implies(p, q), Implies(Not(q), Not(p))),
		Not(And(Or(p, q), Or(Not(p), r))),
	}
	for _, f := range formulas {
		for _, target := range []*op.Op{op.And, op.Or} {
			n, err := Normalize(target, f)
			require.NoError(t, err)
			for _, valuation := range allValuations(f) {
				assert.Equal(t, f.Eval(valuation), n.Eval(valuation),
					"%s as %s under %v", f, target.Name(), valuation)
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	p, q, r := Var("p"), Var("q"), Var("r")
	n, err := Normalize(op.And, Implies(p, And(q, r)))
	require.NoError(t, err)
	again, err := Normalize(op.And, n)
	require.NoError(t, err)
	assert.Equal(t, n, again)
}

func TestNormalizeDropsTrivialClauses(t *testing.T) {
	p, q := Var("p"), Var("q")

	n, err := Normalize(op.And, Or(p, Not(p), q))
	require.NoError(t, err)
	assert.Empty(t, n.Clauses(), "a tautological clause leaves the neutral form")
	assert.True(t, n.Eval(nil))

	n, err = Normalize(op.Or, And(p, Not(p)))
	require.NoError(t, err)
	assert.Empty(t, n.Clauses())
	assert.False(t, n.Eval(nil))
}

func TestNormalizeConstants(t *testing.T) {
	n, err := Normalize(op.And, True)
	require.NoError(t, err)
	assert.Empty(t, n.Clauses())
	assert.True(t, n.Eval(nil))

	n, err = Normalize(op.And, False)
	require.NoError(t, err)
	require.Len(t, n.Clauses(), 1)
	assert.Empty(t, n.Clauses()[0].Lits())
}

func TestNormalizeDedupsClauses(t *testing.T) {
	p, q := Var("p"), Var("q")
	n, err := Normalize(op.And, And(Or(p, q), Or(q, p)))
	require.NoError(t, err)
	assert.Len(t, n.Clauses(), 1)
}

func TestNormalizeRejectsBadTarget(t *testing.T) {
	_, err := Normalize(op.Xor, Var("p"))
	var opErr *UndefinedOpError
	assert.ErrorAs(t, err, &opErr)
}

func TestNormalizeSurfacesUnexpandableOperator(t *testing.T) {
	c := op.NewCatalog()
	reg, err := c.Register(op.Def{Name: "any-of", Arity: op.NAry, Truth: op.Or.Truth})
	require.NoError(t, err)
	tr, err := NewTree(reg.Op, Var("a"), Var("b"))
	require.NoError(t, err)
	_, err = Normalize(op.And, tr)
	var opErr *UndefinedOpError
	require.ErrorAs(t, err, &opErr, "an unexpandable operator must fail, not default")

	_, err = Normalize(op.And, And(Var("p"), tr))
	assert.ErrorAs(t, err, &opErr, "the failure propagates out of nested nodes")
	_, err = Normalize(op.And, Or(Var("p"), tr))
	assert.ErrorAs(t, err, &opErr)
}

func TestNormalizeDerivedOperator(t *testing.T) {
	p, q := Var("p"), Var("q")
	tr, err := NewTree(op.Nand, p, q)
	require.NoError(t, err)
	n, err := Normalize(op.And, tr)
	require.NoError(t, err)
	for _, valuation := range allValuations(tr) {
		assert.Equal(t, tr.Eval(valuation), n.Eval(valuation))
	}
}
