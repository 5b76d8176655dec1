package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/prop/op"
)

func TestString(t *testing.T) {
	f := And(Or(Var("a"), Not(Var("b"))), Not(Var("c")))
	assert.Equal(t, "and(or(a, not(b)), not(c))", f.String())
	assert.Equal(t, "⊤", True.String())
	assert.Equal(t, "⊥", False.String())
}

func TestEval(t *testing.T) {
	f := And(Or(Var("a"), Not(Var("b"))), Var("c"))
	tests := []struct {
		valuation map[string]bool
		want      bool
	}{
		{map[string]bool{"a": true, "b": true, "c": true}, true},
		{map[string]bool{"a": false, "b": true, "c": true}, false},
		{map[string]bool{"a": false, "b": false, "c": true}, true},
		{map[string]bool{"a": true, "b": false, "c": false}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Eval(tt.valuation), "valuation %v", tt.valuation)
	}
}

func TestEvalMissingBindingPanics(t *testing.T) {
	assert.Panics(t, func() {
		Var("a").Eval(map[string]bool{"b": true})
	})
}

func TestNewTreeArity(t *testing.T) {
	_, err := NewTree(op.Not, Var("a"), Var("b"))
	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, "not", arityErr.Op)
	assert.Equal(t, 2, arityErr.Got)

	tr, err := NewTree(op.And, Var("a"), Var("b"), Var("c"))
	require.NoError(t, err)
	assert.Len(t, tr.Children(), 3)
}

func TestApplyArityCheckedEveryTime(t *testing.T) {
	_, err := Apply(op.Implies, Var("a"))
	var arityErr *ArityError
	assert.ErrorAs(t, err, &arityErr)
	_, err = Apply(op.Implies, Var("a"), Var("b"), Var("c"))
	assert.ErrorAs(t, err, &arityErr)
}

func TestClauseDedup(t *testing.T) {
	a := NewLit(Var("a"), false)
	na := NewLit(Var("a"), true)
	b := NewLit(Var("b"), false)
	c, err := NewClause(op.Or, a, b, a, na, b)
	require.NoError(t, err)
	assert.Equal(t, []Lit{a, b, na}, c.Lits())
}

func TestClauseRejectsNonJoinOp(t *testing.T) {
	_, err := NewClause(op.Xor, NewLit(Var("a"), false))
	var opErr *UndefinedOpError
	assert.ErrorAs(t, err, &opErr)
}

func TestEmptyClauseNeutral(t *testing.T) {
	andClause, err := NewClause(op.And)
	require.NoError(t, err)
	orClause, err := NewClause(op.Or)
	require.NoError(t, err)
	assert.True(t, andClause.Eval(nil))
	assert.False(t, orClause.Eval(nil))
}

func TestNormalInnerOpInvariant(t *testing.T) {
	orClause, err := NewClause(op.Or, NewLit(Var("a"), false))
	require.NoError(t, err)
	cnf, err := NewNormal(op.And, orClause)
	require.NoError(t, err)
	assert.Same(t, op.And, cnf.Op())

	_, err = NewNormal(op.Or, orClause)
	var repErr *NotRepresentableError
	assert.ErrorAs(t, err, &repErr)
}

func TestNormalDedupAndNeutral(t *testing.T) {
	a := NewLit(Var("a"), false)
	b := NewLit(Var("b"), false)
	c1, _ := NewClause(op.Or, a, b)
	c2, _ := NewClause(op.Or, b, a)
	n, err := NewNormal(op.And, c1, c2)
	require.NoError(t, err)
	assert.Len(t, n.Clauses(), 1, "clauses are sets of literals")

	empty, err := NewNormal(op.And)
	require.NoError(t, err)
	assert.True(t, empty.Eval(nil))
}

func TestConstantEquality(t *testing.T) {
	assert.Equal(t, Constant{Value: 42}, Constant{Value: 42})
	assert.NotEqual(t, True, False)
	assert.Equal(t, Var("p"), Var("p"))
}

func TestLitNeverNests(t *testing.T) {
	p := Var("p")
	l := Not(p)
	lit, ok := l.(Lit)
	require.True(t, ok)
	assert.True(t, lit.Neg)
	back := Not(l)
	assert.Equal(t, Proposition(p), back)
}

func TestErrorsAreTyped(t *testing.T) {
	_, err := NewTree(op.Xor, Var("a"))
	assert.True(t, errors.As(err, new(*ArityError)))
	_, err = ToLit(And(Var("a"), Var("b")))
	assert.True(t, errors.As(err, new(*NotRepresentableError)))
}
