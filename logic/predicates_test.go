package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/prop/op"
	"github.com/gologic/prop/sat"
)

func TestSolve(t *testing.T) {
	eng := sat.NewGini()
	p, q := Var("p"), Var("q")

	model, err := Solve(eng, And(p, Or(Not(p), q)))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"p": true, "q": true}, model)

	model, err = Solve(eng, And(p, Not(p)))
	require.NoError(t, err)
	assert.Nil(t, model)

	model, err = Solve(eng, True)
	require.NoError(t, err)
	assert.NotNil(t, model)
	assert.Empty(t, model)
}

func TestSolvedModelSatisfies(t *testing.T) {
	eng := sat.NewGini()
	f := Xor(Var("p"), Implies(Var("q"), Var("r")))
	model, err := Solve(eng, f)
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.True(t, f.Eval(model))
}

func TestClassification(t *testing.T) {
	eng := sat.NewGini()
	p, q := Var("p"), Var("q")

	taut, err := IsTautology(eng, Or(p, Not(p)))
	require.NoError(t, err)
	assert.True(t, taut)

	taut, err = IsTautology(eng, Implies(p, q))
	require.NoError(t, err)
	assert.False(t, taut)

	contra, err := IsContradiction(eng, And(p, Not(p)))
	require.NoError(t, err)
	assert.True(t, contra)

	truth, err := IsTruth(eng, And(p, Not(p)))
	require.NoError(t, err)
	assert.True(t, truth)
	truth, err = IsTruth(eng, p)
	require.NoError(t, err)
	assert.False(t, truth)

	ok, err := IsSatisfiable(eng, Implies(p, q))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEquivalent(t *testing.T) {
	eng := sat.NewGini()
	p, q := Var("p"), Var("q")

	eq, err := Equivalent(eng, Implies(p, q), Or(Not(p), q))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = Equivalent(eng, Not(And(p, q)), Or(Not(p), Not(q)))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = Equivalent(eng, p, q)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestNormalizeAgreesWithSolver(t *testing.T) {
	eng := sat.NewGini()
	p, q, r := Var("p"), Var("q"), Var("r")
	f := Xor(Implies(p, q), And(q, Not(r)))
	cnf, err := Normalize(op.And, f)
	require.NoError(t, err)
	eq, err := Equivalent(eng, f, cnf)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestRankAndLess(t *testing.T) {
	eng := sat.NewGini()
	p := Var("p")
	contradiction := And(p, Not(p))
	tautology := Or(p, Not(p))

	rank, err := Rank(eng, contradiction)
	require.NoError(t, err)
	assert.Equal(t, RankContradiction, rank)
	rank, err = Rank(eng, p)
	require.NoError(t, err)
	assert.Equal(t, RankContingency, rank)
	rank, err = Rank(eng, tautology)
	require.NoError(t, err)
	assert.Equal(t, RankTautology, rank)

	less, err := Less(eng, contradiction, tautology)
	require.NoError(t, err)
	assert.True(t, less)
	less, err = Less(eng, p, Var("q"))
	require.NoError(t, err)
	assert.False(t, less, "contingencies are incomparable")
	less, err = Less(eng, tautology, contradiction)
	require.NoError(t, err)
	assert.False(t, less)
}

func TestCountModels(t *testing.T) {
	eng := sat.NewGini()
	p, q := Var("p"), Var("q")
	tests := []struct {
		f    Proposition
		want int
	}{
		{Or(p, q), 3},
		{Xor(p, q), 2},
		{And(p, Not(p)), 0},
		{And(p, q), 1},
	}
	for _, tt := range tests {
		n, err := CountModels(eng, tt.f)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "models of %s", tt.f)
	}
}

func TestModels(t *testing.T) {
	eng := sat.NewGini()
	f := Or(Var("p"), Var("q"))
	seq, err := Models(eng, f)
	require.NoError(t, err)

	var models []map[string]bool
	for m := range seq {
		assert.True(t, f.Eval(m))
		models = append(models, m)
	}
	assert.Len(t, models, 3)

	// The sequence restarts from scratch.
	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 3, n)

	// Early break releases the solver without error.
	for range seq {
		break
	}
}
