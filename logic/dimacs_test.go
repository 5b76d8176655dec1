package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDimacs(t *testing.T) {
	cs, err := Transform(And(Var("p"), Var("q")))
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, WriteDimacs(&sb, cs))
	want := "p cnf 3 4\n" +
		"c p=1\n" +
		"c q=2\n" +
		"-3 1 0\n" +
		"-3 2 0\n" +
		"3 -1 -2 0\n" +
		"3 0\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteDimacsEmptyClause(t *testing.T) {
	cs, err := Transform(False)
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, WriteDimacs(&sb, cs))
	assert.Equal(t, "p cnf 0 1\n0\n", sb.String())
}

func TestWriteDimacsSortsNames(t *testing.T) {
	cs, err := Transform(Or(Var("z"), Var("a")))
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, WriteDimacs(&sb, cs))
	out := sb.String()
	assert.Contains(t, out, "c a=2\n")
	assert.Contains(t, out, "c z=1\n")
	assert.Less(t, strings.Index(out, "c a="), strings.Index(out, "c z="))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestWriteDimacsPropagatesWriteErrors(t *testing.T) {
	cs, err := Transform(Var("p"))
	require.NoError(t, err)
	err = WriteDimacs(failWriter{}, cs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not write DIMACS output")
	assert.ErrorIs(t, err, assert.AnError)
}
