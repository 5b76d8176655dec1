package logic

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteDimacs writes the clause set in the standard DIMACS CNF exchange
// format: a "p cnf <vars> <clauses>" header, then one line per clause of
// space-separated signed integers terminated by 0. The names of the original
// atoms are associated with their integer indices in comment lines between
// the header and the clauses, e.g. "c a=1".
func WriteDimacs(w io.Writer, cs *ClauseSet) error {
	header := fmt.Sprintf("p cnf %d %d\n", cs.NumVars(), len(cs.clauses))
	if _, err := io.WriteString(w, header); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	named := make(map[string]int)
	var names []string
	for i, a := range cs.atoms {
		if v, ok := a.(Variable); ok && !IsAux(v.Name) {
			named[v.Name] = i + 1
			names = append(names, v.Name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "c %s=%d\n", name, named[name]); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	for _, clause := range cs.clauses {
		strs := make([]string, len(clause))
		for i, l := range clause {
			strs[i] = strconv.Itoa(l)
		}
		line := strings.TrimLeft(strings.Join(strs, " ")+" 0\n", " ")
		if _, err := io.WriteString(w, line); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	return nil
}
