package logic

// A TruthTable is presentation data for a proposition: one column per
// variable plus a result column, one row per valuation. Rows enumerate
// valuations in ascending binary order, first variable most significant.
type TruthTable struct {
	Header []string
	Rows   [][]bool
}

// Table computes the full truth table of p over its variables. The row
// count is exponential in the variable count; callers are expected to keep
// formulas small.
func Table(p Proposition) TruthTable {
	var names []string
	for a := range Atoms(p) {
		if v, ok := a.(Variable); ok {
			names = append(names, v.Name)
		}
	}
	t := TruthTable{Header: append(append([]string{}, names...), p.String())}
	n := len(names)
	valuation := make(map[string]bool, n)
	for row := 0; row < 1<<n; row++ {
		vals := make([]bool, 0, n+1)
		for i, name := range names {
			v := row&(1<<(n-1-i)) != 0
			valuation[name] = v
			vals = append(vals, v)
		}
		t.Rows = append(t.Rows, append(vals, p.Eval(valuation)))
	}
	return t
}
