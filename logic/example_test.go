package logic_test

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gologic/prop/logic"
	"github.com/gologic/prop/op"
	"github.com/gologic/prop/sat"
)

func ExampleParse() {
	f, err := logic.Parse(strings.NewReader("a -> b & c"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f)
	// Output:
	// or(not(a), and(b, c))
}

func ExampleNormalize() {
	p, q, r := logic.Var("p"), logic.Var("q"), logic.Var("r")
	n, err := logic.Normalize(op.And, logic.Or(p, logic.And(q, r)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output:
	// and(or(p, q), or(p, r))
}

func ExampleWriteDimacs() {
	cs, err := logic.Transform(logic.And(logic.Var("p"), logic.Var("q")))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := logic.WriteDimacs(os.Stdout, cs); err != nil {
		fmt.Println(err)
	}
	// Output:
	// p cnf 3 4
	// c p=1
	// c q=2
	// -3 1 0
	// -3 2 0
	// 3 -1 -2 0
	// 3 0
}

func ExampleSolve() {
	a, b := logic.Var("a"), logic.Var("b")
	f := logic.And(a, logic.Or(logic.Not(a), b))
	model, err := logic.Solve(sat.NewGini(), f)
	if err != nil {
		fmt.Println(err)
		return
	}
	if model == nil {
		fmt.Println("UNSATISFIABLE")
		return
	}
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s=%t\n", name, model[name])
	}
	// Output:
	// a=true
	// b=true
}
