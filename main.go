// Command prop builds, checks and solves propositional formulas.
//
// Formulas are given inline with -e or read from a .bf file; DIMACS CNF
// files (.cnf) are handed to the SAT engine directly.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gologic/prop/logic"
	"github.com/gologic/prop/op"
	"github.com/gologic/prop/sat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "prop",
		Short:         "propositional logic toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set verbose mode on")
	root.AddCommand(newSolveCmd(), newCheckCmd(), newCnfCmd(), newTableCmd())
	return root
}

// readFormula loads the formula from the -e flag or from a file argument.
func readFormula(expr string, args []string) (logic.Proposition, error) {
	if expr != "" {
		return logic.Parse(strings.NewReader(expr))
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a formula file or -e expression")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return logic.Parse(f)
}

func newSolveCmd() *cobra.Command {
	var (
		expr  string
		count bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file.bf|file.cnf]",
		Short: "solve a formula or a DIMACS CNF problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && strings.HasSuffix(args[0], ".cnf") {
				return solveDimacs(args[0], count)
			}
			p, err := readFormula(expr, args)
			if err != nil {
				return err
			}
			eng := sat.NewGini()
			if count {
				n, err := logic.CountModels(eng, p)
				if err != nil {
					return err
				}
				fmt.Println(n)
				return nil
			}
			model, err := logic.Solve(eng, p)
			if err != nil {
				return err
			}
			if model == nil {
				fmt.Println("UNSATISFIABLE")
				return nil
			}
			fmt.Println("SATISFIABLE")
			printModel(model)
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "inline formula")
	cmd.Flags().BoolVar(&count, "count", false, "count the models rather than solving")
	return cmd
}

func printModel(model map[string]bool) {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s=%t\n", name, model[name])
	}
}

// solveDimacs feeds a CNF file straight to the SAT engine.
func solveDimacs(path string, count bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	g, err := gini.NewDimacs(f)
	if err != nil {
		return fmt.Errorf("could not parse problem: %v", err)
	}
	logrus.WithField("vars", g.MaxVar()).Debug("parsed DIMACS problem")
	if count {
		n := 0
		for g.Solve() == 1 {
			n++
			blockModel(g)
		}
		fmt.Println(n)
		return nil
	}
	if g.Solve() != 1 {
		fmt.Println("UNSATISFIABLE")
		return nil
	}
	fmt.Println("SATISFIABLE")
	lits := make([]string, 0, int(g.MaxVar()))
	for v := z.Var(1); v <= g.MaxVar(); v++ {
		d := int(v)
		if !g.Value(v.Pos()) {
			d = -d
		}
		lits = append(lits, fmt.Sprint(d))
	}
	fmt.Println(strings.Join(lits, " "))
	return nil
}

func blockModel(g *gini.Gini) {
	for v := z.Var(1); v <= g.MaxVar(); v++ {
		if g.Value(v.Pos()) {
			g.Add(v.Neg())
		} else {
			g.Add(v.Pos())
		}
	}
	g.Add(z.LitNull)
}

func newCheckCmd() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "check [file.bf]",
		Short: "classify a formula as tautology, contradiction or contingency",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readFormula(expr, args)
			if err != nil {
				return err
			}
			rank, err := logic.Rank(sat.NewGini(), p)
			if err != nil {
				return err
			}
			switch rank {
			case logic.RankContradiction:
				fmt.Println("contradiction")
			case logic.RankTautology:
				fmt.Println("tautology")
			default:
				fmt.Println("contingency")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "inline formula")
	return cmd
}

func newCnfCmd() *cobra.Command {
	var (
		expr string
		dnf  bool
	)
	cmd := &cobra.Command{
		Use:   "cnf [file.bf]",
		Short: "print the Tseytin DIMACS encoding, or a flat normal form",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readFormula(expr, args)
			if err != nil {
				return err
			}
			if dnf {
				n, err := logic.Normalize(op.Or, p)
				if err != nil {
					return err
				}
				fmt.Println(n)
				return nil
			}
			cs, err := logic.Transform(p)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"vars":    cs.NumVars(),
				"aux":     cs.NumAux(),
				"clauses": len(cs.Clauses()),
			}).Debug("encoded formula")
			return logic.WriteDimacs(os.Stdout, cs)
		},
	}
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "inline formula")
	cmd.Flags().BoolVar(&dnf, "dnf", false, "print the disjunctive normal form instead")
	return cmd
}

func newTableCmd() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "table [file.bf]",
		Short: "print the truth table of a formula",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readFormula(expr, args)
			if err != nil {
				return err
			}
			printTable(logic.Table(p))
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "inline formula")
	return cmd
}

func printTable(t logic.TruthTable) {
	fmt.Println(strings.Join(t.Header, " | "))
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			width := len(t.Header[i])
			if v {
				cells[i] = green.Sprintf("%-*s", width, "T")
			} else {
				cells[i] = red.Sprintf("%-*s", width, "F")
			}
		}
		fmt.Println(strings.Join(cells, " | "))
	}
}
