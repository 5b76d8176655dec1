package op

import (
	"fmt"
	"sync"
)

// A Catalog holds the set of known operators. Lookups are by name. The
// default catalog contains the built-ins and is created once; registering a
// new operator is an explicit step that verifies the operator's algebraic
// properties instead of trusting caller claims.
type Catalog struct {
	mu    sync.RWMutex
	ops   map[string]*Op
	order []string
}

// NewCatalog returns a fresh catalog seeded with the built-in operators.
func NewCatalog() *Catalog {
	c := &Catalog{ops: make(map[string]*Op, len(builtins))}
	for _, o := range builtins {
		c.ops[o.name] = o
		c.order = append(c.order, o.name)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog of built-in operators. It is built on
// first use and should be treated as read-only; use NewCatalog for a catalog
// meant to receive registrations.
func Default() *Catalog {
	defaultOnce.Do(func() { defaultCatalog = NewCatalog() })
	return defaultCatalog
}

// Lookup returns the operator registered under the given name.
func (c *Catalog) Lookup(name string) (*Op, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.ops[name]
	return o, ok
}

// Names returns the registered operator names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// A Def describes an operator to register: its name, an optional display
// symbol, its arity and its truth function. Algebraic metadata is not part
// of the definition; the catalog derives it.
type Def struct {
	Name   string
	Symbol string
	Arity  Arity
	Truth  func(vals ...bool) bool
}

// A Registration reports the outcome of registering an operator: the
// operator itself, the names of its discovered dual and converse (empty when
// none was found among the registered operators), and the list of properties
// the catalog could not decide.
type Registration struct {
	Op           *Op
	DualName     string
	ConverseName string
	Undetermined []string
}

// Register adds a user-defined operator to the catalog. The operator's
// commutativity, associativity and identity elements are verified by
// evaluating its truth function over all assignments; its dual and converse
// are discovered by scanning the catalog for a matching truth table. A
// property that cannot be decided (unbounded arity) is reported as
// undetermined in the returned Registration rather than silently defaulted.
func (c *Catalog) Register(d Def) (*Registration, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("cannot register operator with empty name")
	}
	if d.Truth == nil {
		return nil, fmt.Errorf("cannot register operator %q without a truth function", d.Name)
	}
	if d.Arity < NAry {
		return nil, fmt.Errorf("invalid arity %d for operator %q", d.Arity, d.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.ops[d.Name]; dup {
		return nil, fmt.Errorf("operator %q already registered", d.Name)
	}

	o := &Op{name: d.Name, symbol: d.Symbol, arity: d.Arity, truth: d.Truth}
	reg := &Registration{Op: o}

	switch {
	case d.Arity == NAry:
		reg.Undetermined = append(reg.Undetermined, "commutative", "associative", "identity", "dual", "converse")
	case d.Arity <= 1:
		o.commutative = Yes
		o.associative = Yes
	default:
		c.verifyBinary(o, reg)
	}
	if d.Arity != NAry {
		if dual := c.findDual(o); dual != nil {
			o.dual = dual
			reg.DualName = dual.name
		} else {
			reg.Undetermined = append(reg.Undetermined, "dual")
		}
		if o.commutative == Yes {
			o.converse = o
			reg.ConverseName = o.name
		} else if conv := c.findConverse(o); conv != nil {
			o.converse = conv
			reg.ConverseName = conv.name
		} else {
			reg.Undetermined = append(reg.Undetermined, "converse")
		}
	}

	c.ops[o.name] = o
	c.order = append(c.order, o.name)
	return reg, nil
}

// verifyBinary derives commutativity, associativity and identity elements of
// a binary operator from its truth table.
func (c *Catalog) verifyBinary(o *Op, reg *Registration) {
	if o.arity != 2 {
		// Fixed arities above 2 only get dual/converse discovery.
		reg.Undetermined = append(reg.Undetermined, "commutative", "associative", "identity")
		return
	}
	o.commutative = Yes
	for _, a := range [2]bool{false, true} {
		for _, b := range [2]bool{false, true} {
			if o.truth(a, b) != o.truth(b, a) {
				o.commutative = No
			}
		}
	}
	o.associative = Yes
	for _, a := range [2]bool{false, true} {
		for _, b := range [2]bool{false, true} {
			for _, x := range [2]bool{false, true} {
				if o.truth(o.truth(a, b), x) != o.truth(a, o.truth(b, x)) {
					o.associative = No
				}
			}
		}
	}
	for _, e := range [2]bool{false, true} {
		if o.truth(e, false) == false && o.truth(e, true) == true {
			o.leftID = truthPtr(e)
		}
		if o.truth(false, e) == false && o.truth(true, e) == true {
			o.rightID = truthPtr(e)
		}
	}
}

// findDual scans the catalog, and the operator itself, for an operator q of
// the same arity such that q(a...) == ¬o(¬a...) for every assignment.
func (c *Catalog) findDual(o *Op) *Op {
	candidates := make([]*Op, 0, len(c.order)+1)
	for _, name := range c.order {
		candidates = append(candidates, c.ops[name])
	}
	candidates = append(candidates, o)
	for _, q := range candidates {
		if q.arity != o.arity {
			continue
		}
		if tablesMatch(int(o.arity), q.truth, func(vals ...bool) bool {
			neg := make([]bool, len(vals))
			for i, v := range vals {
				neg[i] = !v
			}
			return !o.truth(neg...)
		}) {
			return q
		}
	}
	return nil
}

// findConverse scans the catalog for an operator q with q(a,b) == o(b,a).
func (c *Catalog) findConverse(o *Op) *Op {
	if o.arity != 2 {
		return nil
	}
	for _, name := range c.order {
		q := c.ops[name]
		if q.arity != 2 {
			continue
		}
		if tablesMatch(2, q.truth, func(vals ...bool) bool { return o.truth(vals[1], vals[0]) }) {
			return q
		}
	}
	return nil
}

// tablesMatch reports whether two truth functions of the given fixed arity
// agree on every assignment.
func tablesMatch(arity int, f, g func(vals ...bool) bool) bool {
	vals := make([]bool, arity)
	for mask := 0; mask < 1<<arity; mask++ {
		for i := range vals {
			vals[i] = mask&(1<<i) != 0
		}
		if f(vals...) != g(vals...) {
			return false
		}
	}
	return true
}
