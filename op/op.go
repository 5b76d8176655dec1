// Package op describes logical connectives: their arity, truth function,
// algebraic properties (commutativity, associativity, identity elements,
// duals, converses) and printing metadata. Operators are immutable values;
// they are grouped and looked up by name in a Catalog.
package op

// Arity is the number of operands an operator takes. NAry denotes an
// unbounded operator, evaluated as a fold over its binary form.
type Arity int

// NAry marks operators accepting any number of operands.
const NAry Arity = -1

// Ternary is the result of an algebraic property check. Properties are
// verified by probing the operator's truth function; when the catalog cannot
// decide (unbounded arity, for instance), the property is Undetermined.
type Ternary int8

// Possible values for a verified property.
const (
	Undetermined Ternary = iota
	No
	Yes
)

func (t Ternary) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "undetermined"
	}
}

// An Op is a logical connective. Ops are immutable once registered and are
// safe to share and compare by pointer.
type Op struct {
	name        string
	symbol      string
	arity       Arity
	truth       func(vals ...bool) bool
	commutative Ternary
	associative Ternary
	leftID      *bool
	rightID     *bool
	dual        *Op
	converse    *Op
}

// Name returns the symbolic name of the operator, e.g. "and".
func (o *Op) Name() string { return o.name }

// Symbol returns the canonical display symbol, e.g. "∧".
func (o *Op) Symbol() string { return o.symbol }

// Arity returns the operand count, or NAry.
func (o *Op) Arity() Arity { return o.arity }

// Commutative reports whether op(a,b) == op(b,a).
func (o *Op) Commutative() Ternary { return o.commutative }

// Associative reports whether op(op(a,b),c) == op(a,op(b,c)).
func (o *Op) Associative() Ternary { return o.associative }

// FoldsLeft reports the associativity direction used when an unbounded
// operator chain is built from its binary form. All catalog operators fold
// left.
func (o *Op) FoldsLeft() bool { return true }

// LeftIdentity returns the truth constant e such that op(e,x) == x, if any.
func (o *Op) LeftIdentity() (val, ok bool) {
	if o.leftID == nil {
		return false, false
	}
	return *o.leftID, true
}

// RightIdentity returns the truth constant e such that op(x,e) == x, if any.
func (o *Op) RightIdentity() (val, ok bool) {
	if o.rightID == nil {
		return false, false
	}
	return *o.rightID, true
}

// Dual returns the De Morgan dual, or nil when none is known.
// For every built-in, Dual is an involution: o.Dual().Dual() == o.
func (o *Op) Dual() *Op { return o.dual }

// Converse returns the operator with swapped operands, or nil when none is
// known. Commutative operators are their own converse.
func (o *Op) Converse() *Op { return o.converse }

// Truth evaluates the operator on concrete truth values. The caller is
// responsible for passing a number of values matching the operator's arity;
// unbounded operators accept any number.
func (o *Op) Truth(vals ...bool) bool { return o.truth(vals...) }

func truthPtr(b bool) *bool { v := b; return &v }

// Built-in operators.
var (
	True           = &Op{name: "true", symbol: "⊤", arity: 0, truth: func(...bool) bool { return true }, commutative: Yes, associative: Yes}
	False          = &Op{name: "false", symbol: "⊥", arity: 0, truth: func(...bool) bool { return false }, commutative: Yes, associative: Yes}
	Id             = &Op{name: "identity", symbol: "", arity: 1, truth: func(v ...bool) bool { return v[0] }, commutative: Yes, associative: Yes}
	Not            = &Op{name: "not", symbol: "¬", arity: 1, truth: func(v ...bool) bool { return !v[0] }, commutative: Yes, associative: Yes}
	And            = &Op{name: "and", symbol: "∧", arity: NAry, truth: andTruth, commutative: Yes, associative: Yes, leftID: truthPtr(true), rightID: truthPtr(true)}
	Or             = &Op{name: "or", symbol: "∨", arity: NAry, truth: orTruth, commutative: Yes, associative: Yes, leftID: truthPtr(false), rightID: truthPtr(false)}
	Nand           = &Op{name: "nand", symbol: "⊼", arity: 2, truth: func(v ...bool) bool { return !(v[0] && v[1]) }, commutative: Yes, associative: No}
	Nor            = &Op{name: "nor", symbol: "⊽", arity: 2, truth: func(v ...bool) bool { return !(v[0] || v[1]) }, commutative: Yes, associative: No}
	Xor            = &Op{name: "xor", symbol: "⊕", arity: 2, truth: func(v ...bool) bool { return v[0] != v[1] }, commutative: Yes, associative: Yes, leftID: truthPtr(false), rightID: truthPtr(false)}
	Xnor           = &Op{name: "xnor", symbol: "⇔", arity: 2, truth: func(v ...bool) bool { return v[0] == v[1] }, commutative: Yes, associative: Yes, leftID: truthPtr(true), rightID: truthPtr(true)}
	Implies        = &Op{name: "implies", symbol: "→", arity: 2, truth: func(v ...bool) bool { return !v[0] || v[1] }, commutative: No, associative: No, leftID: truthPtr(true)}
	NotImplies     = &Op{name: "not-implies", symbol: "↛", arity: 2, truth: func(v ...bool) bool { return v[0] && !v[1] }, commutative: No, associative: No, rightID: truthPtr(false)}
	ConvImplies    = &Op{name: "converse-implies", symbol: "←", arity: 2, truth: func(v ...bool) bool { return v[0] || !v[1] }, commutative: No, associative: No, rightID: truthPtr(true)}
	NotConvImplies = &Op{name: "not-converse-implies", symbol: "↚", arity: 2, truth: func(v ...bool) bool { return !v[0] && v[1] }, commutative: No, associative: No, leftID: truthPtr(false)}
)

func andTruth(vals ...bool) bool {
	for _, v := range vals {
		if !v {
			return false
		}
	}
	return true
}

func orTruth(vals ...bool) bool {
	for _, v := range vals {
		if v {
			return true
		}
	}
	return false
}

func init() {
	pairDual(True, False)
	selfDual(Id)
	selfDual(Not)
	pairDual(And, Or)
	pairDual(Nand, Nor)
	pairDual(Xor, Xnor)
	pairDual(Implies, NotConvImplies)
	pairDual(ConvImplies, NotImplies)

	for _, o := range builtins {
		if o.commutative == Yes {
			o.converse = o
		}
	}
	pairConverse(Implies, ConvImplies)
	pairConverse(NotImplies, NotConvImplies)
}

func pairDual(a, b *Op) {
	a.dual = b
	b.dual = a
}

func selfDual(o *Op) { o.dual = o }

func pairConverse(a, b *Op) {
	a.converse = b
	b.converse = a
}

var builtins = []*Op{
	True, False, Id, Not, And, Or,
	Nand, Nor, Xor, Xnor,
	Implies, NotImplies, ConvImplies, NotConvImplies,
}
