// Package sat defines the narrow contract between the logic engine and an
// external SAT solver: a set of CNF clauses over signed integer literals
// goes in, a stream of satisfying assignments comes out. The search
// algorithm behind the contract is not this package's concern.
package sat

import (
	"errors"
	"iter"
)

// ErrReleased is reported when an Assignments iterator is advanced after
// Close. This is a programming error: correct scoping makes it unreachable.
var ErrReleased = errors.New("sat: solver handle used after release")

// An Engine produces satisfying assignments for CNF problems. Clauses are
// lists of signed integers: the absolute value is a 1-based variable index,
// the sign its polarity. nVars is the total number of variables; variables
// beyond those mentioned in clauses are free.
type Engine interface {
	Solve(clauses [][]int, nVars int) (Assignments, error)
}

// Assignments iterates over the satisfying assignments of a problem. The
// iterator owns an exclusive handle to solver-native resources; callers must
// Close it when done, whether or not it is exhausted. Each advance asserts
// the negation of the previously returned assignment, so iteration
// enumerates distinct solutions.
type Assignments interface {
	// Next returns the next satisfying assignment, indexed by variable
	// (entry i holds the value of variable i+1), or false when no further
	// solution exists or the iterator was released.
	Next() ([]bool, bool)
	// Close releases the underlying solver handle. Further calls to Next
	// return false and set Err to ErrReleased. Close is idempotent.
	Close() error
	// Err reports a sticky iteration error, if any.
	Err() error
}

// All adapts an Assignments iterator to a single-use range-over sequence.
// The iterator is closed when the sequence is exhausted or abandoned early.
func All(a Assignments) iter.Seq[[]bool] {
	return func(yield func([]bool) bool) {
		defer a.Close()
		for {
			m, ok := a.Next()
			if !ok || !yield(m) {
				return
			}
		}
	}
}
