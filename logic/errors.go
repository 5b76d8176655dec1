package logic

import (
	"fmt"

	"github.com/gologic/prop/op"
)

// An ArityError reports an operator applied to the wrong number of
// arguments. It is checked at every application, not only at construction.
type ArityError struct {
	Op   string
	Want op.Arity
	Got  int
}

func (e *ArityError) Error() string {
	if e.Want == op.NAry {
		return fmt.Sprintf("operator %q applied to %d arguments", e.Op, e.Got)
	}
	return fmt.Sprintf("operator %q wants %d arguments, got %d", e.Op, e.Want, e.Got)
}

// A NotRepresentableError reports a conversion between proposition shapes
// that cannot be expressed in the target's canonical form.
type NotRepresentableError struct {
	From string
	To   string
}

func (e *NotRepresentableError) Error() string {
	return fmt.Sprintf("cannot represent %s as %s", e.From, e.To)
}

// An UndefinedOpError reports an operator lacking an algebraic property
// required by the requested operation.
type UndefinedOpError struct {
	Op     string
	Reason string
}

func (e *UndefinedOpError) Error() string {
	return fmt.Sprintf("operator %q: %s", e.Op, e.Reason)
}
