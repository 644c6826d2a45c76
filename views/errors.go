package views

import "fmt"

var (
	ErrPastEnd          = fmt.Errorf("position is at the terminal marker")
	ErrBeforeBegin      = fmt.Errorf("position is at the first element")
	ErrNotBidirectional = fmt.Errorf("sequence cannot retreat")
	ErrNotReversible    = fmt.Errorf("sequence has no reachable last position")
	ErrUnbounded        = fmt.Errorf("sequence is unbounded")
	ErrNoSequences      = fmt.Errorf("at least one sequence is required")
)

// ContractError is the panic value raised when a position operation is misused.
// It unwraps to one of the package's sentinel errors.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("views: %s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func violate(op string, err error) {
	panic(&ContractError{Op: op, Err: err})
}
