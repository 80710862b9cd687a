package store

import "fmt"

// ErrNilReducer is the panic value raised by New when no reducer is given.
// A store without a reducer has no way to compute any state.
type ErrNilReducer struct{}

func (e *ErrNilReducer) Error() string {
	return "store: reducer must not be nil"
}

// ErrDispatchInReducer is the panic value raised when a reducer calls Dispatch
// on the store that is currently running it. The outer reduction would
// overwrite whatever state the nested dispatch produced.
type ErrDispatchInReducer struct {
	// Action is the action the nested call tried to dispatch.
	Action any
}

func (e *ErrDispatchInReducer) Error() string {
	return fmt.Sprintf("store: reducers may not dispatch actions (got %T)", e.Action)
}
