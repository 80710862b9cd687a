package todos

import "fmt"

// ErrUnknownAction is returned when a scenario names an action type that has
// no constructor.
type ErrUnknownAction struct {
	Type ActionType
}

func (e *ErrUnknownAction) Error() string {
	return fmt.Sprintf("todos: unknown action type %q", e.Type)
}

// ErrMissingField is returned when a scenario action lacks the payload its
// type requires.
type ErrMissingField struct {
	Type  ActionType
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("todos: action %q requires field %q", e.Type, e.Field)
}
