package todos

import (
	"errors"
	"fmt"
	"io"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

type (
	// record is the YAML form of a single action.
	record struct {
		Type ActionType `yaml:"type"`
		Todo *Todo      `yaml:"todo,omitempty"`
		Goal *Goal      `yaml:"goal,omitempty"`
		ID   *int       `yaml:"id,omitempty"`
	}

	scenario struct {
		Actions []record `yaml:"actions"`
	}
)

// LoadScenario decodes a YAML document of the form
//
//	actions:
//	  - type: ADD_TODO
//	    todo: {id: 0, name: Walk the dog, complete: false}
//	  - type: REMOVE_TODO
//	    id: 0
//
// into actions, in document order. An empty document yields no actions.
func LoadScenario(r io.Reader) (g.Slice[Action], error) {
	var sc scenario

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	actions := g.NewSlice[Action]()

	for i, rec := range sc.Actions {
		action, err := rec.action()
		if err != nil {
			return nil, fmt.Errorf("scenario action %d: %w", i, err)
		}

		actions.Push(action)
	}

	return actions, nil
}

func (r record) action() (Action, error) {
	switch r.Type {
	case TypeAddTodo:
		if r.Todo == nil {
			return nil, &ErrMissingField{Type: r.Type, Field: "todo"}
		}

		return AddTodoAction(*r.Todo), nil
	case TypeAddGoal:
		if r.Goal == nil {
			return nil, &ErrMissingField{Type: r.Type, Field: "goal"}
		}

		return AddGoalAction(*r.Goal), nil
	case TypeRemoveTodo, TypeToggleTodo, TypeRemoveGoal:
		if r.ID == nil {
			return nil, &ErrMissingField{Type: r.Type, Field: "id"}
		}

		switch r.Type {
		case TypeRemoveTodo:
			return RemoveTodoAction(*r.ID), nil
		case TypeToggleTodo:
			return ToggleTodoAction(*r.ID), nil
		default:
			return RemoveGoalAction(*r.ID), nil
		}
	default:
		return nil, &ErrUnknownAction{Type: r.Type}
	}
}

// DefaultScenario returns the sample sequence of actions: three to-dos are
// added, one removed and one toggled, then two goals are added and one removed.
func DefaultScenario() g.Slice[Action] {
	return g.SliceOf(
		AddTodoAction(Todo{ID: 0, Name: "Walk the dog"}),
		AddTodoAction(Todo{ID: 1, Name: "Wash the car"}),
		AddTodoAction(Todo{ID: 2, Name: "Go to the gym", Complete: true}),
		RemoveTodoAction(1),
		ToggleTodoAction(0),
		AddGoalAction(Goal{ID: 0, Name: "Learn Redux"}),
		AddGoalAction(Goal{ID: 1, Name: "Lose 20 pounds"}),
		RemoveGoalAction(0),
	)
}
