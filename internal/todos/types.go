// Package todos is a small to-do and goal tracker built on a store.Store.
// Its state is made of two independent regions, each governed by its own
// reducer and combined into App.
package todos

import "github.com/enetx/g"

// ActionType is the discriminant carried by every action.
type ActionType string

const (
	TypeAddTodo    ActionType = "ADD_TODO"
	TypeRemoveTodo ActionType = "REMOVE_TODO"
	TypeToggleTodo ActionType = "TOGGLE_TODO"
	TypeAddGoal    ActionType = "ADD_GOAL"
	TypeRemoveGoal ActionType = "REMOVE_GOAL"
)

type (
	// Todo is a single to-do item.
	Todo struct {
		ID       int    `json:"id"       yaml:"id"`
		Name     string `json:"name"     yaml:"name"`
		Complete bool   `json:"complete" yaml:"complete"`
	}

	// Goal is a single long-term goal.
	Goal struct {
		ID   int    `json:"id"   yaml:"id"`
		Name string `json:"name" yaml:"name"`
	}

	// State is the whole application state.
	State struct {
		Todos g.Slice[Todo] `json:"todos"`
		Goals g.Slice[Goal] `json:"goals"`
	}
)

// Action is a request to change the state. Reducers switch on the concrete
// type and leave the state unchanged for actions they do not know.
type Action interface {
	Type() ActionType
}

type (
	AddTodo    struct{ Todo Todo }
	RemoveTodo struct{ ID int }
	ToggleTodo struct{ ID int }
	AddGoal    struct{ Goal Goal }
	RemoveGoal struct{ ID int }
)

func (AddTodo) Type() ActionType { return TypeAddTodo }
func (RemoveTodo) Type() ActionType { return TypeRemoveTodo }
func (ToggleTodo) Type() ActionType { return TypeToggleTodo }
func (AddGoal) Type() ActionType { return TypeAddGoal }
func (RemoveGoal) Type() ActionType { return TypeRemoveGoal }

func AddTodoAction(todo Todo) Action { return AddTodo{Todo: todo} }
func RemoveTodoAction(id int) Action { return RemoveTodo{ID: id} }
func ToggleTodoAction(id int) Action { return ToggleTodo{ID: id} }
func AddGoalAction(goal Goal) Action { return AddGoal{Goal: goal} }
func RemoveGoalAction(id int) Action { return RemoveGoal{ID: id} }
