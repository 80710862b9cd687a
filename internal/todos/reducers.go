package todos

import (
	"github.com/enetx/g"
	"github.com/enetx/store"
)

// App is the root reducer. It fans every action out to Todos and Goals.
var App = store.Combine(
	store.Region(
		func(s State) g.Slice[Todo] { return s.Todos },
		func(s State, todos g.Slice[Todo]) State { s.Todos = todos; return s },
		Todos,
	),
	store.Region(
		func(s State) g.Slice[Goal] { return s.Goals },
		func(s State, goals g.Slice[Goal]) State { s.Goals = goals; return s },
		Goals,
	),
)

// New creates a store driven by App.
func New() *store.Store[State, Action] {
	return store.New(App)
}

// Todos reduces the to-do list. A nil list is treated as empty.
func Todos(state g.Slice[Todo], action Action) g.Slice[Todo] {
	if state == nil {
		state = g.Slice[Todo]{}
	}

	switch a := action.(type) {
	case AddTodo:
		return state.Clone().Append(a.Todo)
	case RemoveTodo:
		return state.Iter().Exclude(func(t Todo) bool { return t.ID == a.ID }).Collect()
	case ToggleTodo:
		next := state.Clone()
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Complete = !next[i].Complete
			}
		}

		return next
	default:
		return state
	}
}

// Goals reduces the goal list. A nil list is treated as empty.
func Goals(state g.Slice[Goal], action Action) g.Slice[Goal] {
	if state == nil {
		state = g.Slice[Goal]{}
	}

	switch a := action.(type) {
	case AddGoal:
		return state.Clone().Append(a.Goal)
	case RemoveGoal:
		return state.Iter().Exclude(func(goal Goal) bool { return goal.ID == a.ID }).Collect()
	default:
		return state
	}
}
