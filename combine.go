package store

import "github.com/enetx/g"

// Slot binds a reducer to one region of a composite state.
// Slots are created with Region and assembled with Combine.
type Slot[S, A any] struct {
	apply func(prev, next S, action A) S
}

// Region creates a Slot for the sub-state of S selected by get and written
// back by set. set must return a new S rather than modify its argument.
func Region[S, T, A any](get func(S) T, set func(S, T) S, reducer Reducer[T, A]) Slot[S, A] {
	return Slot[S, A]{
		apply: func(prev, next S, action A) S {
			return set(next, reducer(get(prev), action))
		},
	}
}

// Combine builds a reducer that fans every action out to each slot. Each
// region's reducer receives that region's sub-state from the previous state,
// never a value already produced by another region in the same transition.
func Combine[S, A any](slots ...Slot[S, A]) Reducer[S, A] {
	regions := g.SliceOf(slots...)

	return func(state S, action A) S {
		next := state
		for slot := range regions.Iter() {
			next = slot.apply(state, next, action)
		}

		return next
	}
}

// Identity returns a reducer that leaves the state unchanged for every action.
func Identity[S, A any]() Reducer[S, A] {
	return func(state S, _ A) S { return state }
}
