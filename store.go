// Package store provides a minimal observable state container. A Store holds
// a single state value that is only ever replaced by a pure Reducer, and it
// notifies registered listeners after every dispatched action. Collections
// are built with types from the github.com/enetx/g library.
package store

import (
	"log/slog"

	"github.com/enetx/g"
)

// New creates a Store driven by the given reducer. The state starts as the
// zero value of S until the first action is dispatched.
// It panics with *ErrNilReducer if reducer is nil.
func New[S, A any](reducer Reducer[S, A]) *Store[S, A] {
	if reducer == nil {
		panic(&ErrNilReducer{})
	}

	return &Store[S, A]{reducer: reducer}
}

// Clone creates a new Store with the same reducer and logger but a fresh,
// absent state and no listeners.
func (s *Store[S, A]) Clone() *Store[S, A] {
	return &Store[S, A]{reducer: s.reducer, logger: s.logger}
}

// Logger attaches a logger that records every dispatch at debug level.
// Passing nil disables logging.
func (s *Store[S, A]) Logger(l *slog.Logger) *Store[S, A] {
	s.logger = l
	return s
}

// Sync returns a thread-safe wrapper around the store. The wrapper shares the
// store's state and listeners, so the original must not be used afterwards.
func (s *Store[S, A]) Sync() *SyncStore[S, A] {
	return &SyncStore[S, A]{store: s}
}

// State returns the current state. Callers must treat the value as read-only;
// it is not copied.
func (s *Store[S, A]) State() S { return s.state }

// Listeners returns the number of live registrations.
func (s *Store[S, A]) Listeners() int { return int(s.subscriptions.Len()) }

// Subscribe registers a listener to be called after every dispatch and returns
// a function that revokes this registration. Registering the same listener
// twice yields two independent registrations.
func (s *Store[S, A]) Subscribe(listener Listener) Unsubscribe {
	sub := s.subscribe(listener)
	return func() { s.unsubscribe(sub) }
}

// Dispatch applies the reducer to the current state and action, replaces the
// state with the result and then calls every listener registered at that
// moment, in registration order. It returns the action.
//
// Listeners subscribed during notification are first called on the next
// dispatch. Listeners revoked during notification are not called if their
// turn has not come yet. A listener may dispatch again: the nested dispatch
// completes, including its own notification pass, before the outer pass
// resumes, so the remaining listeners of the outer pass observe the newest
// state. Dispatching from inside the reducer panics with *ErrDispatchInReducer.
func (s *Store[S, A]) Dispatch(action A) A {
	s.notify(s.reduce(action))
	return action
}

// reduce replaces the state and returns a snapshot of the registrations that
// must be notified for this dispatch.
func (s *Store[S, A]) reduce(action A) g.Slice[*subscription] {
	if s.dispatching {
		panic(&ErrDispatchInReducer{Action: action})
	}

	s.dispatching = true
	defer func() { s.dispatching = false }()

	s.state = s.reducer(s.state, action)

	if s.logger != nil {
		s.logger.Debug("action dispatched", "action", action, "listeners", s.Listeners())
	}

	return s.subscriptions.Clone()
}

func (s *Store[S, A]) notify(subs g.Slice[*subscription]) {
	for sub := range subs.Iter() {
		if sub.revoked.Load() || sub.listener == nil {
			continue
		}

		sub.listener()
	}
}

func (s *Store[S, A]) subscribe(listener Listener) *subscription {
	sub := &subscription{listener: listener}
	s.subscriptions.Push(sub)

	return sub
}

// unsubscribe removes exactly one registration. It reports whether the
// registration was still live.
func (s *Store[S, A]) unsubscribe(sub *subscription) bool {
	if !sub.revoked.CompareAndSwap(false, true) {
		return false
	}

	s.subscriptions = s.subscriptions.
		Iter().
		Exclude(func(other *subscription) bool { return other == sub }).
		Collect()

	return true
}
