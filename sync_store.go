package store

import "github.com/enetx/g"

// Interface compliance checks.
var (
	_ Container[any, any] = (*Store[any, any])(nil)
	_ Container[any, any] = (*SyncStore[any, any])(nil)
)

// State is the thread-safe version of Store.State.
func (ss *SyncStore[S, A]) State() S {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.State()
}

// Listeners is the thread-safe version of Store.Listeners.
func (ss *SyncStore[S, A]) Listeners() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.Listeners()
}

// Subscribe is the thread-safe version of Store.Subscribe.
// The returned function may be called from any goroutine, including from
// inside a listener.
func (ss *SyncStore[S, A]) Subscribe(listener Listener) Unsubscribe {
	ss.mu.Lock()
	sub := ss.store.subscribe(listener)
	ss.mu.Unlock()

	return func() {
		ss.mu.Lock()
		defer ss.mu.Unlock()

		ss.store.unsubscribe(sub)
	}
}

// Dispatch is the thread-safe version of Store.Dispatch.
// Concurrent dispatches are applied one at a time, and each one finishes
// notifying its listeners before the next is reduced. Listeners are called
// without the state lock held, so they may call State, Subscribe and
// Unsubscribe. A listener or reducer that calls Dispatch on the same
// SyncStore deadlocks.
func (ss *SyncStore[S, A]) Dispatch(action A) A {
	ss.dispatchMu.Lock()
	defer ss.dispatchMu.Unlock()

	ss.store.notify(ss.reduce(action))

	return action
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the current state.
func (ss *SyncStore[S, A]) MarshalJSON() ([]byte, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.MarshalJSON()
}

func (ss *SyncStore[S, A]) reduce(action A) g.Slice[*subscription] {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.store.reduce(action)
}
