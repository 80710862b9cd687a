package store

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/enetx/g"
)

type (
	// Reducer computes the next state from the current state and an action.
	// The zero value of S stands for "no state yet"; a reducer is expected to
	// return its default in that case and to return the state unchanged for
	// actions it does not recognize.
	Reducer[S, A any] func(state S, action A) S

	// Listener is notified after every dispatch. It receives no arguments and
	// must call State itself to learn the new value.
	Listener func()

	// Unsubscribe revokes the registration it was returned for.
	// Calling it more than once is a no-op.
	Unsubscribe func()

	// subscription is a single registration of a listener.
	subscription struct {
		listener Listener
		revoked  atomic.Bool
	}

	// Store is an observable state container. It holds a single state value
	// that is replaced by the reducer on every dispatch.
	Store[S, A any] struct {
		reducer       Reducer[S, A]
		state         S
		subscriptions g.Slice[*subscription]
		dispatching   bool
		logger        *slog.Logger
	}

	// SyncStore is a thread-safe wrapper around a Store.
	// Reads and subscription changes are guarded by a sync.RWMutex, and whole
	// dispatches (reduce plus notification) are serialized so listeners observe
	// dispatches in the order they were applied.
	SyncStore[S, A any] struct {
		store      *Store[S, A]
		mu         sync.RWMutex
		dispatchMu sync.Mutex
	}
)
