package store

// Container is the contract shared by Store and SyncStore.
type Container[S, A any] interface {
	State() S
	Dispatch(A) A
	Subscribe(Listener) Unsubscribe
	Listeners() int
	MarshalJSON() ([]byte, error)
}
