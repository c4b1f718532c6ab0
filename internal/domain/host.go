package domain

// Env is the per-call view of the host execution environment. The host
// resolves caller identity, stamps the call with a monotonic timestamp,
// and carries the value attached to the call.
//
// Transfer stages an outbound value transfer; the host applies staged
// transfers only if the call returns success, so a transfer and the state
// transition that requested it commit or reject together.
type Env interface {
	Caller() AccountID
	Now() uint64
	AttachedValue() Amount
	Transfer(to AccountID, amount Amount)
}

// Store is the durable key-value state the host provides. Values are
// JSON documents; Get reports whether the key was present.
//
// Apply-or-reject atomicity across a call is the host's concern: once an
// operation has validated its preconditions and begun writing, the store
// must not fail.
type Store interface {
	Get(key string, out any) (bool, error)
	Put(key string, v any) error
}
