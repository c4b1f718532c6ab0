package whisper

import "whisper/internal/domain"

// DefaultTokenTag is the token tag carried by payment notifications unless
// the host configures another.
const DefaultTokenTag = "NEAR"

const stateKey = "state"

func profileKey(a domain.AccountID) string { return "profile/" + a.String() }
func groupKey(g domain.GroupID) string     { return "group/" + g.String() }

// state is the aggregate record: owner plus the two counters. It exists in
// the store from the moment Init commits; its presence is the initialized
// flag.
type state struct {
	Owner        domain.AccountID `json:"owner"`
	ProfileCount uint64           `json:"profile_count"`
	MessageCount uint64           `json:"message_count"`
}

// Contract is the directory and relay state machine. It must only be
// invoked through the host's serialization point; it performs no locking
// of its own.
type Contract struct {
	store domain.Store
	sink  domain.EventSink
	token string
}

// New returns a Contract over the given store and notification sink.
func New(store domain.Store, sink domain.EventSink) *Contract {
	return &Contract{store: store, sink: sink, token: DefaultTokenTag}
}

// SetTokenTag overrides the token tag on payment notifications.
func (c *Contract) SetTokenTag(tag string) { c.token = tag }

// Init establishes the deployed instance. The caller becomes the owner.
// Exactly one Init is valid per store; a second fails with
// ErrAlreadyInitialized and leaves state untouched.
func (c *Contract) Init(env domain.Env) error {
	var st state
	ok, err := c.store.Get(stateKey, &st)
	if err != nil {
		return err
	}
	if ok {
		return ErrAlreadyInitialized
	}
	return c.store.Put(stateKey, state{Owner: env.Caller()})
}

// Initialized reports whether Init has committed on this store.
func (c *Contract) Initialized() (bool, error) {
	var st state
	return c.store.Get(stateKey, &st)
}

func (c *Contract) loadState() (state, error) {
	var st state
	ok, err := c.store.Get(stateKey, &st)
	if err != nil {
		return state{}, err
	}
	if !ok {
		return state{}, ErrNotInitialized
	}
	return st, nil
}

func (c *Contract) saveState(st state) error {
	return c.store.Put(stateKey, st)
}
