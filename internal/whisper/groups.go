package whisper

import "whisper/internal/domain"

// CreateGroup stores group metadata under a globally unique id.
//
// memberKeys is an opaque blob mapping member accounts to member-specific
// encrypted copies of the group key. It is carried verbatim on the
// group_created notification and never stored or parsed: membership lives
// off-host.
func (c *Contract) CreateGroup(env domain.Env, id domain.GroupID, name *string, memberKeys string) error {
	// Group creation touches no counters; the state load is the
	// initialized check.
	if _, err := c.loadState(); err != nil {
		return err
	}
	if env.AttachedValue() < domain.StorageDeposit {
		return ErrInsufficientDeposit
	}

	var existing domain.GroupChat
	taken, err := c.store.Get(groupKey(id), &existing)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateGroup
	}

	now := env.Now()
	group := domain.GroupChat{
		GroupID:   id,
		Creator:   env.Caller(),
		CreatedAt: now,
		Name:      name,
	}
	if err := c.store.Put(groupKey(id), group); err != nil {
		return err
	}

	c.sink.Emit(domain.EventGroupCreated, domain.GroupCreated{
		GroupID:    id,
		Creator:    group.Creator,
		Name:       name,
		MemberKeys: memberKeys,
		Timestamp:  now,
	})
	return nil
}

// GetGroup returns the metadata stored for id, if any.
func (c *Contract) GetGroup(id domain.GroupID) (domain.GroupChat, bool, error) {
	var g domain.GroupChat
	ok, err := c.store.Get(groupKey(id), &g)
	if err != nil {
		return domain.GroupChat{}, false, err
	}
	return g, ok, nil
}
