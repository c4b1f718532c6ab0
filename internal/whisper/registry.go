package whisper

import (
	"fmt"

	"whisper/internal/crypto"
	"whisper/internal/domain"
)

// RegisterKey registers or rotates the caller's X25519 messaging key.
//
// The encoded key must decode to exactly 32 bytes. A first registration
// requires the storage deposit and bumps the profile count; a rotation
// requires no deposit and increments the key version by one. The profile
// is replaced wholesale, so a rotation that omits displayName clears a
// previously set name.
func (c *Contract) RegisterKey(env domain.Env, pubkey string, displayName *string) error {
	raw, err := crypto.DecodeKey(pubkey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if len(raw) != crypto.KeyBytes {
		return ErrMalformedKey
	}

	st, err := c.loadState()
	if err != nil {
		return err
	}

	caller := env.Caller()
	var prev domain.Profile
	exists, err := c.store.Get(profileKey(caller), &prev)
	if err != nil {
		return err
	}

	version := uint32(1)
	if exists {
		version = prev.KeyVersion + 1
	} else if env.AttachedValue() < domain.StorageDeposit {
		return ErrInsufficientDeposit
	}

	profile := domain.Profile{
		X25519Pubkey: pubkey,
		KeyVersion:   version,
		RegisteredAt: env.Now(),
		DisplayName:  displayName,
	}
	if err := c.store.Put(profileKey(caller), profile); err != nil {
		return err
	}
	if !exists {
		st.ProfileCount++
		if err := c.saveState(st); err != nil {
			return err
		}
	}

	c.sink.Emit(domain.EventKeyRegistered, domain.KeyRegistered{
		AccountID:    caller,
		X25519Pubkey: pubkey,
		KeyVersion:   version,
		DisplayName:  displayName,
	})
	return nil
}

// GetProfile returns the profile registered for account, if any. Absence
// is not an error.
func (c *Contract) GetProfile(account domain.AccountID) (domain.Profile, bool, error) {
	var p domain.Profile
	ok, err := c.store.Get(profileKey(account), &p)
	if err != nil {
		return domain.Profile{}, false, err
	}
	return p, ok, nil
}

// HasProfile reports whether account has a registered messaging key.
func (c *Contract) HasProfile(account domain.AccountID) (bool, error) {
	var p domain.Profile
	return c.store.Get(profileKey(account), &p)
}
