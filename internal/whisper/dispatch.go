package whisper

import "whisper/internal/domain"

// nextMessageID advances the shared message counter and persists it. Ids
// are strictly increasing across direct, paid, and group messages, with no
// gaps: the counter only moves on calls that commit.
func (c *Contract) nextMessageID(st *state) (uint64, error) {
	st.MessageCount++
	if err := c.saveState(*st); err != nil {
		return 0, err
	}
	return st.MessageCount, nil
}

// SendMessage relays an encrypted direct message. The body is never
// stored; it leaves the system once, on the message notification.
func (c *Contract) SendMessage(env domain.Env, to domain.AccountID, encryptedBody, nonce string, recipientKeyVersion uint32, replyTo *string) error {
	st, err := c.loadState()
	if err != nil {
		return err
	}
	registered, err := c.HasProfile(to)
	if err != nil {
		return err
	}
	if !registered {
		return ErrUnknownRecipient
	}

	id, err := c.nextMessageID(&st)
	if err != nil {
		return err
	}
	c.sink.Emit(domain.EventMessage, domain.Message{
		ID:                  id,
		From:                env.Caller(),
		To:                  to,
		EncryptedBody:       encryptedBody,
		Nonce:               nonce,
		RecipientKeyVersion: recipientKeyVersion,
		ReplyTo:             replyTo,
		Timestamp:           env.Now(),
	})
	return nil
}

// SendMessageWithPayment relays a direct message and forwards the attached
// value to the recipient in the same call. Coupling the two means the
// payment is only released together with this specific ciphertext: the
// notification and the transfer commit or reject as one.
func (c *Contract) SendMessageWithPayment(env domain.Env, to domain.AccountID, encryptedBody, nonce string, recipientKeyVersion uint32, replyTo *string) error {
	st, err := c.loadState()
	if err != nil {
		return err
	}
	amount := env.AttachedValue()
	if amount == 0 {
		return ErrNoPayment
	}
	registered, err := c.HasProfile(to)
	if err != nil {
		return err
	}
	if !registered {
		return ErrUnknownRecipient
	}

	id, err := c.nextMessageID(&st)
	if err != nil {
		return err
	}
	env.Transfer(to, amount)
	c.sink.Emit(domain.EventMessage, domain.Message{
		ID:                  id,
		From:                env.Caller(),
		To:                  to,
		EncryptedBody:       encryptedBody,
		Nonce:               nonce,
		RecipientKeyVersion: recipientKeyVersion,
		ReplyTo:             replyTo,
		Timestamp:           env.Now(),
		Payment:             &domain.Payment{Token: c.token, Amount: amount.String()},
	})
	return nil
}

// SendGroupMessage relays an encrypted message to an existing group. No
// recipient list is emitted; delivery fan-out is an off-host concern.
func (c *Contract) SendGroupMessage(env domain.Env, id domain.GroupID, encryptedBody, nonce string, groupKeyVersion uint32) error {
	st, err := c.loadState()
	if err != nil {
		return err
	}
	var g domain.GroupChat
	exists, err := c.store.Get(groupKey(id), &g)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownGroup
	}

	mid, err := c.nextMessageID(&st)
	if err != nil {
		return err
	}
	c.sink.Emit(domain.EventGroupMessage, domain.GroupMessage{
		ID:              mid,
		GroupID:         id,
		From:            env.Caller(),
		EncryptedBody:   encryptedBody,
		Nonce:           nonce,
		GroupKeyVersion: groupKeyVersion,
		Timestamp:       env.Now(),
	})
	return nil
}
