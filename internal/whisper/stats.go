package whisper

import "whisper/internal/domain"

// Stats returns the read-only aggregate snapshot: distinct registered
// accounts, total messages relayed, and the instance owner.
func (c *Contract) Stats() (domain.Stats, error) {
	st, err := c.loadState()
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		ProfileCount: st.ProfileCount,
		MessageCount: st.MessageCount,
		Owner:        st.Owner,
	}, nil
}
