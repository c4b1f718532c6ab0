package domain

// GroupChat is the creation-time metadata of a group. All fields are
// immutable after creation; membership lives off-host and is never stored.
type GroupChat struct {
	GroupID   GroupID   `json:"group_id"`
	Creator   AccountID `json:"creator"`
	CreatedAt uint64    `json:"created_at"`
	Name      *string   `json:"name"`
}
