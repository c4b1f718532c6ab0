package domain

// Stats is the read-only aggregate snapshot returned by get_stats.
type Stats struct {
	ProfileCount uint64    `json:"profile_count"`
	MessageCount uint64    `json:"message_count"`
	Owner        AccountID `json:"owner"`
}
