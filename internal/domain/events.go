package domain

// Notification payloads. Field names, order, and nesting are the wire
// format consumed by off-host indexers and must not change.

// Event kinds.
const (
	EventKeyRegistered = "key_registered"
	EventMessage       = "message"
	EventGroupCreated  = "group_created"
	EventGroupMessage  = "group_message"
)

// KeyRegistered announces a new or rotated messaging key.
type KeyRegistered struct {
	AccountID    AccountID `json:"account_id"`
	X25519Pubkey string    `json:"x25519_pubkey"`
	KeyVersion   uint32    `json:"key_version"`
	DisplayName  *string   `json:"display_name"`
}

// Payment is the value attached to a paid message.
type Payment struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

// Message is a direct message notification. Payment is present only on
// paid messages; the key is absent entirely otherwise.
type Message struct {
	ID                  uint64    `json:"id"`
	From                AccountID `json:"from"`
	To                  AccountID `json:"to"`
	EncryptedBody       string    `json:"encrypted_body"`
	Nonce               string    `json:"nonce"`
	RecipientKeyVersion uint32    `json:"recipient_key_version"`
	ReplyTo             *string   `json:"reply_to"`
	Timestamp           uint64    `json:"timestamp"`
	Payment             *Payment  `json:"payment,omitempty"`
}

// GroupCreated announces a new group. MemberKeys is the creator-supplied
// blob mapping member accounts to member-specific encrypted copies of the
// group key; the directory passes it through uninterpreted.
type GroupCreated struct {
	GroupID    GroupID   `json:"group_id"`
	Creator    AccountID `json:"creator"`
	Name       *string   `json:"name"`
	MemberKeys string    `json:"member_keys"`
	Timestamp  uint64    `json:"timestamp"`
}

// GroupMessage is a group message notification. There is no recipient
// list: fan-out is an off-host concern.
type GroupMessage struct {
	ID              uint64    `json:"id"`
	GroupID         GroupID   `json:"group_id"`
	From            AccountID `json:"from"`
	EncryptedBody   string    `json:"encrypted_body"`
	Nonce           string    `json:"nonce"`
	GroupKeyVersion uint32    `json:"group_key_version"`
	Timestamp       uint64    `json:"timestamp"`
}

// EventSink receives one notification per successful state-changing call.
// Emit must not fail the surrounding call; sinks log and drop on internal
// errors.
type EventSink interface {
	Emit(event string, data any)
}
