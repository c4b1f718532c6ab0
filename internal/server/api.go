package server

import "whisper/internal/domain"

// Wire DTOs shared with internal/client.

// FaucetRequest funds an account on the in-process host.
type FaucetRequest struct {
	Account domain.AccountID `json:"account"`
	Amount  domain.Amount    `json:"amount"`
}

// RegisterRequest is the register_key call.
type RegisterRequest struct {
	Caller       domain.AccountID `json:"caller"`
	Deposit      domain.Amount    `json:"deposit"`
	X25519Pubkey string           `json:"x25519_pubkey"`
	DisplayName  *string          `json:"display_name"`
}

// MessageRequest is the send_message call; with Deposit set it is the
// send_message_with_payment call.
type MessageRequest struct {
	Caller              domain.AccountID `json:"caller"`
	Deposit             domain.Amount    `json:"deposit"`
	To                  domain.AccountID `json:"to"`
	EncryptedBody       string           `json:"encrypted_body"`
	Nonce               string           `json:"nonce"`
	RecipientKeyVersion uint32           `json:"recipient_key_version"`
	ReplyTo             *string          `json:"reply_to"`
}

// CreateGroupRequest is the create_group call.
type CreateGroupRequest struct {
	Caller     domain.AccountID `json:"caller"`
	Deposit    domain.Amount    `json:"deposit"`
	GroupID    domain.GroupID   `json:"group_id"`
	Name       *string          `json:"name"`
	MemberKeys string           `json:"member_keys"`
}

// GroupMessageRequest is the send_group_message call. The group id rides
// in the URL.
type GroupMessageRequest struct {
	Caller          domain.AccountID `json:"caller"`
	EncryptedBody   string           `json:"encrypted_body"`
	Nonce           string           `json:"nonce"`
	GroupKeyVersion uint32           `json:"group_key_version"`
}

// ExistsResponse answers has_profile.
type ExistsResponse struct {
	Registered bool `json:"registered"`
}

// BalanceResponse answers a host balance lookup.
type BalanceResponse struct {
	Balance domain.Amount `json:"balance"`
}

// ErrorResponse carries a rejected call's reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
