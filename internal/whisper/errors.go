package whisper

import "errors"

// Terminal call rejections. Each is raised before the first state write,
// so a failed call is indistinguishable from one that never happened.
var (
	ErrMalformedKey        = errors.New("whisper: pubkey must be standard base64 of exactly 32 bytes")
	ErrInsufficientDeposit = errors.New("whisper: attach at least 0.01 unit for storage deposit")
	ErrUnknownRecipient    = errors.New("whisper: recipient has no registered messaging key")
	ErrUnknownGroup        = errors.New("whisper: group does not exist")
	ErrDuplicateGroup      = errors.New("whisper: group id already exists")
	ErrNoPayment           = errors.New("whisper: payment message requires attached value")
	ErrAlreadyInitialized  = errors.New("whisper: already initialized")
	ErrNotInitialized      = errors.New("whisper: not initialized")
)
