// Package whisper implements the key directory and encrypted-message relay
// state machine.
//
// The Contract owns the only mutable state in the system: the account to
// Profile mapping, the group-id to GroupChat mapping, and two aggregate
// counters. Every operation is a single, self-contained state transition
// executed inside one host-serialized call: it validates all preconditions
// against the store, then writes, then emits exactly one notification.
// A rejected call performs no writes at all.
//
// Message bodies are never persisted. The contract validates shape (key
// length, recipient existence) but never decrypts or derives cryptographic
// material; end-to-end encryption is the callers' concern.
package whisper
