// Package store provides the durable key-value state backing the whisper
// contract: an in-memory store for tests and a JSON file store for the
// relay daemon.
//
// Values are stored as JSON documents keyed by string. Both stores are
// effectively non-failing once a call has begun mutating, which is what
// the contract's validate-then-write discipline relies on; see
// domain.Store.
package store
