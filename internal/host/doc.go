// Package host provides an in-process stand-in for the ledger execution
// environment the whisper contract was written for.
//
// The ledger applies contract calls one at a time, in a deterministic
// total order, with no interleaving of partial effects. Memory reproduces
// that by funneling every call through one exclusive lock: the contract's
// uniqueness and counter invariants are only correct under strict
// serialization. The lock is a go-deadlock mutex so misuse shows up loudly
// in development.
//
// Value semantics match the ledger's: the attached deposit is debited up
// front and refunded in full when the call fails, and transfers requested
// during a call are staged and applied only on success. A rejected call is
// indistinguishable from one that never happened.
package host
