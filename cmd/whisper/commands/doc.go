// Package commands defines the whisper client CLI.
//
// Commands
//
//	keygen        Generate an X25519 key pair for registration
//	faucet        Fund an account on the relay's host
//	register      Register or rotate your messaging key
//	send          Relay an encrypted message to an account
//	pay           Relay a message with attached value
//	group         Create, inspect, and message group chats
//	profile       Look up an account's registered key
//	stats         Show directory totals
//
// Amount flags and arguments are counts of nano value-units
// (1 value-unit = 1e9 nano); the storage deposit minimum is 10000000.
package commands
