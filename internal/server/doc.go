// Package server exposes the whisper contract over JSON/HTTP for callers
// that are not on the ledger host.
//
// The server is the host adapter for remote callers: request bodies name
// the calling account and the value attached to the call, and the faucet
// endpoint funds accounts so deposit-gated operations are exercisable.
// Authenticating callers is a host concern and out of scope here; this
// surface is meant for development and indexer testing, like running the
// contract against a local ledger.
//
// Routes
//
//	POST /faucet                   fund an account
//	POST /register                 register_key
//	POST /messages                 send_message
//	POST /messages/paid            send_message_with_payment
//	POST /groups                   create_group
//	POST /groups/{id}/messages     send_group_message
//	GET  /profiles/{account}       get_profile (404 when absent)
//	GET  /profiles/{account}/exists  has_profile
//	GET  /groups/{id}              get_group (404 when absent)
//	GET  /stats                    get_stats
//	GET  /balances/{account}       host balance lookup
//	GET  /health                   liveness
package server
