// Package client is the typed HTTP client for a whisperd relay.
//
// All requests are JSON over HTTP and accept a context for cancellation
// and deadlines. Non-2xx statuses are returned as errors carrying the
// relay's rejection reason.
package client
