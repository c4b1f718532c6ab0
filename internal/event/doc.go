// Package event serializes whisper notifications to their wire form.
//
// Every notification is one append-only log line:
//
//	EVENT_JSON:{"standard":"whisper","version":"1.0.0","event":<kind>,"data":<payload>}
//
// This line is the only externally observable trace of message traffic.
// The sink never retries or deduplicates; that is an off-host indexer
// concern. Capture is the in-memory test double.
package event
