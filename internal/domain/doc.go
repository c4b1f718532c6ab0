// Package domain defines the shared types and interfaces of the whisper
// directory: account profiles, group metadata, notification payloads, and
// the host-environment contracts the core state machine is written against.
//
// Nothing in this package touches I/O. Concrete hosts live in internal/host,
// concrete stores in internal/store, and the state machine itself in
// internal/whisper.
package domain
