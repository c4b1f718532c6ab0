// Package crypto holds the client-side key tooling for whisper.
//
// Contents
//
//   - X25519 key pair generation with RFC 7748 clamping (GenerateX25519)
//   - Short public-key fingerprints for display (Fingerprint)
//   - The base64 wire form of 32-byte keys (EncodeKey, DecodeKey)
//
// The directory core uses only the encoding half, to validate key shape.
// It never generates or derives key material on behalf of callers; the
// end-to-end cryptography itself happens off-host.
package crypto
