package crypto

import "encoding/base64"

// KeyBytes is the length of an X25519 public key.
const KeyBytes = 32

// EncodeKey returns the standard base64 wire form of a key.
func EncodeKey(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeKey decodes the standard base64 wire form of a key. Length is not
// checked here; callers validate against KeyBytes.
func DecodeKey(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
