package domain

// Profile is a registered (public key, version, metadata) tuple for one
// account. It is replaced wholesale on every registration call: a rotation
// that omits DisplayName clears any previously set name.
type Profile struct {
	X25519Pubkey string  `json:"x25519_pubkey"`
	KeyVersion   uint32  `json:"key_version"`
	RegisteredAt uint64  `json:"registered_at"`
	DisplayName  *string `json:"display_name"`
}
