package crypto_test

import (
	"testing"

	"whisper/internal/crypto"
)

func TestGenerateX25519_ClampedAndDistinct(t *testing.T) {
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if priv[0]&7 != 0 || priv[31]&128 != 0 || priv[31]&64 == 0 {
		t.Fatalf("private key not clamped: %x", priv[:])
	}
	_, pub2, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if pub == pub2 {
		t.Fatal("two generations produced the same public key")
	}
}

func TestEncodeDecodeKey_RoundTrip(t *testing.T) {
	_, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	enc := crypto.EncodeKey(pub[:])
	raw, err := crypto.DecodeKey(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != crypto.KeyBytes {
		t.Fatalf("decoded length = %d, want %d", len(raw), crypto.KeyBytes)
	}
	for i := range raw {
		if raw[i] != pub[i] {
			t.Fatal("round trip mismatch")
		}
	}
}

func TestDecodeKey_RejectsBadEncoding(t *testing.T) {
	if _, err := crypto.DecodeKey("!!not base64!!"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFingerprint_StableAndShort(t *testing.T) {
	_, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	a := crypto.Fingerprint(pub[:])
	b := crypto.Fingerprint(pub[:])
	if a != b {
		t.Fatal("fingerprint not deterministic")
	}
	if len(a) != 20 {
		t.Fatalf("fingerprint length = %d, want 20 hex chars", len(a))
	}
}
