package store_test

import (
	"path/filepath"
	"testing"

	"whisper/internal/domain"
	"whisper/internal/store"
)

func TestMemory_RoundTrip(t *testing.T) {
	s := store.NewMemory()

	var missing domain.Profile
	ok, err := s.Get("profile/alice.test", &missing)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("missing key reported present")
	}

	name := "Alice"
	in := domain.Profile{X25519Pubkey: "cGs=", KeyVersion: 3, RegisteredAt: 99, DisplayName: &name}
	if err := s.Put("profile/alice.test", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out domain.Profile
	ok, err = s.Get("profile/alice.test", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.KeyVersion != 3 || out.DisplayName == nil || *out.DisplayName != "Alice" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestFile_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "whisper.json")

	s, err := store.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	g := domain.GroupChat{GroupID: "team", Creator: "alice.test", CreatedAt: 7}
	if err := s.Put("group/team", g); err != nil {
		t.Fatalf("put: %v", err)
	}

	reopened, err := store.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var out domain.GroupChat
	ok, err := reopened.Get("group/team", &out)
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if out.Creator != "alice.test" || out.CreatedAt != 7 {
		t.Fatalf("persisted value mismatch: %+v", out)
	}
}

func TestFile_ReplaceValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whisper.json")
	s, err := store.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Put("k", 1); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("k", 2); err != nil {
		t.Fatalf("replace: %v", err)
	}
	var n int
	if ok, err := s.Get("k", &n); err != nil || !ok || n != 2 {
		t.Fatalf("got n=%d ok=%v err=%v", n, ok, err)
	}
}
