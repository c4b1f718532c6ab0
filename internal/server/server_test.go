package server_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"whisper/internal/client"
	"whisper/internal/domain"
	"whisper/internal/event"
	"whisper/internal/host"
	"whisper/internal/server"
	"whisper/internal/store"
	"whisper/internal/whisper"
)

func testKey(seed byte) string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{seed}, 32))
}

// startRelay brings up an initialized relay over httptest and returns a
// client plus the captured notification stream.
func startRelay(t *testing.T) (*client.Client, *event.Capture) {
	t.Helper()
	h := host.NewMemory()
	capture := &event.Capture{}
	contract := whisper.New(store.NewMemory(), capture)
	if err := h.Invoke("whisperd.operator", 0, contract.Init); err != nil {
		t.Fatalf("init: %v", err)
	}
	srv := httptest.NewServer(server.New(contract, h, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return client.New(srv.URL), capture
}

func TestRelay_RegisterAndLookup(t *testing.T) {
	api, _ := startRelay(t)
	ctx := context.Background()

	if err := api.Faucet(ctx, "alice.test", domain.StorageDeposit); err != nil {
		t.Fatalf("faucet: %v", err)
	}
	name := "Alice"
	if err := api.RegisterKey(ctx, "alice.test", domain.StorageDeposit, testKey(1), &name); err != nil {
		t.Fatalf("register: %v", err)
	}

	p, ok, err := api.GetProfile(ctx, "alice.test")
	if err != nil || !ok {
		t.Fatalf("get profile: ok=%v err=%v", ok, err)
	}
	if p.X25519Pubkey != testKey(1) || p.KeyVersion != 1 {
		t.Fatalf("profile = %+v", p)
	}

	registered, err := api.HasProfile(ctx, "alice.test")
	if err != nil || !registered {
		t.Fatalf("has profile: %v %v", registered, err)
	}
	registered, err = api.HasProfile(ctx, "carol.test")
	if err != nil || registered {
		t.Fatalf("unregistered account reported present: %v %v", registered, err)
	}
	if _, ok, _ := api.GetProfile(ctx, "carol.test"); ok {
		t.Fatal("profile lookup for stranger returned a profile")
	}
}

func TestRelay_RegisterRejections(t *testing.T) {
	api, _ := startRelay(t)
	ctx := context.Background()

	// Unfunded caller cannot attach the deposit.
	err := api.RegisterKey(ctx, "alice.test", domain.StorageDeposit, testKey(1), nil)
	if err == nil || !strings.Contains(err.Error(), "balance") {
		t.Fatalf("expected funding rejection, got %v", err)
	}

	// Funded caller, malformed key.
	if err := api.Faucet(ctx, "alice.test", domain.StorageDeposit); err != nil {
		t.Fatalf("faucet: %v", err)
	}
	err = api.RegisterKey(ctx, "alice.test", domain.StorageDeposit, "tooshort", nil)
	if err == nil || !strings.Contains(err.Error(), "base64") {
		t.Fatalf("expected malformed key rejection, got %v", err)
	}
}

func TestRelay_MessagingAndPayment(t *testing.T) {
	api, capture := startRelay(t)
	ctx := context.Background()

	for _, a := range []domain.AccountID{"alice.test", "bob.test"} {
		if err := api.Faucet(ctx, a, domain.StorageDeposit); err != nil {
			t.Fatalf("faucet %s: %v", a, err)
		}
		if err := api.RegisterKey(ctx, a, domain.StorageDeposit, testKey(1), nil); err != nil {
			t.Fatalf("register %s: %v", a, err)
		}
	}

	if err := api.SendMessage(ctx, "alice.test", "bob.test", "aGV5", "bm9uY2U=", 1, nil); err != nil {
		t.Fatalf("send: %v", err)
	}
	err := api.SendMessage(ctx, "alice.test", "carol.test", "aGV5", "bm9uY2U=", 1, nil)
	if err == nil {
		t.Fatal("send to unregistered account succeeded")
	}

	if err := api.Faucet(ctx, "alice.test", 5000); err != nil {
		t.Fatalf("faucet: %v", err)
	}
	if err := api.SendPaidMessage(ctx, "alice.test", "bob.test", 5000, "cGF5", "bm9uY2U=", 1, nil); err != nil {
		t.Fatalf("paid send: %v", err)
	}
	balance, err := api.Balance(ctx, "bob.test")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 5000 {
		t.Fatalf("recipient balance = %d, want 5000", balance)
	}

	st, err := api.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.ProfileCount != 2 || st.MessageCount != 2 {
		t.Fatalf("stats = %+v", st)
	}
	if st.Owner != "whisperd.operator" {
		t.Fatalf("owner = %q", st.Owner)
	}

	// The paid message is the last notification and carries the payment.
	rec, ok := capture.Last()
	if !ok {
		t.Fatal("no notifications captured")
	}
	msg, ok := rec.Data.(domain.Message)
	if !ok || msg.Payment == nil || msg.Payment.Amount != "5000" {
		t.Fatalf("last notification = %+v", rec.Data)
	}
}

func TestRelay_Groups(t *testing.T) {
	api, _ := startRelay(t)
	ctx := context.Background()

	if err := api.Faucet(ctx, "alice.test", 2*domain.StorageDeposit); err != nil {
		t.Fatalf("faucet: %v", err)
	}
	name := "Team"
	if err := api.CreateGroup(ctx, "alice.test", domain.StorageDeposit, "team", &name, `{"bob.test":"enc"}`); err != nil {
		t.Fatalf("create group: %v", err)
	}

	err := api.CreateGroup(ctx, "alice.test", domain.StorageDeposit, "team", &name, "{}")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	g, ok, err := api.GetGroup(ctx, "team")
	if err != nil || !ok {
		t.Fatalf("get group: ok=%v err=%v", ok, err)
	}
	if g.Creator != "alice.test" || g.Name == nil || *g.Name != "Team" {
		t.Fatalf("group = %+v", g)
	}
	if _, ok, _ := api.GetGroup(ctx, "ghost"); ok {
		t.Fatal("lookup of missing group returned metadata")
	}

	if err := api.SendGroupMessage(ctx, "alice.test", "team", "aGV5", "bm9uY2U=", 1); err != nil {
		t.Fatalf("group send: %v", err)
	}
	err = api.SendGroupMessage(ctx, "alice.test", "ghost", "aGV5", "bm9uY2U=", 1)
	if err == nil {
		t.Fatal("send to missing group succeeded")
	}
}
