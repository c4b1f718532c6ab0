package host_test

import (
	"errors"
	"testing"

	"whisper/internal/domain"
	"whisper/internal/host"
)

func TestInvoke_DebitsDepositAndRetainsIt(t *testing.T) {
	h := host.NewMemory()
	h.Credit("alice.test", 100)

	err := h.Invoke("alice.test", 60, func(env domain.Env) error {
		if env.Caller() != "alice.test" {
			t.Fatalf("caller = %q", env.Caller())
		}
		if env.AttachedValue() != 60 {
			t.Fatalf("attached = %d", env.AttachedValue())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := h.Balance("alice.test"); got != 40 {
		t.Fatalf("balance = %d, want 40", got)
	}
	if got := h.Retained(); got != 60 {
		t.Fatalf("retained = %d, want 60", got)
	}
}

func TestInvoke_RefundsOnFailure(t *testing.T) {
	h := host.NewMemory()
	h.Credit("alice.test", 100)

	boom := errors.New("boom")
	err := h.Invoke("alice.test", 100, func(env domain.Env) error {
		env.Transfer("bob.test", 100)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected call error, got %v", err)
	}
	if got := h.Balance("alice.test"); got != 100 {
		t.Fatalf("sender balance = %d, want full refund", got)
	}
	if got := h.Balance("bob.test"); got != 0 {
		t.Fatalf("staged transfer leaked: bob has %d", got)
	}
	if got := h.Retained(); got != 0 {
		t.Fatalf("retained = %d after failed call", got)
	}
}

func TestInvoke_SettlesStagedTransfers(t *testing.T) {
	h := host.NewMemory()
	h.Credit("alice.test", 100)

	err := h.Invoke("alice.test", 100, func(env domain.Env) error {
		env.Transfer("bob.test", 100)
		return nil
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := h.Balance("bob.test"); got != 100 {
		t.Fatalf("recipient balance = %d, want 100", got)
	}
	if got := h.Retained(); got != 0 {
		t.Fatalf("retained = %d, want 0 (all value forwarded)", got)
	}
}

func TestInvoke_InsufficientFunds(t *testing.T) {
	h := host.NewMemory()
	h.Credit("alice.test", 10)

	ran := false
	err := h.Invoke("alice.test", 11, func(env domain.Env) error {
		ran = true
		return nil
	})
	if !errors.Is(err, host.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if ran {
		t.Fatal("call body ran despite unfunded deposit")
	}
	if got := h.Balance("alice.test"); got != 10 {
		t.Fatalf("balance = %d, want untouched 10", got)
	}
}

func TestTimestamps_StrictlyIncreasing(t *testing.T) {
	h := host.NewMemory()
	// A stuck clock must still yield strictly increasing timestamps.
	h.SetClock(func() uint64 { return 1000 })

	var stamps []uint64
	for i := 0; i < 3; i++ {
		_ = h.Invoke("alice.test", 0, func(env domain.Env) error {
			stamps = append(stamps, env.Now())
			return nil
		})
	}
	for i := 1; i < len(stamps); i++ {
		if stamps[i] <= stamps[i-1] {
			t.Fatalf("timestamps not strictly increasing: %v", stamps)
		}
	}
}
