package host

import (
	"errors"
	"time"

	"github.com/sasha-s/go-deadlock"

	"whisper/internal/domain"
)

// ErrInsufficientFunds rejects a call before it starts: the caller cannot
// cover the value it tried to attach.
var ErrInsufficientFunds = errors.New("host: caller balance below attached value")

// Memory is an in-process host: account balances, a monotonic nanosecond
// clock, and the single serialization point for contract calls.
type Memory struct {
	mu       deadlock.Mutex
	balances map[domain.AccountID]domain.Amount
	retained domain.Amount // deposits kept by the contract instance
	lastNow  uint64
	clock    func() uint64
}

// NewMemory returns a host with no funded accounts, reading the system
// clock.
func NewMemory() *Memory {
	return &Memory{
		balances: make(map[domain.AccountID]domain.Amount),
		clock:    func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

// SetClock replaces the time source. Timestamps stay strictly increasing
// regardless of what the source returns.
func (h *Memory) SetClock(fn func() uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clock = fn
}

// Credit funds an account. This is the faucet path; a real ledger funds
// accounts out of band.
func (h *Memory) Credit(account domain.AccountID, amount domain.Amount) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.balances[account] += amount
}

// Balance returns the current balance of an account.
func (h *Memory) Balance(account domain.AccountID) domain.Amount {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.balances[account]
}

// Retained returns the value the contract instance has kept from storage
// deposits.
func (h *Memory) Retained() domain.Amount {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.retained
}

// Invoke runs one mutating contract call as a serialized transaction.
//
// The attached deposit is debited before fn runs. If fn fails, the deposit
// is refunded and staged transfers are discarded. If fn succeeds, staged
// transfers are paid out of the attached value and the remainder is
// retained by the contract.
func (h *Memory) Invoke(caller domain.AccountID, deposit domain.Amount, fn func(domain.Env) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.balances[caller] < deposit {
		return ErrInsufficientFunds
	}
	h.balances[caller] -= deposit

	env := &callEnv{caller: caller, attached: deposit, now: h.tick()}
	if err := fn(env); err != nil {
		h.balances[caller] += deposit
		return err
	}

	remainder := deposit
	for _, t := range env.transfers {
		h.balances[t.to] += t.amount
		remainder -= t.amount
	}
	h.retained += remainder
	return nil
}

// View runs a read-only operation under the same serialization lock, so
// reads never observe a half-applied call.
func (h *Memory) View(fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn()
}

// tick returns the next strictly increasing timestamp. Callers hold mu.
func (h *Memory) tick() uint64 {
	n := h.clock()
	if n <= h.lastNow {
		n = h.lastNow + 1
	}
	h.lastNow = n
	return n
}

type transfer struct {
	to     domain.AccountID
	amount domain.Amount
}

// callEnv is the per-call Env handed to the contract. Transfers are staged
// here and settled by Invoke on success. The contract only transfers out
// of the attached value, so staged amounts never exceed the deposit.
type callEnv struct {
	caller    domain.AccountID
	attached  domain.Amount
	now       uint64
	transfers []transfer
}

func (e *callEnv) Caller() domain.AccountID     { return e.caller }
func (e *callEnv) Now() uint64                  { return e.now }
func (e *callEnv) AttachedValue() domain.Amount { return e.attached }
func (e *callEnv) Transfer(to domain.AccountID, amount domain.Amount) {
	e.transfers = append(e.transfers, transfer{to: to, amount: amount})
}

// Compile-time assertion that callEnv implements domain.Env.
var _ domain.Env = (*callEnv)(nil)
